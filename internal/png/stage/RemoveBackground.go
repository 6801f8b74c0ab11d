package stage

import (
	"image"

	"github.com/rm-hull/logo-tools/internal/png"
)

type RemoveBackgroundStage struct {
	Threshold      int
	DarkCutoff     int
	RecolorToWhite bool
}

// Process classifies every pixel against the colour sampled from the top-left
// corner. A pixel is background when its Manhattan distance to that colour is
// below Threshold, or when all of R, G and B are below DarkCutoff. Background
// becomes transparent white; foreground is made fully opaque, or recoloured to
// white with its original alpha when RecolorToWhite is set.
func (s *RemoveBackgroundStage) Process(p *png.PngImage) error {
	if p.Empty() {
		return nil
	}
	bg, err := p.BackgroundSample()
	if err != nil {
		return err
	}
	bgR, bgG, bgB := int(bg.R), int(bg.G), int(bg.B)

	out := image.NewNRGBA(p.Bounds)
	for y := p.Bounds.Min.Y; y < p.Bounds.Max.Y; y++ {
		for x := p.Bounds.Min.X; x < p.Bounds.Max.X; x++ {
			i, j := p.Img.PixOffset(x, y), out.PixOffset(x, y)
			src := p.Img.Pix[i : i+4 : i+4]
			dst := out.Pix[j : j+4 : j+4]
			r, g, b, a := int(src[0]), int(src[1]), int(src[2]), src[3]

			dist := abs(r-bgR) + abs(g-bgG) + abs(b-bgB)
			switch {
			case dist < s.Threshold || (r < s.DarkCutoff && g < s.DarkCutoff && b < s.DarkCutoff):
				dst[0], dst[1], dst[2], dst[3] = 255, 255, 255, 0
			case s.RecolorToWhite:
				if a == 0 {
					copy(dst, src)
				} else {
					dst[0], dst[1], dst[2], dst[3] = 255, 255, 255, a
				}
			default:
				dst[0], dst[1], dst[2], dst[3] = src[0], src[1], src[2], 255
			}
		}
	}
	p.Replace(out)
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
