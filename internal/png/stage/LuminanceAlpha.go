package stage

import (
	"image"
	"image/color"

	"github.com/rm-hull/logo-tools/internal/png"
)

type LuminanceAlphaStage struct {
	Color color.Color
}

// Process converts the image to a single colour whose opacity follows the
// luminance of the source, scaled by the source alpha, so dark strokes fade out.
// Fully transparent pixels remain transparent.
func (s *LuminanceAlphaStage) Process(p *png.PngImage) error {
	c := color.NRGBAModel.Convert(s.Color).(color.NRGBA)
	out := image.NewNRGBA(p.Bounds)
	for y := p.Bounds.Min.Y; y < p.Bounds.Max.Y; y++ {
		for x := p.Bounds.Min.X; x < p.Bounds.Max.X; x++ {
			px := p.Img.NRGBAAt(x, y)
			if px.A == 0 {
				out.SetNRGBA(x, y, px)
				continue
			}
			// Reference: https://en.wikipedia.org/wiki/Grayscale#Luma_coding_in_video_systems
			lum := 0.299*float64(px.R) + 0.587*float64(px.G) + 0.114*float64(px.B)
			alpha := uint8(lum * float64(px.A) / 255)
			out.SetNRGBA(x, y, color.NRGBA{c.R, c.G, c.B, alpha})
		}
	}
	p.Replace(out)
	return nil
}
