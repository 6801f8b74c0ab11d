package stage

import (
	"errors"

	"github.com/disintegration/imaging"
	"github.com/rm-hull/logo-tools/internal/png"
)

type DifferenceTrimStage struct {
	Scale  float64
	Offset float64
}

// Process crops the image to the content that differs from its top-left
// corner colour. For each channel the absolute difference d from the corner
// is doubled, divided by Scale, shifted by Offset and clipped to 0..255; a
// pixel is foreground when any channel ends up above zero. With the default
// Scale of 2 and Offset of -100 that means a channel must differ by more than 100.
func (s *DifferenceTrimStage) Process(p *png.PngImage) error {
	if s.Scale <= 0 {
		return errors.New("difference scale must be positive")
	}
	if p.Empty() {
		return nil
	}
	corner, err := p.BackgroundSample()
	if err != nil {
		return err
	}
	ref := [4]uint8{corner.R, corner.G, corner.B, corner.A}

	bbox, ok := boundsOf(p.Img, func(px []uint8) bool {
		for c := 0; c < 4; c++ {
			if s.level(px[c], ref[c]) > 0 {
				return true
			}
		}
		return false
	})
	if !ok {
		return nil
	}
	p.Replace(imaging.Crop(p.Img, bbox))
	return nil
}

func (s *DifferenceTrimStage) level(v, ref uint8) int {
	d := abs(int(v) - int(ref))
	n := int(float64(d+d)/s.Scale + s.Offset)
	return min(max(n, 0), 255)
}
