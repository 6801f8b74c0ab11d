package stage

import (
	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	"github.com/rm-hull/logo-tools/internal/png"
)

type GaussianBlurStage struct {
	Sigma float64
}

// Process applies a Gaussian blur to the image using the specified Sigma value
// Used to feather hard cut-out edges; a non-positive Sigma leaves the image untouched
func (s *GaussianBlurStage) Process(p *png.PngImage) error {
	if s.Sigma <= 0 {
		return nil
	}
	p.Replace(imaging.Clone(blur.Gaussian(p.Img, s.Sigma)))
	return nil
}
