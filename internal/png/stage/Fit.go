package stage

import (
	"image"
	"math"

	"github.com/rm-hull/logo-tools/internal/png"
	"golang.org/x/image/draw"
)

// FitStage shrinks the image with Catmull-Rom resampling so that it fits
// within Width x Height, keeping its aspect ratio. A zero dimension is
// unconstrained and images are never enlarged.
type FitStage struct {
	Width  int
	Height int
}

func (s *FitStage) Process(p *png.PngImage) error {
	if p.Empty() || (s.Width <= 0 && s.Height <= 0) {
		return nil
	}

	srcW, srcH := float64(p.Width()), float64(p.Height())
	ratio := 1.0
	if s.Width > 0 {
		ratio = math.Min(ratio, float64(s.Width)/srcW)
	}
	if s.Height > 0 {
		ratio = math.Min(ratio, float64(s.Height)/srcH)
	}
	if ratio >= 1 {
		return nil
	}

	w := max(1, int(math.Round(srcW*ratio)))
	h := max(1, int(math.Round(srcH*ratio)))
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), p.Img, p.Bounds, draw.Src, nil)
	p.Replace(dst)
	return nil
}
