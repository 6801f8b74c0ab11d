package png

import (
	"image"

	"github.com/disintegration/imaging"
)

// SplitHorizontal divides the image along its horizontal midline. Row h/2
// belongs to the bottom half, so for odd heights the bottom half is one row taller.
func SplitHorizontal(p *PngImage) (top, bottom *PngImage) {
	w, h := p.Width(), p.Height()
	mid := p.Bounds.Min.Y + h/2

	top = &PngImage{}
	top.Replace(imaging.Crop(p.Img, image.Rect(p.Bounds.Min.X, p.Bounds.Min.Y, p.Bounds.Min.X+w, mid)))

	bottom = &PngImage{}
	bottom.Replace(imaging.Crop(p.Img, image.Rect(p.Bounds.Min.X, mid, p.Bounds.Min.X+w, p.Bounds.Max.Y)))
	return top, bottom
}
