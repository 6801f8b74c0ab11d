package stage

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/rm-hull/logo-tools/internal/png"
)

type TrimTransparentStage struct{}

// Process crops the image to the smallest rectangle holding every pixel with
// a non-zero alpha. A fully transparent image is left as it is.
func (s *TrimTransparentStage) Process(p *png.PngImage) error {
	bbox, ok := OpaqueBounds(p.Img)
	if !ok {
		return nil
	}
	p.Replace(imaging.Crop(p.Img, bbox))
	return nil
}

// OpaqueBounds returns the bounding box of pixels with alpha > 0, and false
// when there are none.
func OpaqueBounds(img *image.NRGBA) (image.Rectangle, bool) {
	return boundsOf(img, func(px []uint8) bool {
		return px[3] > 0
	})
}

func boundsOf(img *image.NRGBA, keep func(px []uint8) bool) (image.Rectangle, bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			if !keep(img.Pix[i : i+4 : i+4]) {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}

	if maxX < minX || maxY < minY {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
