package stage

import (
	"image/color"

	"github.com/rm-hull/logo-tools/internal/png"
)

type RecolorStage struct {
	Color color.Color
}

// Process paints every visible pixel with Color, keeping its alpha.
// Fully transparent pixels are passed through untouched.
func (s *RecolorStage) Process(p *png.PngImage) error {
	c := color.NRGBAModel.Convert(s.Color).(color.NRGBA)
	pix := p.Img.Pix
	for y := 0; y < p.Height(); y++ {
		row := pix[y*p.Img.Stride : y*p.Img.Stride+p.Width()*4]
		for i := 0; i < len(row); i += 4 {
			if row[i+3] == 0 {
				continue
			}
			row[i], row[i+1], row[i+2] = c.R, c.G, c.B
		}
	}
	return nil
}
