package stage

import (
	"image"
	"image/color"
	"testing"

	"github.com/rm-hull/logo-tools/internal/png"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white       = color.NRGBA{255, 255, 255, 255}
	transparent = color.NRGBA{255, 255, 255, 0}
)

func filled(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestRemoveBackgroundStage(t *testing.T) {
	t.Run("far pixels keep colour and become opaque", func(t *testing.T) {
		src := filled(4, 4, white)
		src.SetNRGBA(2, 2, color.NRGBA{200, 0, 0, 90})
		src.SetNRGBA(1, 3, color.NRGBA{60, 60, 60, 255})
		img := png.FromImage(src)

		err := img.Pipeline(&RemoveBackgroundStage{Threshold: 40, DarkCutoff: 50})
		require.NoError(t, err)

		assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds)
		assert.Equal(t, color.NRGBA{200, 0, 0, 255}, img.Img.NRGBAAt(2, 2))
		assert.Equal(t, color.NRGBA{60, 60, 60, 255}, img.Img.NRGBAAt(1, 3))
		assert.Equal(t, transparent, img.Img.NRGBAAt(0, 0))
		assert.Equal(t, transparent, img.Img.NRGBAAt(3, 3))
	})

	t.Run("distance below threshold is background", func(t *testing.T) {
		src := filled(2, 1, white)
		src.SetNRGBA(1, 0, color.NRGBA{241, 255, 255, 255}) // distance 14
		img := png.FromImage(src)

		require.NoError(t, img.Pipeline(&RemoveBackgroundStage{Threshold: 15}))
		assert.Equal(t, transparent, img.Img.NRGBAAt(1, 0))

		src.SetNRGBA(1, 0, color.NRGBA{240, 255, 255, 255}) // distance 15
		img = png.FromImage(src)
		require.NoError(t, img.Pipeline(&RemoveBackgroundStage{Threshold: 15}))
		assert.Equal(t, color.NRGBA{240, 255, 255, 255}, img.Img.NRGBAAt(1, 0))
	})

	t.Run("dark pixels are background regardless of distance", func(t *testing.T) {
		src := filled(3, 1, white)
		src.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 255})
		src.SetNRGBA(2, 0, color.NRGBA{49, 49, 50, 255})
		img := png.FromImage(src)

		require.NoError(t, img.Pipeline(&RemoveBackgroundStage{Threshold: 40, DarkCutoff: 50}))
		assert.Equal(t, transparent, img.Img.NRGBAAt(1, 0))
		assert.Equal(t, color.NRGBA{49, 49, 50, 255}, img.Img.NRGBAAt(2, 0))
	})

	t.Run("recolour keeps original alpha", func(t *testing.T) {
		src := filled(3, 1, color.NRGBA{10, 10, 30, 255})
		src.SetNRGBA(1, 0, color.NRGBA{200, 100, 0, 77})
		src.SetNRGBA(2, 0, color.NRGBA{200, 100, 0, 0})
		img := png.FromImage(src)

		require.NoError(t, img.Pipeline(&RemoveBackgroundStage{Threshold: 40, DarkCutoff: 5, RecolorToWhite: true}))
		assert.Equal(t, transparent, img.Img.NRGBAAt(0, 0))
		assert.Equal(t, color.NRGBA{255, 255, 255, 77}, img.Img.NRGBAAt(1, 0))
		assert.Equal(t, color.NRGBA{200, 100, 0, 0}, img.Img.NRGBAAt(2, 0))
	})

	t.Run("grayscale source", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 2, 1))
		src.SetGray(0, 0, color.Gray{Y: 250})
		src.SetGray(1, 0, color.Gray{Y: 120})
		img := png.FromImage(src)

		require.NoError(t, img.Pipeline(&RemoveBackgroundStage{Threshold: 40, DarkCutoff: 50}))
		assert.Equal(t, transparent, img.Img.NRGBAAt(0, 0))
		assert.Equal(t, color.NRGBA{120, 120, 120, 255}, img.Img.NRGBAAt(1, 0))
	})

	t.Run("empty image", func(t *testing.T) {
		img := png.FromImage(&image.NRGBA{})
		assert.NoError(t, img.Pipeline(&RemoveBackgroundStage{Threshold: 40}))
	})
}

func TestTrimTransparentStage(t *testing.T) {
	t.Run("crops to minimal box", func(t *testing.T) {
		src := filled(6, 5, transparent)
		src.SetNRGBA(1, 3, color.NRGBA{0, 0, 0, 1})
		src.SetNRGBA(4, 1, color.NRGBA{9, 9, 9, 255})
		img := png.FromImage(src)

		box, ok := OpaqueBounds(img.Img)
		require.True(t, ok)
		assert.Equal(t, image.Rect(1, 1, 5, 4), box)

		require.NoError(t, img.Pipeline(&TrimTransparentStage{}))
		assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds)
		assert.Equal(t, color.NRGBA{0, 0, 0, 1}, img.Img.NRGBAAt(0, 2))
		assert.Equal(t, color.NRGBA{9, 9, 9, 255}, img.Img.NRGBAAt(3, 0))
	})

	t.Run("fully transparent image is unchanged", func(t *testing.T) {
		img := png.FromImage(filled(3, 2, transparent))

		_, ok := OpaqueBounds(img.Img)
		assert.False(t, ok)
		require.NoError(t, img.Pipeline(&TrimTransparentStage{}))
		assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds)
	})
}

func TestRemoveBackgroundThenTrim(t *testing.T) {
	t.Run("single foreground pixel", func(t *testing.T) {
		src := filled(4, 4, white)
		src.SetNRGBA(2, 2, color.NRGBA{0, 0, 0, 255})
		img := png.FromImage(src)

		err := img.Pipeline(
			&RemoveBackgroundStage{Threshold: 40},
			&TrimTransparentStage{},
		)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 1, 1), img.Bounds)
		assert.Equal(t, color.NRGBA{0, 0, 0, 255}, img.Img.NRGBAAt(0, 0))
	})

	t.Run("all background", func(t *testing.T) {
		src := filled(5, 3, white)
		src.SetNRGBA(4, 2, color.NRGBA{250, 250, 250, 255})
		img := png.FromImage(src)

		err := img.Pipeline(
			&RemoveBackgroundStage{Threshold: 40, DarkCutoff: 50},
			&TrimTransparentStage{},
		)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 5, 3), img.Bounds)
		for y := 0; y < 3; y++ {
			for x := 0; x < 5; x++ {
				assert.Equal(t, transparent, img.Img.NRGBAAt(x, y))
			}
		}
	})
}

func TestDifferenceTrimStage(t *testing.T) {
	navy := color.NRGBA{13, 13, 21, 255}

	t.Run("crops to content differing by more than the bias", func(t *testing.T) {
		src := filled(10, 10, navy)
		src.SetNRGBA(0, 9, color.NRGBA{63, 63, 71, 255}) // differs by 50: ignored
		for y := 4; y < 7; y++ {
			for x := 3; x < 6; x++ {
				src.SetNRGBA(x, y, white)
			}
		}
		img := png.FromImage(src)

		require.NoError(t, img.Pipeline(&DifferenceTrimStage{Scale: 2, Offset: -100}))
		assert.Equal(t, image.Rect(0, 0, 3, 3), img.Bounds)
		assert.Equal(t, white, img.Img.NRGBAAt(0, 0))
	})

	t.Run("zero offset counts any difference", func(t *testing.T) {
		src := filled(10, 10, navy)
		src.SetNRGBA(0, 9, color.NRGBA{14, 13, 21, 255})
		src.SetNRGBA(5, 5, white)
		img := png.FromImage(src)

		require.NoError(t, img.Pipeline(&DifferenceTrimStage{Scale: 1, Offset: 0}))
		assert.Equal(t, image.Rect(0, 0, 6, 5), img.Bounds)
	})

	t.Run("alpha differences count", func(t *testing.T) {
		src := filled(4, 4, color.NRGBA{0, 0, 0, 0})
		src.SetNRGBA(2, 1, color.NRGBA{0, 0, 0, 255})
		img := png.FromImage(src)

		require.NoError(t, img.Pipeline(&DifferenceTrimStage{Scale: 2, Offset: -100}))
		assert.Equal(t, image.Rect(0, 0, 1, 1), img.Bounds)
	})

	t.Run("uniform image is unchanged", func(t *testing.T) {
		img := png.FromImage(filled(4, 3, navy))
		require.NoError(t, img.Pipeline(&DifferenceTrimStage{Scale: 2, Offset: -100}))
		assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds)
	})

	t.Run("invalid scale", func(t *testing.T) {
		img := png.FromImage(filled(1, 1, navy))
		assert.Error(t, img.Pipeline(&DifferenceTrimStage{Scale: 0}))
	})
}

func TestRecolorStage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 255})
	src.SetNRGBA(1, 0, color.NRGBA{10, 20, 30, 12})
	src.SetNRGBA(2, 0, color.NRGBA{10, 20, 30, 0})
	img := png.FromImage(src)

	require.NoError(t, img.Pipeline(&RecolorStage{Color: color.White}))
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, img.Img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{255, 255, 255, 12}, img.Img.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{10, 20, 30, 0}, img.Img.NRGBAAt(2, 0))
}

func TestLuminanceAlphaStage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})
	src.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 255})
	src.SetNRGBA(2, 0, color.NRGBA{5, 6, 7, 0})
	img := png.FromImage(src)

	require.NoError(t, img.Pipeline(&LuminanceAlphaStage{Color: color.White}))
	bright := img.Img.NRGBAAt(0, 0)
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{bright.R, bright.G, bright.B})
	assert.InDelta(t, 255, int(bright.A), 1)
	assert.Equal(t, color.NRGBA{255, 255, 255, 0}, img.Img.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{5, 6, 7, 0}, img.Img.NRGBAAt(2, 0))
}

func TestFitStage(t *testing.T) {
	t.Run("shrinks keeping aspect ratio", func(t *testing.T) {
		img := png.FromImage(filled(100, 50, white))
		require.NoError(t, img.Pipeline(&FitStage{Width: 10}))
		assert.Equal(t, image.Rect(0, 0, 10, 5), img.Bounds)
	})

	t.Run("tighter dimension wins", func(t *testing.T) {
		img := png.FromImage(filled(100, 50, white))
		require.NoError(t, img.Pipeline(&FitStage{Width: 80, Height: 10}))
		assert.Equal(t, image.Rect(0, 0, 20, 10), img.Bounds)
	})

	t.Run("never enlarges", func(t *testing.T) {
		img := png.FromImage(filled(10, 5, white))
		require.NoError(t, img.Pipeline(&FitStage{Width: 100, Height: 100}))
		assert.Equal(t, image.Rect(0, 0, 10, 5), img.Bounds)
	})
}

func TestGaussianBlurStage(t *testing.T) {
	src := filled(9, 9, transparent)
	src.SetNRGBA(4, 4, white)

	t.Run("zero sigma is a no-op", func(t *testing.T) {
		img := png.FromImage(src)
		before := img.Img
		require.NoError(t, img.Pipeline(&GaussianBlurStage{}))
		assert.Same(t, before, img.Img)
	})

	t.Run("spreads opacity to neighbours", func(t *testing.T) {
		img := png.FromImage(src)
		require.NoError(t, img.Pipeline(&GaussianBlurStage{Sigma: 1.0}))
		assert.Equal(t, image.Rect(0, 0, 9, 9), img.Bounds)
		assert.Greater(t, img.Img.NRGBAAt(4, 5).A, uint8(0))
		assert.Less(t, img.Img.NRGBAAt(4, 4).A, uint8(255))
	})
}
