package internal

import (
	"fmt"
	"image/color"
	"log"

	"github.com/rm-hull/logo-tools/internal/png"
	"github.com/rm-hull/logo-tools/internal/png/stage"
)

type NormalizeOptions struct {
	Threshold      int
	DarkCutoff     int
	RecolorToWhite bool
	Feather        float64
	Width          int
	Height         int
}

func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{
		Threshold:  40,
		DarkCutoff: 50,
	}
}

func (o NormalizeOptions) Validate() error {
	if o.Threshold < 0 {
		return fmt.Errorf("threshold must not be negative: %d", o.Threshold)
	}
	if o.DarkCutoff < 0 || o.DarkCutoff > 255 {
		return fmt.Errorf("dark cutoff must be within 0..255: %d", o.DarkCutoff)
	}
	if o.Feather < 0 {
		return fmt.Errorf("feather sigma must not be negative: %g", o.Feather)
	}
	if o.Width < 0 || o.Height < 0 {
		return fmt.Errorf("invalid fit dimensions: %dx%d", o.Width, o.Height)
	}
	return nil
}

// Normalize makes the background of img transparent, forces the remaining
// pixels opaque (or white) and trims the result to its visible content.
func Normalize(img *png.PngImage, opts NormalizeOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if bg, err := img.BackgroundSample(); err == nil {
		log.Printf("Detected background color: (%d, %d, %d)", bg.R, bg.G, bg.B)
	}

	return img.Pipeline(
		&stage.RemoveBackgroundStage{
			Threshold:      opts.Threshold,
			DarkCutoff:     opts.DarkCutoff,
			RecolorToWhite: opts.RecolorToWhite,
		},
		&stage.GaussianBlurStage{Sigma: opts.Feather},
		&stage.TrimTransparentStage{},
		&stage.FitStage{Width: opts.Width, Height: opts.Height},
	)
}

type WhitenOptions struct {
	Luminance bool
	Width     int
	Height    int
}

// Whiten recolours every visible pixel to white, keeping its alpha. With
// Luminance set the alpha is derived from the source brightness instead.
func Whiten(img *png.PngImage, opts WhitenOptions) error {
	var recolor png.PipelineStage = &stage.RecolorStage{Color: color.White}
	if opts.Luminance {
		recolor = &stage.LuminanceAlphaStage{Color: color.White}
	}
	return img.Pipeline(
		recolor,
		&stage.FitStage{Width: opts.Width, Height: opts.Height},
	)
}

type SplitOptions struct {
	Scale  float64
	Offset float64
}

func DefaultSplitOptions() SplitOptions {
	return SplitOptions{
		Scale:  2.0,
		Offset: -100,
	}
}

// SplitAndTrim cuts a composite into its top and bottom halves and trims each
// one against its own corner colour.
func SplitAndTrim(img *png.PngImage, opts SplitOptions) (top, bottom *png.PngImage, err error) {
	top, bottom = png.SplitHorizontal(img)
	trim := &stage.DifferenceTrimStage{Scale: opts.Scale, Offset: opts.Offset}

	if err := top.Pipeline(trim); err != nil {
		return nil, nil, fmt.Errorf("failed to trim top half: %w", err)
	}
	if err := bottom.Pipeline(trim); err != nil {
		return nil, nil, fmt.Errorf("failed to trim bottom half: %w", err)
	}
	return top, bottom, nil
}
