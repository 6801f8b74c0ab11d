package png

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// PngImage holds a decoded image as a non-premultiplied RGBA buffer whose
// origin is always (0, 0).
type PngImage struct {
	Img    *image.NRGBA
	Bounds image.Rectangle
}

type PipelineStage interface {
	Process(img *PngImage) error
}

// NewPngFromReader decodes a PNG and normalizes it to NRGBA. Images without an
// alpha channel become fully opaque and grayscale values are broadcast to R, G and B.
func NewPngFromReader(r io.Reader) (*PngImage, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

func FromImage(img image.Image) *PngImage {
	p := &PngImage{}
	p.Replace(imaging.Clone(img))
	return p
}

func Open(path string) (*PngImage, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := NewPngFromReader(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}

func (p *PngImage) Replace(img *image.NRGBA) {
	p.Img = img
	p.Bounds = img.Bounds()
}

func (p *PngImage) Width() int {
	return p.Bounds.Dx()
}

func (p *PngImage) Height() int {
	return p.Bounds.Dy()
}

func (p *PngImage) Empty() bool {
	return p.Bounds.Empty()
}

// BackgroundSample returns the colour of the top-left pixel.
func (p *PngImage) BackgroundSample() (color.NRGBA, error) {
	if p.Empty() {
		return color.NRGBA{}, ErrEmptyImage
	}
	return p.Img.NRGBAAt(p.Bounds.Min.X, p.Bounds.Min.Y), nil
}

func (p *PngImage) Write(w io.Writer) error {
	return png.Encode(w, p.Img)
}

// Save encodes the image next to path and renames it into place, so a failed
// encode never leaves a truncated file behind. Existing files are overwritten.
func (p *PngImage) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	tmpFile, err := os.CreateTemp(dir, "logo-*.tmp")
	if err != nil {
		return &EncodeError{Path: path, Err: fmt.Errorf("failed to create temporary file: %w", err)}
	}
	cleanupTemp := true
	defer func() {
		_ = tmpFile.Close()
		if cleanupTemp {
			_ = os.Remove(tmpFile.Name())
		}
	}()

	if err := p.Write(tmpFile); err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	if err := tmpFile.Close(); err != nil {
		return &EncodeError{Path: path, Err: fmt.Errorf("failed to close temporary file before rename: %w", err)}
	}

	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return &EncodeError{Path: path, Err: fmt.Errorf("failed to rename temporary file: %w", err)}
	}

	cleanupTemp = false
	return nil
}

func (p *PngImage) Pipeline(stages ...PipelineStage) error {
	for _, stage := range stages {
		if err := stage.Process(p); err != nil {
			return err
		}
	}
	return nil
}
