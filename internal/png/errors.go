package png

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFile = errors.New("file not found")
	ErrEmptyImage  = errors.New("image has no pixels")
)

// DecodeError reports an input that exists but could not be read as a PNG.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a failure while writing an output file.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
