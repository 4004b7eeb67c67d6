package histcmp

import (
	"errors"
	"fmt"
)

// ErrUsage indicates too few arguments were given to run a comparison.
var ErrUsage = errors.New("need a normalize flag and at least two file/label pairs")

// ErrInvalidNormalize indicates the normalize argument is not a boolean.
var ErrInvalidNormalize = errors.New("normalize must be true or false")

// ErrLabelCountMismatch indicates the number of files and legend labels differ.
var ErrLabelCountMismatch = errors.New("number of files and legend labels differ")

// ErrTooManyInputs indicates more inputs than palette entries.
var ErrTooManyInputs = fmt.Errorf("at most %d inputs are supported", MaxInputs)

// FileOpenError represents an input that could not be opened.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// RenderError represents a failure while drawing or saving an image.
type RenderError struct {
	Key  string
	File string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %q to %s: %v", e.Key, e.File, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
