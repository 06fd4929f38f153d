package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrParseFailure      = errors.New("failed to parse file")
	ErrInvalidSelection  = errors.New("invalid column selection")
	ErrSerialization     = errors.New("failed to serialize table")
	ErrInvalidOptions    = errors.New("invalid cleaning options")
	ErrNothingToChart    = errors.New("no numeric values to chart")
)

// FileError ties a pipeline failure to the file that caused it.
type FileError struct {
	Filename string
	Err      error
}

func NewFileError(filename string, err error) *FileError {
	return &FileError{Filename: filename, Err: err}
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Filename, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
