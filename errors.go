package h5table

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for them.
var (
	// ErrKeyNotFound is returned when a container lacks a required dataset.
	ErrKeyNotFound = errors.New("dataset not found in container")

	// ErrTypeConversion is returned when a CSV cell cannot be coerced to float32.
	ErrTypeConversion = errors.New("cannot convert cell to float32")

	// ErrDecode is returned when a string dataset holds invalid UTF-8.
	ErrDecode = errors.New("invalid UTF-8 in string dataset")

	// ErrUnsupported is returned for dataset classes other than numeric or fixed-length string.
	ErrUnsupported = errors.New("unsupported dataset type")

	// ErrShapeMismatch is returned when labels do not match the dimensions they label.
	ErrShapeMismatch = errors.New("label count does not match table shape")

	// ErrNotContainer is returned by Relabel when the dataset path is not an .h5 file.
	ErrNotContainer = errors.New("dataset is not an HDF5 container")

	// ErrEmptyTable is returned when a table with no rows or columns would be written to a container.
	ErrEmptyTable = errors.New("table has no rows or columns")

	// ErrUnknownFormat is returned by LoadTable for unrecognized file suffixes.
	ErrUnknownFormat = errors.New("unknown file type")
)

// Error records the operation and file that failed.
type Error struct {
	Op    string
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
}

// Unwrap provides compatibility with errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

func wrapError(op, path string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Op: op, Path: path, Cause: cause}
}
