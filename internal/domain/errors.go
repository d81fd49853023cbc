package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the numstat domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrEmptySequence is returned by every aggregation when the sequence has no elements.
	ErrEmptySequence = errors.New("numstat: empty sequence")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("numstat: invalid configuration")
)

// FileError reports that the input file could not be read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FormatError reports a token that is not a base-10 32-bit integer.
// Index is the 0-based position of the token in the input.
type FormatError struct {
	Path  string
	Token string
	Index int
	Err   error
}

func (e *FormatError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("invalid integer %q at token %d", e.Token, e.Index)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *FormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
