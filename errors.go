package funi

import (
	"errors"
	"fmt"
)

var (
	// ErrNothingToReturn is returned when the unique rows, the indices and
	// the inverse are all deselected.
	ErrNothingToReturn = errors.New("funi: at least one of unique, index or inverse must be requested")

	// ErrInvalidTolerance is returned for a negative or NaN tolerance.
	ErrInvalidTolerance = errors.New("funi: tolerance must be a non-negative number")

	// ErrNilTable is returned when no table is passed.
	ErrNilTable = errors.New("funi: nil table")
)

// ErrShape indicates that a flat buffer does not hold height×width values.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrShape struct {
	Height int
	Width  int
	Len    int
	cause  error
}

func (e *ErrShape) Error() string {
	return fmt.Sprintf("funi: shape %dx%d does not match %d values", e.Height, e.Width, e.Len)
}

func (e *ErrShape) Unwrap() error { return e.cause }
