package lexicographic

import "errors"

var (
	// ErrSizeMismatch is returned when a caller-supplied working array does not
	// have one entry per row.
	ErrSizeMismatch = errors.New("lexicographic: working array does not match table height")

	// ErrShortData is returned when the flat buffer holds fewer than
	// height*width values.
	ErrShortData = errors.New("lexicographic: data shorter than height*width")
)
