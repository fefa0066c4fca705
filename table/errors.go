package table

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionality is returned when a shape does not have exactly two
	// extents.
	ErrDimensionality = errors.New("table: input must be two-dimensional")

	// ErrShape is returned when the extents are negative or do not match the
	// data length.
	ErrShape = errors.New("table: shape does not match data")

	// ErrRagged is returned when rows of different widths are combined.
	ErrRagged = errors.New("table: ragged rows")

	// ErrUnsupportedType is returned for element types other than float32 and
	// float64.
	ErrUnsupportedType = errors.New("table: unsupported element type")

	// ErrBadMagic is returned when decoded bytes are not a table file.
	ErrBadMagic = errors.New("table: bad magic")

	// ErrVersion is returned for an unknown file format version.
	ErrVersion = errors.New("table: unsupported format version")

	// ErrCorrupt is returned when a table file is truncated or inconsistent.
	ErrCorrupt = errors.New("table: corrupt file")

	// ErrChecksum is returned when the payload does not match its stored
	// checksum. It wraps ErrCorrupt.
	ErrChecksum = fmt.Errorf("%w: checksum mismatch", ErrCorrupt)

	// ErrCompression is returned for an unknown compression type.
	ErrCompression = errors.New("table: unknown compression")
)
