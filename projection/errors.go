package projection

import "errors"

var (
	// ErrCapacity is returned when the output buffers cannot hold one entry
	// per input row.
	ErrCapacity = errors.New("projection: output buffers smaller than table height")

	// ErrMetricLength is returned when the metric vector does not have one
	// weight per column.
	ErrMetricLength = errors.New("projection: metric length does not match table width")

	// ErrShortData is returned when the flat buffer holds fewer than
	// height*width values.
	ErrShortData = errors.New("projection: data shorter than height*width")

	// ErrTooManyRows is returned when row ids do not fit the 32-bit
	// representative bitmap.
	ErrTooManyRows = errors.New("projection: table height exceeds 32-bit row ids")
)
