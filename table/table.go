package table

import (
	"fmt"

	"github.com/hupe1980/funi/internal/conv"
	"github.com/hupe1980/funi/tolerance"
)

// Table is an immutable height×width row-major table of T.
type Table[T tolerance.Float] struct {
	data   []T
	height int
	width  int
}

// New wraps data as a table of the given shape. shape must have exactly two
// extents (height, width). data is not copied.
func New[T tolerance.Float](data []T, shape ...int) (*Table[T], error) {
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: got %d dimensions", ErrDimensionality, len(shape))
	}
	height, width := shape[0], shape[1]
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("%w: negative extent %dx%d", ErrShape, height, width)
	}
	size, err := conv.MulInt(height, width)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShape, err)
	}
	if size != len(data) {
		return nil, fmt.Errorf("%w: %dx%d needs %d values, got %d", ErrShape, height, width, size, len(data))
	}
	return &Table[T]{data: data, height: height, width: width}, nil
}

// FromRows copies equally sized rows into a new table.
func FromRows[T tolerance.Float](rows [][]T) (*Table[T], error) {
	if len(rows) == 0 {
		return &Table[T]{}, nil
	}
	width := len(rows[0])
	data := make([]T, 0, len(rows)*width)
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRagged, i, len(r), width)
		}
		data = append(data, r...)
	}
	return &Table[T]{data: data, height: len(rows), width: width}, nil
}

// Height returns the number of rows.
func (t *Table[T]) Height() int { return t.height }

// Width returns the number of columns.
func (t *Table[T]) Width() int { return t.width }

// Data returns the flat row-major backing slice. Callers must not modify it.
func (t *Table[T]) Data() []T { return t.data }

// Row returns row i as a sub-slice of the backing data.
func (t *Table[T]) Row(i int) []T {
	return t.data[i*t.width : (i+1)*t.width]
}

// Rows returns the table as a slice of row views.
func (t *Table[T]) Rows() [][]T {
	rows := make([][]T, t.height)
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// Gather copies the rows listed in ids, in that order, into a new flat slice.
func (t *Table[T]) Gather(ids []int) []T {
	out := make([]T, len(ids)*t.width)
	for i, id := range ids {
		copy(out[i*t.width:(i+1)*t.width], t.Row(id))
	}
	return out
}
