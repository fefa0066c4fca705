package projection

import "github.com/hupe1980/funi/tolerance"

// Output holds caller-allocated result buffers with a declared capacity.
// Unique writes the first n entries and reports n; anything past n is left
// untouched.
type Output[T tolerance.Float] struct {
	// Points receives the unique rows, row-major. May be nil, in which case
	// no coordinates are copied.
	Points []T
	// Indices receives the original row id of every unique row.
	Indices []int
	// Inverse receives, for every input row, its position in Indices.
	Inverse []int
}

// NewOutput allocates buffers large enough for a height×width table.
func NewOutput[T tolerance.Float](height, width int) *Output[T] {
	return &Output[T]{
		Points:  make([]T, height*width),
		Indices: make([]int, height),
		Inverse: make([]int, height),
	}
}

// Slice returns views of the first n unique rows and the inverse of the
// first height rows.
func (o *Output[T]) Slice(n, height, width int) (points []T, indices []int, inverse []int) {
	if o.Points != nil {
		points = o.Points[:n*width]
	}
	return points, o.Indices[:n], o.Inverse[:height]
}

func (o *Output[T]) fits(height, width int) bool {
	if len(o.Indices) < height || len(o.Inverse) < height {
		return false
	}
	return o.Points == nil || len(o.Points) >= height*width
}

func (o *Output[T]) write(slot int, data []T, width, id int) {
	o.Indices[slot] = id
	if o.Points != nil {
		copy(o.Points[slot*width:(slot+1)*width], data[id*width:(id+1)*width])
	}
}
