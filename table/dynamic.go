package table

import "fmt"

// DType identifies the element type of a table.
type DType uint8

const (
	// DTypeInvalid is the zero value.
	DTypeInvalid DType = iota
	// Float32 tables hold float32 values.
	Float32
	// Float64 tables hold float64 values.
	Float64
)

func (d DType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(d))
	}
}

// ParseDType maps "float32"/"float64" (and "f4"/"f8") to a DType.
func ParseDType(s string) (DType, error) {
	switch s {
	case "float32", "f4":
		return Float32, nil
	case "float64", "f8", "":
		return Float64, nil
	default:
		return DTypeInvalid, fmt.Errorf("%w: %q", ErrUnsupportedType, s)
	}
}

// Size returns the byte size of one element.
func (d DType) Size() int {
	switch d {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

// Dynamic is a table whose element type is only known at runtime.
// Exactly one of the typed views is set.
type Dynamic struct {
	f32 *Table[float32]
	f64 *Table[float64]
}

// NewDynamic wraps data, which must be a []float32 or []float64, as a table
// of the given shape.
func NewDynamic(data any, shape ...int) (*Dynamic, error) {
	switch v := data.(type) {
	case []float32:
		t, err := New(v, shape...)
		if err != nil {
			return nil, err
		}
		return &Dynamic{f32: t}, nil
	case []float64:
		t, err := New(v, shape...)
		if err != nil {
			return nil, err
		}
		return &Dynamic{f64: t}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, data)
	}
}

// Wrap32 wraps a typed float32 table.
func Wrap32(t *Table[float32]) *Dynamic { return &Dynamic{f32: t} }

// Wrap64 wraps a typed float64 table.
func Wrap64(t *Table[float64]) *Dynamic { return &Dynamic{f64: t} }

// DType returns the element type.
func (d *Dynamic) DType() DType {
	switch {
	case d.f32 != nil:
		return Float32
	case d.f64 != nil:
		return Float64
	default:
		return DTypeInvalid
	}
}

// Float32 returns the float32 view, if that is the element type.
func (d *Dynamic) Float32() (*Table[float32], bool) { return d.f32, d.f32 != nil }

// Float64 returns the float64 view, if that is the element type.
func (d *Dynamic) Float64() (*Table[float64], bool) { return d.f64, d.f64 != nil }

// Height returns the number of rows.
func (d *Dynamic) Height() int {
	if d.f32 != nil {
		return d.f32.Height()
	}
	if d.f64 != nil {
		return d.f64.Height()
	}
	return 0
}

// Width returns the number of columns.
func (d *Dynamic) Width() int {
	if d.f32 != nil {
		return d.f32.Width()
	}
	if d.f64 != nil {
		return d.f64.Width()
	}
	return 0
}
