package funi

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/funi/lexicographic"
	"github.com/hupe1980/funi/projection"
	"github.com/hupe1980/funi/reorder"
	"github.com/hupe1980/funi/table"
	"github.com/hupe1980/funi/tolerance"
)

// Method selects the deduplication engine.
type Method uint8

const (
	// MethodLexicographic orders rows with the tolerance-aware lexicographic
	// comparator and merges adjacent rows that agree in every component.
	MethodLexicographic Method = iota
	// MethodProjection orders rows by their projection onto a metric vector
	// and merges rows within Euclidean distance.
	MethodProjection
)

// String returns the canonical name, which ParseMethod maps back.
func (m Method) String() string {
	if m == MethodProjection {
		return "axis"
	}
	return "lexicographic"
}

// ParseMethod maps a method name to a Method. Names starting with 'a' or 'A'
// ("axis") select MethodProjection; anything else, including the empty
// string, selects MethodLexicographic.
func ParseMethod(name string) Method {
	if name != "" && (name[0] == 'a' || name[0] == 'A') {
		return MethodProjection
	}
	return MethodLexicographic
}

// Result holds the unique rows of a table. Fields that were not requested
// are nil.
type Result[T tolerance.Float] struct {
	// Unique holds Len() rows of Width values, row-major.
	Unique []T
	// Indices holds the original row index of every unique row.
	Indices []int
	// Inverse maps every input row to its position in the unique rows.
	Inverse []int
	// Width is the number of columns of the input table.
	Width int

	n int
}

// Len returns the number of unique rows.
func (r *Result[T]) Len() int { return r.n }

// Row returns unique row i. It panics if the unique rows were not
// requested.
func (r *Result[T]) Row(i int) []T {
	return r.Unique[i*r.Width : (i+1)*r.Width]
}

// Unique returns the tolerance-unique rows of tbl.
//
// Two rows are duplicates when every component differs by strictly less
// than tol (MethodLexicographic) or when their Euclidean distance is below
// tol (MethodProjection). Neither relation is transitive; each engine
// resolves chains in its own traversal order.
func Unique[T tolerance.Float](tbl *table.Table[T], tol T, opts ...Option) (*Result[T], error) {
	o := applyOptions(opts)
	return unique(context.Background(), tbl, tol, &o)
}

// UniqueFlat is Unique on a flat row-major buffer of height×width values.
func UniqueFlat[T tolerance.Float](data []T, height, width int, tol T, opts ...Option) (*Result[T], error) {
	tbl, err := table.New(data, height, width)
	if err != nil {
		return nil, &ErrShape{Height: height, Width: width, Len: len(data), cause: err}
	}
	return Unique(tbl, tol, opts...)
}

func unique[T tolerance.Float](ctx context.Context, tbl *table.Table[T], tol T, o *options) (res *Result[T], err error) {
	start := time.Now()
	var height, width int
	if tbl != nil {
		height, width = tbl.Height(), tbl.Width()
	}
	defer func() {
		n := 0
		if res != nil {
			n = res.n
		}
		o.metricsCollector.RecordUnique(o.method, height, n, time.Since(start), err)
		o.logger.LogUnique(ctx, o.method, height, width, n, err)
	}()

	if tbl == nil {
		return nil, ErrNilTable
	}
	if !o.returnUnique && !o.returnIndex && !o.returnInverse {
		return nil, ErrNothingToReturn
	}
	if math.IsNaN(float64(tol)) || tol < 0 {
		return nil, ErrInvalidTolerance
	}

	var (
		ids     []int
		inverse []int
		points  []T
	)
	switch o.method {
	case MethodProjection:
		ids, inverse, points, err = runProjection(tbl, tol, o)
	default:
		ids, inverse, err = runLexicographic(tbl, tol, o)
	}
	if err != nil {
		return nil, err
	}

	if o.sortedIndex && (o.returnUnique || o.returnIndex) {
		if err := reorder.NormalizeOrder(ids, inverse); err != nil {
			return nil, err
		}
		points = nil
	}

	res = &Result[T]{Width: width, n: len(ids)}
	if o.returnUnique {
		if points == nil {
			points = tbl.Gather(ids)
		}
		res.Unique = points
	}
	if o.returnIndex {
		res.Indices = ids
	}
	if o.returnInverse {
		res.Inverse = inverse
	}
	return res, nil
}

func runLexicographic[T tolerance.Float](tbl *table.Table[T], tol T, o *options) ([]int, []int, error) {
	var inverse []int
	if o.returnInverse {
		inverse = make([]int, tbl.Height())
	}
	lr, err := lexicographic.Unique(tbl.Data(), tbl.Height(), tbl.Width(), tol, o.stable, inverse)
	if err != nil {
		return nil, nil, err
	}
	return lr.OriginalIndices(), lr.Inverse, nil
}

func runProjection[T tolerance.Float](tbl *table.Table[T], tol T, o *options) ([]int, []int, []T, error) {
	height, width := tbl.Height(), tbl.Width()

	var metric []T
	if o.metric != nil {
		metric = make([]T, len(o.metric))
		for i, w := range o.metric {
			metric[i] = T(w)
		}
	}

	out := &projection.Output[T]{
		Indices: make([]int, height),
		Inverse: make([]int, height),
	}
	// Copy rows during the scan unless they will be reordered afterwards.
	if o.returnUnique && !o.sortedIndex {
		out.Points = make([]T, height*width)
	}

	n, err := projection.Unique(tbl.Data(), height, width, metric, tol, o.stable, out)
	if err != nil {
		return nil, nil, nil, err
	}
	points, ids, inverse := out.Slice(n, height, width)
	return ids, inverse, points, nil
}

// DynamicResult is the result of UniqueDynamic. Exactly one of the typed
// results is set, matching the element type of the input.
type DynamicResult struct {
	Float32 *Result[float32]
	Float64 *Result[float64]
}

// DType returns the element type of the result.
func (r *DynamicResult) DType() table.DType {
	if r.Float32 != nil {
		return table.Float32
	}
	return table.Float64
}

// Len returns the number of unique rows.
func (r *DynamicResult) Len() int {
	if r.Float32 != nil {
		return r.Float32.Len()
	}
	return r.Float64.Len()
}

// Width returns the number of columns.
func (r *DynamicResult) Width() int {
	if r.Float32 != nil {
		return r.Float32.Width
	}
	return r.Float64.Width
}

// Indices returns the original indices of the unique rows, if requested.
func (r *DynamicResult) Indices() []int {
	if r.Float32 != nil {
		return r.Float32.Indices
	}
	return r.Float64.Indices
}

// Inverse returns the inverse map, if requested.
func (r *DynamicResult) Inverse() []int {
	if r.Float32 != nil {
		return r.Float32.Inverse
	}
	return r.Float64.Inverse
}

// UniqueFloat64 returns the unique rows widened to float64, if requested.
func (r *DynamicResult) UniqueFloat64() []float64 {
	if r.Float64 != nil {
		return r.Float64.Unique
	}
	if r.Float32.Unique == nil {
		return nil
	}
	out := make([]float64, len(r.Float32.Unique))
	for i, v := range r.Float32.Unique {
		out[i] = float64(v)
	}
	return out
}

// UniqueDynamic runs Unique on a table whose element type is only known at
// runtime. tol is converted to the element type.
func UniqueDynamic(d *table.Dynamic, tol float64, opts ...Option) (*DynamicResult, error) {
	return UniqueDynamicContext(context.Background(), d, tol, opts...)
}

// UniqueDynamicContext is UniqueDynamic with a context for logging.
func UniqueDynamicContext(ctx context.Context, d *table.Dynamic, tol float64, opts ...Option) (*DynamicResult, error) {
	if d == nil {
		return nil, ErrNilTable
	}
	o := applyOptions(opts)
	if t, ok := d.Float32(); ok {
		res, err := unique(ctx, t, float32(tol), &o)
		if err != nil {
			return nil, err
		}
		return &DynamicResult{Float32: res}, nil
	}
	if t, ok := d.Float64(); ok {
		res, err := unique(ctx, t, tol, &o)
		if err != nil {
			return nil, err
		}
		return &DynamicResult{Float64: res}, nil
	}
	return nil, fmt.Errorf("%w: empty dynamic table", table.ErrUnsupportedType)
}
