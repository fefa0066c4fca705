package funi

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"slices"
	"testing"

	"github.com/hupe1980/funi/projection"
	"github.com/hupe1980/funi/table"
	"github.com/hupe1980/funi/testutil"
	"github.com/hupe1980/funi/tolerance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTable[T tolerance.Float](t testing.TB, rows [][]T) *table.Table[T] {
	t.Helper()
	tbl, err := table.FromRows(rows)
	require.NoError(t, err)
	return tbl
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		name string
		want Method
	}{
		{"axis", MethodProjection},
		{"Axis", MethodProjection},
		{"a", MethodProjection},
		{"lexicographic", MethodLexicographic},
		{"lex", MethodLexicographic},
		{"projection", MethodLexicographic},
		{"", MethodLexicographic},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseMethod(tt.name), tt.name)
	}
	assert.Equal(t, MethodProjection, ParseMethod(MethodProjection.String()))
	assert.Equal(t, MethodLexicographic, ParseMethod(MethodLexicographic.String()))
}

func TestUnique_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		rows        [][]float64
		tol         float64
		opts        []Option
		wantIndices []int
		wantInverse []int
		wantUnique  []float64
	}{
		{
			name:        "exact duplicates lexicographic",
			rows:        [][]float64{{0, 0}, {0, 0}, {10, 10}},
			tol:         0.5,
			wantIndices: []int{0, 2},
			wantInverse: []int{0, 0, 1},
			wantUnique:  []float64{0, 0, 10, 10},
		},
		{
			name:        "exact duplicates projection",
			rows:        [][]float64{{0, 0}, {0, 0}, {10, 10}},
			tol:         0.5,
			opts:        []Option{WithMethod(MethodProjection)},
			wantIndices: []int{0, 2},
			wantInverse: []int{0, 0, 1},
			wantUnique:  []float64{0, 0, 10, 10},
		},
		{
			name:        "component tolerance",
			rows:        [][]float64{{1, 1}, {1.05, 1.05}, {5, 5}},
			tol:         0.1,
			wantIndices: []int{0, 2},
			wantInverse: []int{0, 0, 1},
			wantUnique:  []float64{1, 1, 5, 5},
		},
		{
			name:        "projection window",
			rows:        [][]float64{{1, 1}, {1.05, 1.05}, {5, 5}},
			tol:         0.2,
			opts:        []Option{WithMethodName("axis"), WithMetric(1, 1)},
			wantIndices: []int{0, 2},
			wantInverse: []int{0, 0, 1},
			wantUnique:  []float64{1, 1, 5, 5},
		},
		{
			name:        "zero tolerance keeps everything",
			rows:        [][]float64{{0, 0}, {0, 0}},
			tol:         0,
			wantIndices: []int{0, 1},
			wantInverse: []int{0, 1},
			wantUnique:  []float64{0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Unique(mustTable(t, tt.rows), tt.tol, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, len(tt.wantIndices), res.Len())
			assert.Equal(t, tt.wantIndices, res.Indices)
			assert.Equal(t, tt.wantInverse, res.Inverse)
			assert.Equal(t, tt.wantUnique, res.Unique)
		})
	}
}

func TestUnique_Unstable(t *testing.T) {
	for _, m := range []Method{MethodLexicographic, MethodProjection} {
		t.Run(m.String(), func(t *testing.T) {
			res, err := Unique(mustTable(t, [][]float64{{0, 0}, {0, 0}, {10, 10}}), 0.5,
				WithMethod(m), WithStable(false))
			require.NoError(t, err)
			require.Equal(t, 2, res.Len())
			assert.Equal(t, res.Inverse[0], res.Inverse[1])
			assert.NotEqual(t, res.Inverse[0], res.Inverse[2])
			assert.Contains(t, []int{0, 1}, res.Indices[res.Inverse[0]])
			assert.Equal(t, 2, res.Indices[res.Inverse[2]])
		})
	}
}

func TestUnique_EmptyTable(t *testing.T) {
	tbl, err := table.New[float64](nil, 0, 3)
	require.NoError(t, err)

	for _, m := range []Method{MethodLexicographic, MethodProjection} {
		res, err := Unique(tbl, 0.1, WithMethod(m))
		require.NoError(t, err)
		assert.Equal(t, 0, res.Len())
		assert.Empty(t, res.Unique)
		assert.Empty(t, res.Indices)
		assert.Empty(t, res.Inverse)
	}
}

func TestUnique_SortedIndex(t *testing.T) {
	tbl := mustTable(t, [][]float64{{5, 5}, {0, 0}, {5, 5}})

	res, err := Unique(tbl, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Indices)
	assert.Equal(t, []int{1, 0, 1}, res.Inverse)
	assert.Equal(t, []float64{0, 0, 5, 5}, res.Unique)

	res, err = Unique(tbl, 0.5, WithSortedIndex(true))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Indices)
	assert.Equal(t, []int{0, 1, 0}, res.Inverse)
	assert.Equal(t, []float64{5, 5, 0, 0}, res.Unique)
	assert.Equal(t, []float64{0, 0}, res.Row(1))
}

func TestUnique_SortedIndexProjectionUnstable(t *testing.T) {
	rng := testutil.NewRNG(3)
	data, _ := rng.StackedShuffled(rng.UniformTable(50, 3), 3, 2)
	tbl, err := table.New(data, 100, 3)
	require.NoError(t, err)

	res, err := Unique(tbl, 1e-9, WithMethod(MethodProjection), WithStable(false), WithSortedIndex(true))
	require.NoError(t, err)
	assert.Equal(t, 50, res.Len())
	assert.True(t, slices.IsSorted(res.Indices))
	for r := range tbl.Height() {
		assert.Equal(t, tbl.Row(r), res.Row(res.Inverse[r]))
	}
}

func TestUnique_ReturnFlags(t *testing.T) {
	tbl := mustTable(t, [][]float64{{0, 0}, {0, 0}, {10, 10}})

	for _, m := range []Method{MethodLexicographic, MethodProjection} {
		t.Run(m.String(), func(t *testing.T) {
			res, err := Unique(tbl, 0.5, WithMethod(m), WithReturnUnique(false), WithReturnInverse(false))
			require.NoError(t, err)
			assert.Nil(t, res.Unique)
			assert.Nil(t, res.Inverse)
			assert.Equal(t, []int{0, 2}, res.Indices)

			res, err = Unique(tbl, 0.5, WithMethod(m), WithReturnUnique(false), WithReturnIndex(false))
			require.NoError(t, err)
			assert.Nil(t, res.Unique)
			assert.Nil(t, res.Indices)
			assert.Equal(t, []int{0, 0, 1}, res.Inverse)
			assert.Equal(t, 2, res.Len())

			_, err = Unique(tbl, 0.5, WithMethod(m),
				WithReturnUnique(false), WithReturnIndex(false), WithReturnInverse(false))
			require.ErrorIs(t, err, ErrNothingToReturn)
		})
	}
}

func TestUnique_Errors(t *testing.T) {
	tbl := mustTable(t, [][]float64{{0, 0}, {1, 1}})

	_, err := Unique[float64](nil, 0.1)
	require.ErrorIs(t, err, ErrNilTable)

	_, err = Unique(tbl, -0.1)
	require.ErrorIs(t, err, ErrInvalidTolerance)

	_, err = Unique(tbl, math.NaN())
	require.ErrorIs(t, err, ErrInvalidTolerance)

	_, err = Unique(tbl, 0.1, WithMethod(MethodProjection), WithMetric(1, 2, 3))
	require.ErrorIs(t, err, projection.ErrMetricLength)
}

func TestUniqueFlat(t *testing.T) {
	res, err := UniqueFlat([]float32{0, 0, 0, 0.01, 3, 3}, 3, 2, 0.1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, res.Indices)

	_, err = UniqueFlat([]float32{0, 0, 0}, 2, 2, 0.1)
	var shapeErr *ErrShape
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 2, shapeErr.Height)
	assert.Equal(t, 2, shapeErr.Width)
	assert.Equal(t, 3, shapeErr.Len)
	assert.ErrorIs(t, err, table.ErrShape)
}

// Rows within component tolerance but outside Euclidean tolerance: the two
// engines disagree, and do so on every run.
func TestEnginesDiverge(t *testing.T) {
	tbl := mustTable(t, [][]float64{{0, 0}, {0.09, 0.09}})

	for range 3 {
		lex, err := Unique(tbl, 0.1)
		require.NoError(t, err)
		proj, err := Unique(tbl, 0.1, WithMethod(MethodProjection))
		require.NoError(t, err)

		assert.Equal(t, 1, lex.Len())
		assert.Equal(t, []int{0, 0}, lex.Inverse)
		assert.Equal(t, 2, proj.Len())
		assert.Equal(t, []int{0, 1}, proj.Inverse)
	}
}

func TestUnique_Properties(t *testing.T) {
	rng := testutil.NewRNG(11)
	base := rng.UniformTable(100, 3)
	data, origin := rng.StackedShuffled(base, 3, 3)
	tbl, err := table.New(data, 300, 3)
	require.NoError(t, err)

	for _, m := range []Method{MethodLexicographic, MethodProjection} {
		for _, stable := range []bool{true, false} {
			res, err := Unique(tbl, 1e-10, WithMethod(m), WithStable(stable))
			require.NoError(t, err)

			assert.Equal(t, 100, res.Len())
			assert.True(t, testutil.InverseInRange(res.Inverse, res.Len()))

			for r := range tbl.Height() {
				rep := res.Indices[res.Inverse[r]]
				assert.Equal(t, origin[r], origin[rep])
				assert.Equal(t, tbl.Row(r), res.Row(res.Inverse[r]))
				if stable {
					assert.LessOrEqual(t, rep, r)
				}
			}

			// Self-consistency: the unique rows are unique.
			again, err := UniqueFlat(res.Unique, res.Len(), 3, 1e-10, WithMethod(m))
			require.NoError(t, err)
			assert.Equal(t, res.Len(), again.Len())
		}
	}
}

func TestUnique_Float32(t *testing.T) {
	tbl := mustTable(t, [][]float32{{1, 1}, {1.05, 1.05}, {5, 5}})
	res, err := Unique(tbl, float32(0.1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, res.Indices)
	assert.Equal(t, []float32{1, 1, 5, 5}, res.Unique)
}

func TestUniqueDynamic(t *testing.T) {
	d, err := table.NewDynamic([]float32{0, 0, 0, 0, 10, 10}, 3, 2)
	require.NoError(t, err)

	res, err := UniqueDynamic(d, 0.5)
	require.NoError(t, err)
	assert.Equal(t, table.Float32, res.DType())
	assert.Equal(t, 2, res.Len())
	assert.Equal(t, 2, res.Width())
	assert.Equal(t, []int{0, 2}, res.Indices())
	assert.Equal(t, []int{0, 0, 1}, res.Inverse())
	assert.Equal(t, []float64{0, 0, 10, 10}, res.UniqueFloat64())

	d, err = table.NewDynamic([]float64{0, 0, 0, 0.2}, 2, 2)
	require.NoError(t, err)
	res, err = UniqueDynamic(d, 0.5, WithMethodName("axis"))
	require.NoError(t, err)
	assert.Equal(t, table.Float64, res.DType())
	assert.Equal(t, 1, res.Len())
	assert.Equal(t, []float64{0, 0}, res.UniqueFloat64())

	_, err = UniqueDynamic(nil, 0.5)
	require.ErrorIs(t, err, ErrNilTable)

	_, err = UniqueDynamic(&table.Dynamic{}, 0.5)
	require.ErrorIs(t, err, table.ErrUnsupportedType)
}

func TestMetricsAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := &BasicMetricsCollector{}

	tbl := mustTable(t, [][]float64{{0, 0}, {0, 0}, {10, 10}})
	_, err := Unique(tbl, 0.5, WithLogger(logger), WithMetricsCollector(metrics), WithMethod(MethodProjection))
	require.NoError(t, err)
	_, err = Unique(tbl, -1, WithLogger(logger), WithMetricsCollector(metrics))
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.UniqueCount)
	assert.Equal(t, int64(1), stats.UniqueErrors)
	assert.Equal(t, int64(3), stats.RowsProcessed)
	assert.Equal(t, int64(2), stats.RowsUnique)
	assert.Equal(t, int64(1), stats.ProjectionCount)
	assert.Equal(t, int64(1), stats.LexicographicCount)

	out := buf.String()
	assert.Contains(t, out, `"msg":"unique completed"`)
	assert.Contains(t, out, `"method":"axis"`)
	assert.Contains(t, out, `"msg":"unique failed"`)
	assert.True(t, errors.Is(err, ErrInvalidTolerance))
}

func TestNilOptionsFallBack(t *testing.T) {
	tbl := mustTable(t, [][]float64{{0, 0}})
	res, err := Unique(tbl, 0.5, nil, WithLogger(nil), WithMetricsCollector(nil))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Len())
}

func BenchmarkUnique(b *testing.B) {
	rng := testutil.NewRNG(1)
	data, _ := rng.StackedShuffled(rng.UniformTable(5000, 4), 4, 2)
	tbl, err := table.New(data, 10000, 4)
	require.NoError(b, err)

	for _, m := range []Method{MethodLexicographic, MethodProjection} {
		b.Run(m.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Unique(tbl, 1e-9, WithMethod(m)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
