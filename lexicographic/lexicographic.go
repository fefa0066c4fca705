package lexicographic

import (
	"fmt"
	"slices"

	"github.com/hupe1980/funi/tolerance"
)

// Result is the output of Unique.
type Result struct {
	// SortedIDs is the permutation of [0, height) in comparator order.
	SortedIDs []int
	// Positions are the kept positions into SortedIDs, ascending.
	Positions []int
	// Inverse maps every original row to its group index in Positions.
	// Nil if no inverse buffer was supplied.
	Inverse []int
}

// Len returns the number of unique rows.
func (r *Result) Len() int {
	return len(r.Positions)
}

// OriginalIndices resolves Positions to original row ids
// (SortedIDs[Positions[i]]). The returned slice is freshly allocated.
func (r *Result) OriginalIndices() []int {
	ids := make([]int, len(r.Positions))
	for i, p := range r.Positions {
		ids[i] = r.SortedIDs[p]
	}
	return ids
}

func row[T tolerance.Float](data []T, width, i int) []T {
	return data[i*width : (i+1)*width]
}

func checkData[T tolerance.Float](data []T, height, width int) error {
	if height < 0 || width < 0 || len(data) < height*width {
		return fmt.Errorf("%w: len=%d height=%d width=%d", ErrShortData, len(data), height, width)
	}
	return nil
}

// ArgSort orders sortedIDs in place by the tolerance-aware lexicographic
// comparator. sortedIDs must have exactly height entries; its current contents
// are sorted as given, so callers typically pass the identity permutation.
//
// With stable set, rows that compare equal keep their relative order.
func ArgSort[T tolerance.Float](data []T, height, width int, tol T, stable bool, sortedIDs []int) error {
	if len(sortedIDs) != height {
		return fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(sortedIDs), height)
	}
	if err := checkData(data, height, width); err != nil {
		return err
	}

	cmp := func(a, b int) int {
		return tolerance.Compare(row(data, width, a), row(data, width, b), tol)
	}
	if stable {
		slices.SortStableFunc(sortedIDs, cmp)
	} else {
		slices.SortFunc(sortedIDs, cmp)
	}
	return nil
}

// Unique finds the tolerance-unique rows of a row-major height×width table.
//
// If inverse is non-nil it must have height entries and is filled with the
// group index of every original row; Result.Inverse then aliases it. A nil
// inverse skips that pass.
func Unique[T tolerance.Float](data []T, height, width int, tol T, stable bool, inverse []int) (*Result, error) {
	if inverse != nil && len(inverse) != height {
		return nil, fmt.Errorf("%w: inverse has %d entries, want %d", ErrSizeMismatch, len(inverse), height)
	}

	sorted := make([]int, height)
	for i := range sorted {
		sorted[i] = i
	}
	if err := ArgSort(data, height, width, tol, stable, sorted); err != nil {
		return nil, err
	}

	same := func(pa, pb int) bool {
		return tolerance.WithinComponents(row(data, width, sorted[pa]), row(data, width, sorted[pb]), tol)
	}

	// Adjacent-unique: compare against the last kept position.
	positions := make([]int, 0, height)
	for i := 0; i < height; i++ {
		if len(positions) > 0 && same(positions[len(positions)-1], i) {
			continue
		}
		positions = append(positions, i)
	}

	res := &Result{
		SortedIDs: sorted,
		Positions: slices.Clip(positions),
	}

	if inverse != nil {
		// Rows between two kept positions belong to the earlier one.
		group := 0
		for i := 0; i < height; i++ {
			if group+1 < len(positions) && positions[group+1] == i {
				group++
			}
			inverse[sorted[i]] = group
		}
		res.Inverse = inverse
	}

	return res, nil
}
