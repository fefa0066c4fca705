package projection

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/funi/internal/conv"
	"github.com/hupe1980/funi/internal/scratch"
	"github.com/hupe1980/funi/tolerance"
)

const unassigned = -1

// Unique finds the tolerance-unique rows of a row-major height×width table
// and writes them into out. It returns the number of unique rows.
//
// metric must have width entries; nil projects onto the all-ones vector
// (plain coordinate sum). Rows are duplicates when their squared distance is
// below tol².
//
// A row that was already claimed by an earlier cluster stays there even if a
// later window reaches it, so every cluster keeps exactly one representative.
func Unique[T tolerance.Float](data []T, height, width int, metric []T, tol T, stable bool, out *Output[T]) (int, error) {
	if height < 0 || width < 0 || len(data) < height*width {
		return 0, fmt.Errorf("%w: len=%d height=%d width=%d", ErrShortData, len(data), height, width)
	}
	if metric != nil && len(metric) != width {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrMetricLength, len(metric), width)
	}
	if out == nil || !out.fits(height, width) {
		return 0, ErrCapacity
	}
	if height == 0 {
		return 0, nil
	}
	if _, err := conv.RowID(height - 1); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTooManyRows, err)
	}

	row := func(i int) []T { return data[i*width : (i+1)*width] }

	keys := scratch.Floats[T]().Get(height)
	defer scratch.Floats[T]().Put(keys)
	for i := range keys {
		if metric == nil {
			keys[i] = tolerance.Sum(row(i))
		} else {
			keys[i] = tolerance.Dot(row(i), metric)
		}
	}

	order := scratch.Ints.Get(height)
	defer scratch.Ints.Put(order)
	for i := range order {
		order[i] = i
	}
	byKey := func(a, b int) int { return cmp.Compare(keys[a], keys[b]) }
	if stable {
		slices.SortStableFunc(order, byKey)
	} else {
		slices.SortFunc(order, byKey)
	}

	inverse := out.Inverse[:height]
	for i := range inverse {
		inverse[i] = unassigned
	}

	reps := roaring.New()
	n := 0
	last := height - 1

	for lower := 0; lower < last; lower++ {
		li := order[lower]
		if inverse[li] != unassigned {
			continue
		}

		reps.Add(uint32(li))
		lowest := li
		if !stable {
			out.write(n, data, width, li)
		}
		inverse[li] = n

		for upper := lower + 1; upper < height && keys[order[upper]]-keys[li] < tol; upper++ {
			ui := order[upper]
			if inverse[ui] != unassigned {
				continue
			}
			if !tolerance.WithinDistance(row(li), row(ui), tol) {
				continue
			}
			inverse[ui] = n
			if stable && ui < lowest {
				reps.Remove(uint32(lowest))
				reps.Add(uint32(ui))
				lowest = ui
			}
		}
		n++
	}

	// The last row in key order opens no window of its own.
	if li := order[last]; inverse[li] == unassigned {
		if !stable {
			out.write(n, data, width, li)
		}
		inverse[li] = n
		reps.Add(uint32(li))
		n++
	}

	if stable {
		compact(reps, n, data, width, out, inverse)
	}

	return n, nil
}

// compact rewrites the outputs in ascending original-row order of the
// representatives and relabels inverse to match.
func compact[T tolerance.Float](reps *roaring.Bitmap, n int, data []T, width int, out *Output[T], inverse []int) {
	remap := scratch.Ints.Get(n)
	defer scratch.Ints.Put(remap)

	slot := 0
	it := reps.Iterator()
	for it.HasNext() {
		id := int(it.Next())
		out.write(slot, data, width, id)
		remap[inverse[id]] = slot
		slot++
	}

	for i, cluster := range inverse {
		inverse[i] = remap[cluster]
	}
}
