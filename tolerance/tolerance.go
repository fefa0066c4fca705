package tolerance

// Float is the set of element types the engines operate on.
type Float interface {
	float32 | float64
}

func abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Dot calculates the dot product of two rows.
// Assumes rows are the same length (caller's responsibility).
func Dot[T Float](a, b []T) T {
	var ret T
	for i := range a {
		ret += a[i] * b[i]
	}
	return ret
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two rows.
// Assumes rows are the same length (caller's responsibility).
func SquaredL2[T Float](a, b []T) T {
	var ret T
	for i := range a {
		d := a[i] - b[i]
		ret += d * d
	}
	return ret
}

// Sum returns the plain coordinate sum of a row, which is the projection
// onto the all-ones metric.
func Sum[T Float](a []T) T {
	var ret T
	for _, v := range a {
		ret += v
	}
	return ret
}

// WithinComponents reports whether every component of a and b differs by
// strictly less than tol in absolute value.
func WithinComponents[T Float](a, b []T, tol T) bool {
	for i := range a {
		if !(abs(a[i]-b[i]) < tol) {
			return false
		}
	}
	return true
}

// WithinDistance reports whether the squared Euclidean distance between a and
// b is strictly less than tol².
func WithinDistance[T Float](a, b []T, tol T) bool {
	return SquaredL2(a, b) < tol*tol
}

// Compare orders two rows lexicographically under tol.
//
// Components within tol of each other are treated as equal and comparison
// moves on to the next component. The first component that differs by tol or
// more decides the order by the raw sign of the difference. Rows whose
// components are all tolerance-equal compare as 0.
//
// Compare and WithinComponents agree: Compare(a, b, tol) == 0 exactly when
// WithinComponents(a, b, tol) holds.
func Compare[T Float](a, b []T, tol T) int {
	for i := range a {
		d := a[i] - b[i]
		if abs(d) < tol {
			continue
		}
		if d < 0 {
			return -1
		}
		return 1
	}
	return 0
}
