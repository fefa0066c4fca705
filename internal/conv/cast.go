package conv

import (
	"fmt"
	"math"
)

// RowID converts a row index to a 32-bit bitmap id.
func RowID(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("row id overflow: %d cannot be converted to uint32 (negative)", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("row id overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// Uint64ToInt converts a header count to int.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// MulInt multiplies two non-negative ints, failing on overflow.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: %d*%d has a negative operand", a, b)
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, fmt.Errorf("integer overflow: %d*%d exceeds int", a, b)
	}
	return a * b, nil
}
