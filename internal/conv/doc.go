// Package conv provides checked integer conversions between Go's int and the
// fixed-width integers used by bitmaps and the table file header.
//
// Use cases:
//   - Row ids handed to 32-bit roaring bitmaps
//   - Counts read from untrusted file headers
package conv
