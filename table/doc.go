// Package table provides the dense row table consumed by the deduplication
// engines, a type-erased wrapper for callers that only know the element type
// at runtime, and a compact binary file format.
//
// # Shape Rules
//
// A table is exactly two-dimensional: New rejects any shape that does not have
// two extents, and the product of the extents must equal the length of the
// data. Ragged row slices are rejected by FromRows.
//
// # File Format
//
// The binary format is a 32-byte little-endian header followed by the
// row-major payload:
//
//	offset  size  field
//	0       4     magic "FUNI"
//	4       1     version (1)
//	5       1     dtype (1 = float32, 2 = float64)
//	6       1     compression (0 = none, 1 = LZ4, 2 = ZSTD)
//	7       1     reserved
//	8       8     height
//	16      8     width
//	24      8     payload length in bytes
//
// If compression does not shrink the payload it is stored raw and the header
// says so.
package table
