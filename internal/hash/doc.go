// Package hash provides the payload checksum used by the table file format.
//
// Checksums are CRC32-Castagnoli, which the standard library computes with
// SSE4.2 or the ARM CRC extension when available.
//
//	sum := hash.CRC32C(payload)
//
// For data that arrives in pieces:
//
//	h := hash.NewCRC32C()
//	h.Write(header)
//	h.Write(payload)
//	sum := h.Sum32()
package hash
