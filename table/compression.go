package table

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects how the payload of a table file is stored.
type Compression uint8

const (
	// CompressionNone stores the payload raw.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

// ParseCompression maps "none", "lz4" or "zstd" to a Compression.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "none", "":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrCompression, s)
	}
}

// lz4 expands at most ~255x; anything claiming more is corrupt.
const maxLZ4Ratio = 256

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

// compress returns the stored payload and the compression actually applied.
func compress(raw []byte, c Compression) ([]byte, Compression, error) {
	if len(raw) == 0 {
		return raw, CompressionNone, nil
	}

	var out []byte
	switch c {
	case CompressionNone:
		return raw, CompressionNone, nil
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, buf, nil)
		if err != nil {
			return nil, 0, err
		}
		out = buf[:n]
	case CompressionZSTD:
		enc, err := getZstdEncoder()
		if err != nil {
			return nil, 0, err
		}
		out = enc.EncodeAll(raw, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrCompression, c)
	}

	// incompressible
	if len(out) == 0 || len(out) >= len(raw) {
		return raw, CompressionNone, nil
	}
	return out, c, nil
}

func decompress(payload []byte, c Compression, rawSize int) ([]byte, error) {
	switch c {
	case CompressionNone:
		if len(payload) != rawSize {
			return nil, fmt.Errorf("%w: raw payload has %d bytes, want %d", ErrCorrupt, len(payload), rawSize)
		}
		return payload, nil
	case CompressionLZ4:
		if rawSize > maxLZ4Ratio*len(payload)+maxLZ4Ratio {
			return nil, fmt.Errorf("%w: implausible lz4 expansion", ErrCorrupt)
		}
		out := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if n != rawSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return out, nil
	case CompressionZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoderPool.Put(dec)

		out, err := dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if len(out) != rawSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrCompression, c)
	}
}
