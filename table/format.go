package table

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/hupe1980/funi/internal/conv"
	"github.com/hupe1980/funi/internal/hash"
	"github.com/hupe1980/funi/tolerance"
)

const (
	headerSize    = 32
	trailerSize   = 4 // CRC32C of the stored payload
	formatVersion = 1
)

var magic = [4]byte{'F', 'U', 'N', 'I'}

type header struct {
	dtype       DType
	compression Compression
	height      uint64
	width       uint64
	payloadLen  uint64
}

func (h header) marshal() []byte {
	buf := make([]byte, headerSize)
	copy(buf[0:4], magic[:])
	buf[4] = formatVersion
	buf[5] = byte(h.dtype)
	buf[6] = byte(h.compression)
	binary.LittleEndian.PutUint64(buf[8:], h.height)
	binary.LittleEndian.PutUint64(buf[16:], h.width)
	binary.LittleEndian.PutUint64(buf[24:], h.payloadLen)
	return buf
}

func unmarshalHeader(buf []byte) (header, error) {
	if !bytes.Equal(buf[0:4], magic[:]) {
		return header{}, ErrBadMagic
	}
	if buf[4] != formatVersion {
		return header{}, fmt.Errorf("%w: %d", ErrVersion, buf[4])
	}
	h := header{
		dtype:       DType(buf[5]),
		compression: Compression(buf[6]),
		height:      binary.LittleEndian.Uint64(buf[8:]),
		width:       binary.LittleEndian.Uint64(buf[16:]),
		payloadLen:  binary.LittleEndian.Uint64(buf[24:]),
	}
	if h.dtype != Float32 && h.dtype != Float64 {
		return header{}, fmt.Errorf("%w: dtype %d", ErrUnsupportedType, buf[5])
	}
	if h.compression > CompressionZSTD {
		return header{}, fmt.Errorf("%w: %d", ErrCompression, buf[6])
	}
	return h, nil
}

func encodeValues[T tolerance.Float](data []T) []byte {
	var zero T
	switch any(zero).(type) {
	case float32:
		buf := make([]byte, 4*len(data))
		for i, v := range data {
			binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(float32(v)))
		}
		return buf
	default:
		buf := make([]byte, 8*len(data))
		for i, v := range data {
			binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(float64(v)))
		}
		return buf
	}
}

func decodeFloat32s(raw []byte) []float32 {
	out := make([]float32, len(raw)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return out
}

func decodeFloat64s(raw []byte) []float64 {
	out := make([]float64, len(raw)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[8*i:]))
	}
	return out
}

func dtypeOf[T tolerance.Float]() DType {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return Float32
	}
	return Float64
}

// Encode writes t to w in the binary table format.
func Encode[T tolerance.Float](w io.Writer, t *Table[T], c Compression) error {
	raw := encodeValues(t.Data())
	payload, applied, err := compress(raw, c)
	if err != nil {
		return fmt.Errorf("table: compress %s: %w", c, err)
	}

	h := header{
		dtype:       dtypeOf[T](),
		compression: applied,
		height:      uint64(t.Height()),
		width:       uint64(t.Width()),
		payloadLen:  uint64(len(payload)),
	}
	if _, err := w.Write(h.marshal()); err != nil {
		return err
	}
	sum := hash.NewCRC32C()
	if _, err := io.MultiWriter(w, sum).Write(payload); err != nil {
		return err
	}
	var trailer [trailerSize]byte
	binary.LittleEndian.PutUint32(trailer[:], sum.Sum32())
	_, err = w.Write(trailer[:])
	return err
}

// EncodeDynamic writes a runtime-typed table.
func EncodeDynamic(w io.Writer, d *Dynamic, c Compression) error {
	if t, ok := d.Float32(); ok {
		return Encode(w, t, c)
	}
	if t, ok := d.Float64(); ok {
		return Encode(w, t, c)
	}
	return fmt.Errorf("%w: empty dynamic table", ErrUnsupportedType)
}

// Marshal encodes a runtime-typed table into a byte slice.
func Marshal(d *Dynamic, c Compression) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeDynamic(&buf, d, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads one table in the binary format from r.
func Decode(r io.Reader) (*Dynamic, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrCorrupt, err)
	}
	h, err := unmarshalHeader(buf)
	if err != nil {
		return nil, err
	}

	height, err := conv.Uint64ToInt(h.height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	width, err := conv.Uint64ToInt(h.width)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	count, err := conv.MulInt(height, width)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	rawSize, err := conv.MulInt(count, h.dtype.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	payloadLen, err := conv.Uint64ToInt(h.payloadLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	payload, err := io.ReadAll(io.LimitReader(r, int64(payloadLen)))
	if err != nil {
		return nil, err
	}
	if len(payload) != payloadLen {
		return nil, fmt.Errorf("%w: payload has %d bytes, header says %d", ErrCorrupt, len(payload), payloadLen)
	}
	var trailer [trailerSize]byte
	if _, err := io.ReadFull(r, trailer[:]); err != nil {
		return nil, fmt.Errorf("%w: checksum: %w", ErrCorrupt, err)
	}
	if !hash.Verify(payload, binary.LittleEndian.Uint32(trailer[:])) {
		return nil, ErrChecksum
	}

	raw, err := decompress(payload, h.compression, rawSize)
	if err != nil {
		return nil, err
	}

	if h.dtype == Float32 {
		return NewDynamic(decodeFloat32s(raw), height, width)
	}
	return NewDynamic(decodeFloat64s(raw), height, width)
}

// Unmarshal decodes a table from a byte slice.
func Unmarshal(data []byte) (*Dynamic, error) {
	return Decode(bytes.NewReader(data))
}
