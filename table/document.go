package table

import (
	"fmt"
	"io"

	"github.com/hupe1980/funi/codec"
)

// Document is the JSON form of a table.
type Document struct {
	DType string    `json:"dtype"`
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// ToDocument converts d into its JSON document form. float32 values are
// widened exactly.
func ToDocument(d *Dynamic) (*Document, error) {
	doc := &Document{Shape: []int{d.Height(), d.Width()}}
	switch d.DType() {
	case Float32:
		src := d.f32.Data()
		doc.DType = Float32.String()
		doc.Data = make([]float64, len(src))
		for i, v := range src {
			doc.Data[i] = float64(v)
		}
	case Float64:
		doc.DType = Float64.String()
		doc.Data = d.f64.Data()
	default:
		return nil, fmt.Errorf("%w: empty dynamic table", ErrUnsupportedType)
	}
	if doc.Data == nil {
		doc.Data = []float64{}
	}
	return doc, nil
}

// Table converts the document back into a table. The shape is validated
// against the data length.
func (doc *Document) Table() (*Dynamic, error) {
	dt, err := ParseDType(doc.DType)
	if err != nil {
		return nil, err
	}
	if dt == Float32 {
		data := make([]float32, len(doc.Data))
		for i, v := range doc.Data {
			data[i] = float32(v)
		}
		return NewDynamic(data, doc.Shape...)
	}
	return NewDynamic(doc.Data, doc.Shape...)
}

// EncodeJSON writes d as a JSON document using c (codec.Default when nil).
func EncodeJSON(w io.Writer, d *Dynamic, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}
	doc, err := ToDocument(d)
	if err != nil {
		return err
	}
	b, err := c.Marshal(doc)
	if err != nil {
		return fmt.Errorf("table: %s encode: %w", c.Name(), err)
	}
	_, err = w.Write(b)
	return err
}

// DecodeJSON reads a JSON document from r using c (codec.Default when nil).
func DecodeJSON(r io.Reader, c codec.Codec) (*Dynamic, error) {
	if c == nil {
		c = codec.Default
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := c.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s decode: %w", ErrCorrupt, c.Name(), err)
	}
	return doc.Table()
}
