package codec

import (
	"bytes"

	gojson "github.com/goccy/go-json"
)

// GoJSON is the default codec, backed by github.com/goccy/go-json. It is
// several times faster than JSON on large tables.
type GoJSON struct{}

// Marshal encodes v without HTML escaping.
func (GoJSON) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := gojson.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal decodes exactly one value from data into v.
func (GoJSON) Unmarshal(data []byte, v any) error {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return ErrTrailingData
	}
	return nil
}

// Name returns "go-json".
func (GoJSON) Name() string { return "go-json" }
