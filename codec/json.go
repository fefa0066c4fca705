package codec

import (
	"bytes"
	"encoding/json"
)

// JSON is the standard-library codec.
//
// NaN and ±Inf are not representable in JSON; tables containing them must
// use the binary format.
type JSON struct{}

// Marshal encodes v without HTML escaping.
func (JSON) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// Unmarshal decodes exactly one value from data into v.
func (JSON) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return ErrTrailingData
	}
	return nil
}

// Name returns "json".
func (JSON) Name() string { return "json" }
