// Package codec converts table documents and results to and from JSON.
//
// Both codecs write the same bytes for the same value and reject input with
// unknown fields or trailing data, so a document with a misspelled key fails
// to decode instead of producing an empty table.
package codec

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCodec is returned by ByName for names no codec answers to.
	ErrUnknownCodec = errors.New("codec: unknown codec")

	// ErrTrailingData is returned when input continues after the first value.
	ErrTrailingData = errors.New("codec: trailing data after value")
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = GoJSON{}

var builtins = []Codec{GoJSON{}, JSON{}}

// Names lists the built-in codec names, default first.
func Names() []string {
	names := make([]string, len(builtins))
	for i, c := range builtins {
		names[i] = c.Name()
	}
	return names
}

// ByName returns the built-in codec called name. An empty name selects
// Default.
func ByName(name string) (Codec, error) {
	if name == "" {
		return Default, nil
	}
	for _, c := range builtins {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w %q (want %s)", ErrUnknownCodec, name, strings.Join(Names(), " or "))
}

// MustMarshal is a helper for tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
