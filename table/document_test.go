package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hupe1980/funi/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	for _, c := range []codec.Codec{nil, codec.JSON{}, codec.GoJSON{}} {
		src, err := NewDynamic([]float32{0.1, 0.2, 0.3, 0.4}, 2, 2)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, EncodeJSON(&buf, src, c))

		d, err := DecodeJSON(&buf, c)
		require.NoError(t, err)
		got, ok := d.Float32()
		require.True(t, ok)
		want, _ := src.Float32()
		assert.Equal(t, want.Data(), got.Data())
	}
}

func TestDecodeJSON(t *testing.T) {
	d, err := DecodeJSON(strings.NewReader(`{"shape":[2,1],"data":[1.5,2.5]}`), nil)
	require.NoError(t, err)
	assert.Equal(t, Float64, d.DType())
	assert.Equal(t, 2, d.Height())

	_, err = DecodeJSON(strings.NewReader(`{"dtype":"float64","shape":[3],"data":[1,2,3]}`), nil)
	require.ErrorIs(t, err, ErrDimensionality)

	_, err = DecodeJSON(strings.NewReader(`{"dtype":"int32","shape":[1,1],"data":[1]}`), nil)
	require.ErrorIs(t, err, ErrUnsupportedType)

	_, err = DecodeJSON(strings.NewReader(`{"dtype":`), nil)
	require.ErrorIs(t, err, ErrCorrupt)

	_, err = DecodeJSON(strings.NewReader(`{"dtype":"float64","shap":[1,1],"data":[1]}`), nil)
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestEncodeJSONEmpty(t *testing.T) {
	src, err := NewDynamic([]float64{}, 0, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, src, codec.JSON{}))
	assert.JSONEq(t, `{"dtype":"float64","shape":[0,3],"data":[]}`, buf.String())
}
