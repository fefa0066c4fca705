package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codecs = []Codec{JSON{}, GoJSON{}}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, err := ByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}

	c, err := ByName("")
	require.NoError(t, err)
	assert.Equal(t, Default, c)

	_, err = ByName("msgpack")
	assert.ErrorIs(t, err, ErrUnknownCodec)
	assert.ErrorContains(t, err, "go-json or json")
}

func TestCodecsAgree(t *testing.T) {
	doc := benchDocument{DType: "float32", Shape: []int{2, 2}, Data: []float64{0, 0.25, -1, 3}}

	std := MustMarshal(JSON{}, doc)
	goj := MustMarshal(GoJSON{}, doc)
	assert.Equal(t, string(std), string(goj))

	for _, c := range codecs {
		var back benchDocument
		require.NoError(t, c.Unmarshal(std, &back), c.Name())
		assert.Equal(t, doc, back)
	}
}

func TestUnmarshal_Strict(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "unknown field", input: `{"dtype":"float64","shap":[1,1],"data":[1]}`},
		{name: "trailing value", input: `{"dtype":"float64","shape":[1,1],"data":[1]} {}`, wantErr: ErrTrailingData},
		{name: "truncated", input: `{"dtype":"float64","shape":[1,`},
	}

	for _, c := range codecs {
		for _, tt := range tests {
			t.Run(c.Name()+"/"+tt.name, func(t *testing.T) {
				var doc benchDocument
				err := c.Unmarshal([]byte(tt.input), &doc)
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			})
		}
	}
}

func TestUnmarshal_TrailingWhitespace(t *testing.T) {
	for _, c := range codecs {
		var v []int
		require.NoError(t, c.Unmarshal([]byte("[1,2]\n  "), &v), c.Name())
		assert.Equal(t, []int{1, 2}, v)
	}
}

func TestMarshal_NoHTMLEscape(t *testing.T) {
	type labeled struct {
		Label string `json:"label"`
	}

	tests := []struct {
		name string
		v    any
		want string
	}{
		{"map", map[string]string{"name": "a<b"}, `{"name":"a<b"}`},
		{"struct", labeled{Label: "x > 0 && y < 1"}, `{"label":"x > 0 && y < 1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range codecs {
				out, err := c.Marshal(tt.v)
				require.NoError(t, err)
				assert.Equal(t, tt.want, string(out), c.Name())
			}
		})
	}
}

func TestCodecsAgree_Strings(t *testing.T) {
	v := map[string]any{"dtype": "<float64>", "note": "a&b", "shape": []int{1, 1}}
	assert.Equal(t, string(MustMarshal(JSON{}, v)), string(MustMarshal(GoJSON{}, v)))
}

func TestMustMarshalDefault(t *testing.T) {
	assert.Equal(t, "[1]", string(MustMarshal(nil, []int{1})))
	assert.Panics(t, func() { MustMarshal(JSON{}, make(chan int)) })
}
