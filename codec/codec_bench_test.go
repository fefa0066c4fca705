package codec

import (
	"testing"
)

type benchDocument struct {
	DType string    `json:"dtype"`
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

type benchResult struct {
	Unique  []float64 `json:"unique"`
	Indices []int     `json:"indices"`
	Inverse []int     `json:"inverse"`
}

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for b.Loop() {
		out, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func benchmarkCodecUnmarshal[T any](b *testing.B, c Codec, data []byte, dst *T) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	var v T
	b.ResetTimer()
	for b.Loop() {
		if err := c.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
	if dst != nil {
		*dst = v
	}
}

func makeDocument(height, width int) benchDocument {
	data := make([]float64, height*width)
	for i := range data {
		data[i] = float64(i%97) * 0.125
	}
	return benchDocument{DType: "float64", Shape: []int{height, width}, Data: data}
}

func BenchmarkCodec_Marshal_Document(b *testing.B) {
	doc := makeDocument(1000, 8)

	b.Run("stdlib", func(b *testing.B) { benchmarkCodecMarshal(b, JSON{}, doc) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecMarshal(b, GoJSON{}, doc) })
}

func BenchmarkCodec_Unmarshal_Document(b *testing.B) {
	jsonData := MustMarshal(JSON{}, makeDocument(1000, 8))

	b.Run("stdlib", func(b *testing.B) {
		var sink benchDocument
		benchmarkCodecUnmarshal(b, JSON{}, jsonData, &sink)
		_ = sink
	})
	b.Run("go-json", func(b *testing.B) {
		var sink benchDocument
		benchmarkCodecUnmarshal(b, GoJSON{}, jsonData, &sink)
		_ = sink
	})
}

func BenchmarkCodec_Marshal_Result(b *testing.B) {
	res := benchResult{
		Unique:  []float64{0, 0.5, 1, 1.5},
		Indices: []int{0, 3},
		Inverse: []int{0, 0, 1, 1, 0, 1},
	}

	b.Run("stdlib", func(b *testing.B) { benchmarkCodecMarshal(b, JSON{}, res) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecMarshal(b, GoJSON{}, res) })
}
