package floats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Simple", []float32{1, 2, 3}, []float32{4, 5, 6}, 32},
		{"Zero", []float32{0, 0, 0}, []float32{0, 0, 0}, 0},
		{"Mixed", []float32{1, -1, 2}, []float32{1, 1, -2}, -4},
		{"Empty", []float32{}, []float32{}, 0},
		{"Single", []float32{2}, []float32{3}, 6},
		{"TailOfThree", []float32{1, 1, 1, 1, 1, 1, 1}, []float32{1, 1, 1, 1, 1, 1, 1}, 7},
		// Large vector to exercise the unrolled path
		{"Large", make([]float32, 1024), make([]float32, 1024), 0},
	}

	// Setup large vector
	for i := range tests[6].a {
		tests[6].a[i] = 1
		tests[6].b[i] = 1
	}
	tests[6].expected = 1024

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dot(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-5)
		})
	}
}

func TestDotFloat64(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := make([]float64, 257)
	b := make([]float64, 257)
	var want float64
	for i := range a {
		a[i] = rng.Float64() - 0.5
		b[i] = rng.Float64() - 0.5
		want += a[i] * b[i]
	}

	assert.InDelta(t, want, Dot(a, b), 1e-12)
}

func TestDotBatch(t *testing.T) {
	query := []float32{1, 2}
	targets := []float32{
		1, 0,
		0, 1,
		3, 4,
	}

	out := make([]float32, 3)
	DotBatch(query, targets, 2, out)

	assert.InDeltaSlice(t, []float32{1, 2, 11}, out, 1e-6)
}

func TestSquaredNorms(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		rows     int
		cols     int
		expected []float64
	}{
		{"TwoRows", []float64{1, 2, 3, 4, 5, 6}, 2, 3, []float64{14, 77}},
		{"SingleColumn", []float64{-2, 3}, 2, 1, []float64{4, 9}},
		{"NoRows", []float64{}, 0, 3, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]float64, tt.rows)
			SquaredNorms(tt.data, tt.rows, tt.cols, out)
			assert.InDeltaSlice(t, tt.expected, out, 1e-12)
		})
	}
}

func TestSqrt(t *testing.T) {
	assert.InDelta(t, 3, Sqrt(float32(9)), 1e-6)
	assert.InDelta(t, math.Sqrt(2), Sqrt(float64(2)), 1e-15)
	assert.Equal(t, float32(0), Sqrt(float32(0)))
}

func TestEps(t *testing.T) {
	e32 := Eps[float32]()
	e64 := Eps[float64]()

	require.Positive(t, e32)
	require.Positive(t, e64)
	assert.Less(t, float64(e64), float64(e32))
	assert.InDelta(t, 1.1920929e-07, float64(e32), 1e-10)
	assert.InDelta(t, 2.220446049250313e-16, float64(e64), 1e-20)
}
