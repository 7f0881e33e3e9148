package fusedl2

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
)

func benchMatrix[T Float](rng *rand.Rand, rows, cols int) Matrix[T] {
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = T(rng.Float64())
	}
	m, _ := NewMatrix(data, rows, cols)
	return m
}

func benchmarkAssign[T Float](b *testing.B, n, k, d, workers int) {
	rng := rand.New(rand.NewSource(1))
	queries := benchMatrix[T](rng, n, d)
	refs := benchMatrix[T](rng, k, d)

	a, err := NewAssigner(refs, WithWorkers(workers))
	if err != nil {
		b.Fatal(err)
	}

	out := make([]int32, n)
	ctx := context.Background()

	b.SetBytes(int64(n * k * d * elemSize[T]()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := a.Assign(ctx, queries, out, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func elemSize[T Float]() int {
	var v T
	if _, ok := any(v).(float32); ok {
		return 4
	}
	return 8
}

func BenchmarkAssign(b *testing.B) {
	shapes := []struct{ n, k, d int }{
		{1000, 64, 128},
		{1000, 1024, 128},
		{10000, 256, 32},
	}

	for _, s := range shapes {
		for _, workers := range []int{1, 0} {
			name := fmt.Sprintf("n=%d/k=%d/d=%d/workers=%d", s.n, s.k, s.d, workers)
			b.Run("float32/"+name, func(b *testing.B) {
				benchmarkAssign[float32](b, s.n, s.k, s.d, workers)
			})
			b.Run("float64/"+name, func(b *testing.B) {
				benchmarkAssign[float64](b, s.n, s.k, s.d, workers)
			})
		}
	}
}

func BenchmarkAssignColumnSplit(b *testing.B) {
	// Few rows over many references exercises the column-parallel layout.
	b.Run("serial", func(b *testing.B) {
		benchmarkAssign[float32](b, 4, 65536, 64, 1)
	})
	b.Run("parallel", func(b *testing.B) {
		benchmarkAssign[float32](b, 4, 65536, 64, 0)
	})
}
