package floats

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the set of element types the kernels operate on.
type Float interface {
	~float32 | ~float64
}

// Dot calculates the dot product of a and b.
//
// SAFETY: This function assumes len(a) == len(b).
// It does NOT perform bounds checks for performance reasons.
// Callers MUST ensure lengths match to avoid buffer over-reads.
func Dot[T Float](a, b []T) T {
	var s0, s1, s2, s3 T

	i := 0
	for ; i+4 <= len(a); i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < len(a); i++ {
		s0 += a[i] * b[i]
	}

	return (s0 + s1) + (s2 + s3)
}

// DotBatch calculates dot products between query and each row of targets.
// targets is a flattened row-major block of len(out) vectors of dimension
// dim; out receives one dot product per row.
//
// SAFETY: Assumes len(query) >= dim and len(targets) >= len(out)*dim.
func DotBatch[T Float](query, targets []T, dim int, out []T) {
	q := query[:dim]
	for i := range out {
		offset := i * dim
		out[i] = Dot(q, targets[offset:offset+dim])
	}
}

// SquaredNorm calculates the sum of squares of v.
func SquaredNorm[T Float](v []T) T {
	return Dot(v, v)
}

// SquaredNorms writes the squared L2 norm of every row of the row-major
// (rows x cols) matrix data into out.
//
// SAFETY: Assumes len(data) >= rows*cols and len(out) >= rows.
func SquaredNorms[T Float](data []T, rows, cols int, out []T) {
	for r := 0; r < rows; r++ {
		offset := r * cols
		out[r] = SquaredNorm(data[offset : offset+cols])
	}
}

// Sqrt returns the square root of x in the precision of T.
func Sqrt[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}

// Eps returns the machine epsilon of T.
func Eps[T Float]() T {
	if _, ok := any(T(0)).(float32); ok {
		return T(math32.Nextafter(1, 2) - 1)
	}
	return T(math.Nextafter(1, 2) - 1)
}
