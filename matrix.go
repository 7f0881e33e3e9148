package fusedl2

// Float is the set of element types supported by the assignment kernel.
type Float interface {
	~float32 | ~float64
}

// Matrix is a read-only, row-major view over a caller-owned slice.
// The zero value is an empty 0x0 matrix.
type Matrix[T Float] struct {
	data []T
	rows int
	cols int
}

// NewMatrix wraps data as a rows x cols row-major matrix.
// data is not copied; the caller must not mutate it while an assignment
// that references the matrix is running.
func NewMatrix[T Float](data []T, rows, cols int) (Matrix[T], error) {
	if rows < 0 || cols < 1 || len(data) < rows*cols {
		return Matrix[T]{}, &ErrInvalidShape{Rows: rows, Cols: cols, Len: len(data)}
	}

	return Matrix[T]{data: data[:rows*cols], rows: rows, cols: cols}, nil
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns (the vector dimension).
func (m Matrix[T]) Cols() int { return m.cols }

// Row returns the i-th row as a slice view into the backing data.
func (m Matrix[T]) Row(i int) []T {
	offset := i * m.cols
	return m.data[offset : offset+m.cols]
}
