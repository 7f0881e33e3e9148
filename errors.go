package fusedl2

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyReferenceSet is returned when the reference set has no rows.
	// No nearest index is defined for K = 0.
	ErrEmptyReferenceSet = errors.New("reference set is empty")
)

// ErrDimensionMismatch indicates that the query and reference matrices
// disagree on the vector dimension.
type ErrDimensionMismatch struct {
	QueryDim int
	RefDim   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: queries have %d columns, references have %d", e.QueryDim, e.RefDim)
}

// ErrInvalidShape indicates a malformed matrix shape: negative row count,
// non-positive column count, or a backing slice shorter than rows*cols.
type ErrInvalidShape struct {
	Rows int
	Cols int
	Len  int
}

func (e *ErrInvalidShape) Error() string {
	return fmt.Sprintf("invalid shape: %d x %d over %d elements", e.Rows, e.Cols, e.Len)
}

// ErrShortBuffer indicates a caller-supplied output buffer that cannot
// hold one element per query row.
type ErrShortBuffer struct {
	Buffer string
	Need   int
	Got    int
}

func (e *ErrShortBuffer) Error() string {
	return fmt.Sprintf("%s buffer too short: need %d, got %d", e.Buffer, e.Need, e.Got)
}

// ErrNumericInstability indicates that an accumulated squared distance
// came out negative beyond the cancellation tolerance for the element
// type. Small negative values are clamped to zero and never reported;
// this error signals a precision or input-scale problem.
type ErrNumericInstability struct {
	Row   int
	Ref   int
	Value float64
}

func (e *ErrNumericInstability) Error() string {
	return fmt.Sprintf("numeric instability: squared distance %g between query %d and reference %d", e.Value, e.Row, e.Ref)
}
