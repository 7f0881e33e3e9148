// Package pool provides reusable scratch buffers for assignment calls.
// Uses sync.Pool so repeated calls on the same Assigner do not reallocate
// per-row working state.
package pool

import (
	"sync"

	"github.com/hupe1980/fusedl2/internal/floats"
)

// Scratch contains the per-call working set for one assignment:
// the query squared norms and the running (distance, index) accumulator
// for every query row. All fields are reusable across calls.
type Scratch[T floats.Float] struct {
	Norms []T
	Dist  []T
	Index []int32
}

// Pool is a typed pool of Scratch objects.
type Pool[T floats.Float] struct {
	p sync.Pool
}

// New creates an empty Pool.
func New[T floats.Float]() *Pool[T] {
	pl := &Pool[T]{}
	pl.p.New = func() any {
		return &Scratch[T]{}
	}

	return pl
}

// Get retrieves a Scratch sized for rows query rows.
// Buffer contents are unspecified; callers initialize what they use.
func (p *Pool[T]) Get(rows int) *Scratch[T] {
	s := p.p.Get().(*Scratch[T])
	if cap(s.Norms) < rows {
		s.Norms = make([]T, rows)
		s.Dist = make([]T, rows)
		s.Index = make([]int32, rows)
	}

	s.Norms = s.Norms[:rows]
	s.Dist = s.Dist[:rows]
	s.Index = s.Index[:rows]

	return s
}

// Put returns a Scratch to the pool for reuse.
func (p *Pool[T]) Put(s *Scratch[T]) {
	p.p.Put(s)
}
