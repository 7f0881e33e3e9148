package fusedl2

import (
	"context"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/fusedl2/internal/floats"
	"github.com/hupe1980/fusedl2/internal/pool"
)

// ArgminL2 writes, for every row of queries, the index of its nearest row
// in refs under Euclidean distance into out. If dists is non-nil it
// receives the corresponding distances (true Euclidean by default,
// squared with WithSquaredDistances).
//
// out must have at least queries.Rows() elements, as must dists when
// non-nil. On error no output is written.
func ArgminL2[T Float](ctx context.Context, queries, refs Matrix[T], out []int32, dists []T, opts ...Option) error {
	a, err := NewAssigner(refs, opts...)
	if err != nil {
		return err
	}

	return a.Assign(ctx, queries, out, dists)
}

// Assigner performs repeated nearest-reference assignments against one
// fixed reference set. The squared norms of the reference rows are
// computed once at construction and reused by every Assign call; if the
// reference data changes, build a new Assigner.
type Assigner[T Float] struct {
	refs     Matrix[T]
	refNorms []T
	opts     options
	scratch  *pool.Pool[T]
}

// NewAssigner creates an Assigner for the given reference set.
// Returns ErrEmptyReferenceSet if refs has no rows.
func NewAssigner[T Float](refs Matrix[T], opts ...Option) (*Assigner[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if refs.rows == 0 {
		return nil, ErrEmptyReferenceSet
	}
	if refs.cols < 1 || len(refs.data) < refs.rows*refs.cols {
		return nil, &ErrInvalidShape{Rows: refs.rows, Cols: refs.cols, Len: len(refs.data)}
	}

	refNorms := make([]T, refs.rows)
	floats.SquaredNorms(refs.data, refs.rows, refs.cols, refNorms)

	return &Assigner[T]{
		refs:     refs,
		refNorms: refNorms,
		opts:     o,
		scratch:  pool.New[T](),
	}, nil
}

// Refs returns the number of reference rows.
func (a *Assigner[T]) Refs() int { return a.refs.rows }

// Dimension returns the vector dimension.
func (a *Assigner[T]) Dimension() int { return a.refs.cols }

// Assign computes the nearest reference row for every row of queries.
// See ArgminL2 for the output contract.
func (a *Assigner[T]) Assign(ctx context.Context, queries Matrix[T], out []int32, dists []T) error {
	start := time.Now()

	err := a.assign(ctx, queries, out, dists)

	duration := time.Since(start)
	a.opts.metrics.RecordAssign(queries.rows, a.refs.rows, a.refs.cols, duration, err)
	a.opts.logger.LogAssign(ctx, queries.rows, a.refs.rows, a.refs.cols, duration, err)

	return err
}

func (a *Assigner[T]) assign(ctx context.Context, queries Matrix[T], out []int32, dists []T) error {
	if queries.cols != a.refs.cols {
		return &ErrDimensionMismatch{QueryDim: queries.cols, RefDim: a.refs.cols}
	}

	n := queries.rows
	if len(out) < n {
		return &ErrShortBuffer{Buffer: "index", Need: n, Got: len(out)}
	}
	if dists != nil && len(dists) < n {
		return &ErrShortBuffer{Buffer: "distance", Need: n, Got: len(dists)}
	}
	if n == 0 {
		return nil
	}

	s := a.scratch.Get(n)
	defer a.scratch.Put(s)

	floats.SquaredNorms(queries.data, n, queries.cols, s.Norms)

	inf := T(math.Inf(1))
	for i := 0; i < n; i++ {
		s.Dist[i] = inf
		s.Index[i] = invalidIndex
	}

	if err := a.reduce(ctx, queries, s); err != nil {
		return err
	}

	copy(out[:n], s.Index)
	if dists != nil {
		if a.opts.squared {
			copy(dists[:n], s.Dist)
		} else {
			for i := 0; i < n; i++ {
				dists[i] = floats.Sqrt(s.Dist[i])
			}
		}
	}

	return nil
}

// reduce selects an execution layout and runs the fused tile reduction.
// The layout never changes results, only how work is partitioned: rows are
// split across workers when there are enough of them, otherwise the
// reference range is split and per-worker partials are merged through the
// deterministic candidate combine.
func (a *Assigner[T]) reduce(ctx context.Context, queries Matrix[T], s *pool.Scratch[T]) error {
	n := queries.rows
	k := a.refs.rows

	workers := a.opts.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	switch {
	case workers <= 1:
		return reduceTiles(ctx, queries, a.refs, s.Norms, a.refNorms, s.Dist, s.Index, 0, n, 0, k, &a.opts)
	case n >= 2*workers:
		return a.reduceRowParallel(ctx, queries, s, workers)
	case k >= 2*workers*a.opts.blockCols:
		return a.reduceColParallel(ctx, queries, s, workers)
	default:
		return reduceTiles(ctx, queries, a.refs, s.Norms, a.refNorms, s.Dist, s.Index, 0, n, 0, k, &a.opts)
	}
}

// reduceRowParallel partitions query rows into contiguous chunks, one
// errgroup task per chunk. Each row's accumulator is owned by exactly one
// task, so no synchronization is needed beyond Wait.
func (a *Assigner[T]) reduceRowParallel(ctx context.Context, queries Matrix[T], s *pool.Scratch[T], workers int) error {
	n := queries.rows

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	chunk := (n + workers - 1) / workers
	for q0 := 0; q0 < n; q0 += chunk {
		q1 := min(q0+chunk, n)
		g.Go(func() error {
			return reduceTiles(gctx, queries, a.refs, s.Norms, a.refNorms, s.Dist, s.Index, q0, q1, 0, a.refs.rows, &a.opts)
		})
	}

	return g.Wait()
}

// reduceColParallel splits the reference range across workers for small
// query sets. Every worker reduces all query rows over its reference span
// into private accumulators, which merge through candidate.merge; the
// combine is associative with an index tie-break, so the merged result
// equals a sequential ascending-index scan regardless of completion order.
func (a *Assigner[T]) reduceColParallel(ctx context.Context, queries Matrix[T], s *pool.Scratch[T], workers int) error {
	n := queries.rows
	k := a.refs.rows

	span := (k + workers - 1) / workers
	if rem := span % a.opts.blockCols; rem != 0 {
		span += a.opts.blockCols - rem
	}
	parts := (k + span - 1) / span

	partDist := make([][]T, parts)
	partIndex := make([][]int32, parts)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	inf := T(math.Inf(1))
	for p := 0; p < parts; p++ {
		r0 := p * span
		r1 := min(r0+span, k)

		dist := make([]T, n)
		index := make([]int32, n)
		for i := 0; i < n; i++ {
			dist[i] = inf
			index[i] = invalidIndex
		}
		partDist[p] = dist
		partIndex[p] = index

		g.Go(func() error {
			return reduceTiles(gctx, queries, a.refs, s.Norms, a.refNorms, dist, index, 0, n, r0, r1, &a.opts)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for p := 0; p < parts; p++ {
		for i := 0; i < n; i++ {
			best := candidate[T]{dist: s.Dist[i], index: s.Index[i]}
			best = best.merge(candidate[T]{dist: partDist[p][i], index: partIndex[p][i]})
			s.Dist[i] = best.dist
			s.Index[i] = best.index
		}
	}

	return nil
}
