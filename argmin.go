package fusedl2

import (
	"context"

	"github.com/hupe1980/fusedl2/internal/floats"
)

// cancellationTol returns the magnitude of negative squared distance that
// is attributable to floating-point cancellation in
// normQ + normR − 2·dot, for norm terms summing to scale and vectors of
// dimension dim. Anything more negative signals real instability.
func cancellationTol[T Float](scale T, dim int) T {
	return floats.Eps[T]() * (scale + 1) * T(4*dim)
}

// reduceTiles folds the squared distances between query rows [q0,q1) and
// reference rows [r0,r1) into the per-row accumulators dist and index,
// scanning reference tiles in ascending index order. dist and index are
// addressed by absolute query row. Tiles are never retained: each tile's
// dot products are reduced immediately and overwritten by the next tile.
//
// For a fixed query row, reference rows are visited in strictly ascending
// order, so the strict less-than update keeps the smallest index among
// equally minimal distances.
func reduceTiles[T Float](ctx context.Context, queries, refs Matrix[T], normQ, normR []T, dist []T, index []int32, q0, q1, r0, r1 int, o *options) error {
	dim := refs.cols

	width := o.blockCols
	if w := r1 - r0; w < width {
		width = w
	}
	dots := make([]T, width)

	for i0 := q0; i0 < q1; i0 += o.blockRows {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		i1 := min(i0+o.blockRows, q1)

		for j0 := r0; j0 < r1; j0 += o.blockCols {
			j1 := min(j0+o.blockCols, r1)
			block := refs.data[j0*dim : j1*dim]

			for i := i0; i < i1; i++ {
				d := dots[:j1-j0]
				floats.DotBatch(queries.Row(i), block, dim, d)

				nq := normQ[i]
				bestDist := dist[i]
				bestIndex := index[i]

				for jj, dot := range d {
					j := j0 + jj
					v := nq + normR[j] - 2*dot
					if v < 0 {
						if v < -cancellationTol(nq+normR[j], dim) {
							return &ErrNumericInstability{Row: i, Ref: j, Value: float64(v)}
						}
						v = 0
					}
					if v < bestDist {
						bestDist = v
						bestIndex = int32(j)
					}
				}

				dist[i] = bestDist
				index[i] = bestIndex
			}
		}
	}

	return nil
}
