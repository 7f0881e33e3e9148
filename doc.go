// Package fusedl2 computes, for every row of a query matrix, the nearest
// row of a reference (centroid) matrix under Euclidean distance — without
// ever materializing the full pairwise-distance matrix.
//
// Distances are evaluated tile by tile through the decomposition
//
//	dist²(q, r) = ||q||² + ||r||² − 2·(q·r)
//
// and reduced to a per-row (minimum distance, index) pair in the same
// pass. This is the nearest-centroid-assignment primitive used by k-means
// style clustering and exact nearest-neighbor workloads where the N×K
// distance matrix would dominate memory.
//
// # Quick Start
//
// One-shot:
//
//	queries, _ := fusedl2.NewMatrix(qdata, n, dim)
//	refs, _ := fusedl2.NewMatrix(rdata, k, dim)
//
//	out := make([]int32, n)
//	dists := make([]float32, n) // optional, may be nil
//	err := fusedl2.ArgminL2(ctx, queries, refs, out, dists)
//
// Reusable (reference norms computed once):
//
//	a, _ := fusedl2.NewAssigner(refs)
//	for _, batch := range batches {
//	    _ = a.Assign(ctx, batch, out, nil)
//	}
//
// # Determinism
//
// The result for each query row always matches a strictly sequential scan
// of reference rows in ascending index order: ties on distance resolve to
// the smallest reference index, regardless of tile shape or worker count.
//
// # Element Types
//
// Both float32 and float64 are supported; query matrix, reference matrix
// and the optional distance output buffer must share one element type.
package fusedl2
