package fusedl2

// invalidIndex is the sentinel index of an accumulator that has seen no
// reference row yet.
const invalidIndex = int32(-1)

// candidate is one (squared distance, reference index) accumulator entry.
type candidate[T Float] struct {
	dist  T
	index int32
}

// merge combines two candidates under the total order "distance ascending,
// then index ascending". The operation is associative and commutative, so
// partial reductions computed in any tile or worker layout merge to the
// same result as a sequential ascending-index scan.
func (c candidate[T]) merge(o candidate[T]) candidate[T] {
	switch {
	case o.dist < c.dist:
		return o
	case c.dist < o.dist:
		return c
	case c.index == invalidIndex:
		return o
	case o.index != invalidIndex && o.index < c.index:
		return o
	default:
		return c
	}
}
