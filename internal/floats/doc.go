// Package floats provides the numeric kernels for fused nearest-centroid
// assignment: dot products, batched dot products over row-major blocks,
// and squared row norms.
//
// All kernels are generic over float32 and float64 and use unrolled
// accumulation to limit rounding-error growth on long vectors.
package floats
