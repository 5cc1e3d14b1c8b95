package addc

import "gonum.org/v1/gonum/floats"

// DistanceFunc computes a distance between two equal-length vectors.
type DistanceFunc func(a, b []float64) float64

// Euclidean computes the Euclidean (L2) distance.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// KernelDistance derives a pseudo-distance from a similarity kernel:
//
//	d(x, y) = K(x,x) - 2K(x,y) + K(y,y)
//
// A nil kernel falls back to plain Euclidean distance. For GaussianKernel
// the self-similarity terms are always 1, so the distance simplifies to
// 2 - 2K(x,y), skipping two kernel evaluations per call.
//
// The result is not guaranteed to be a metric: for non-positive-definite
// kernels (sigmoid, multiquadric) the triangle inequality may fail, and the
// value may even be negative. Callers must not assume metric properties.
func KernelDistance(kernel Kernel) DistanceFunc {
	switch k := kernel.(type) {
	case nil:
		return Euclidean
	case GaussianKernel:
		return func(x, y []float64) float64 {
			return 2 - 2*k.Similarity(x, y)
		}
	default:
		return func(x, y []float64) float64 {
			return k.Similarity(x, x) - 2*k.Similarity(x, y) + k.Similarity(y, y)
		}
	}
}
