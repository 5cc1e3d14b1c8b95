package addc

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

type centroidKind uint8

const (
	plainKind centroidKind = iota
	kernelKind
)

func (k centroidKind) String() string {
	if k == kernelKind {
		return "kernel"
	}
	return "plain"
}

// Centroid is an immutable summary of one cluster: a center vector, the
// number of points absorbed, and (for kernel-weighted centroids) the
// accumulated kernel mass. Updates never mutate a Centroid; Absorb and
// Merge on a CentroidFactory return fresh values.
//
// Two centroids are equal iff their centers are equal. Count and Size are
// deliberately not part of identity so that a centroid can serve as an
// index key across updates that only change its statistics.
type Centroid struct {
	Center []float64
	Count  int
	Size   float64

	kind centroidKind
}

// Equal reports whether c and other have identical centers. Count and Size
// are ignored.
func (c Centroid) Equal(other Centroid) bool {
	return floats.Equal(c.Center, other.Center)
}

// Dims returns the dimensionality of the centroid's center.
func (c Centroid) Dims() int { return len(c.Center) }

// CentroidFactory creates singleton centroids and applies the two update
// rules of the algorithm. Exactly two strategies exist: MeanCentroids (the
// plain count-weighted running mean) and KernelCentroids (kernel-mass
// weighted). Centroids created by one strategy cannot be updated by the
// other; doing so returns ErrKindMismatch.
type CentroidFactory interface {
	// New wraps a point as a fresh singleton centroid.
	New(point []float64) Centroid

	// Absorb moves c toward point and returns the updated centroid.
	Absorb(c Centroid, point []float64) (Centroid, error)

	// Merge combines two centroids, conserving their statistical mass:
	// the result's count (and size, for kernel centroids) is the sum of
	// the inputs'.
	Merge(a, b Centroid) (Centroid, error)
}

// MeanCentroids updates centroids with an unweighted running mean. It is
// the lower-fidelity legacy strategy: centroids track the arithmetic mean
// of their absorbed points and accumulate no kernel mass, so Trim has
// nothing to filter on.
type MeanCentroids struct{}

// New returns a singleton representing one point, so Count starts at 1.
func (MeanCentroids) New(point []float64) Centroid {
	return Centroid{
		Center: append([]float64(nil), point...),
		Count:  1,
		kind:   plainKind,
	}
}

// Absorb returns the running mean update
//
//	center' = center + (point - center)/(count + 1)
//
// with count incremented.
func (MeanCentroids) Absorb(c Centroid, point []float64) (Centroid, error) {
	if c.kind != plainKind {
		return Centroid{}, fmt.Errorf("addc: absorbing into %v centroid with plain update rule: %w", c.kind, ErrKindMismatch)
	}
	if len(point) != c.Dims() {
		return Centroid{}, fmt.Errorf("addc: point has %d dimensions, centroid has %d: %w", len(point), c.Dims(), ErrDimensionMismatch)
	}
	center := stepToward(c.Center, point, float64(c.Count+1))
	return Centroid{Center: center, Count: c.Count + 1, kind: plainKind}, nil
}

// Merge returns the count-weighted average of the two centers with the
// counts summed. Two zero-count centroids merge to the midpoint.
func (MeanCentroids) Merge(a, b Centroid) (Centroid, error) {
	if a.kind != plainKind || b.kind != plainKind {
		return Centroid{}, fmt.Errorf("addc: merging %v and %v centroids with plain update rule: %w", a.kind, b.kind, ErrKindMismatch)
	}
	if a.Dims() != b.Dims() {
		return Centroid{}, fmt.Errorf("addc: centroids have %d and %d dimensions: %w", a.Dims(), b.Dims(), ErrDimensionMismatch)
	}
	center := weightedAverage(a.Center, b.Center, float64(a.Count), float64(b.Count))
	return Centroid{Center: center, Count: a.Count + b.Count, kind: plainKind}, nil
}

// KernelCentroids updates centroids weighted by accumulated kernel mass.
// Each absorption adds the similarity between the centroid's center and the
// incoming point to the centroid's Size, and the center moves toward the
// point with step 1/Size. Responsiveness therefore decays as a cluster
// matures: established clusters resist noise while fresh ones move freely.
//
// A nil Kernel means GaussianKernel with its defaults.
type KernelCentroids struct {
	Kernel Kernel
}

func (f KernelCentroids) kernel() Kernel {
	if f.Kernel == nil {
		return GaussianKernel{}
	}
	return f.Kernel
}

// New returns a singleton with no accumulated mass (Count 0, Size 0).
func (KernelCentroids) New(point []float64) Centroid {
	return Centroid{
		Center: append([]float64(nil), point...),
		kind:   kernelKind,
	}
}

// Absorb returns the kernel-weighted update
//
//	size'   = size + K(center, point)
//	center' = center + (point - center)/size'
//
// with count incremented. If the kernel similarity does not yield positive
// mass (e.g. Gaussian similarity underflowing to zero between very distant
// points) the step is undefined and ErrNoMass is returned.
func (f KernelCentroids) Absorb(c Centroid, point []float64) (Centroid, error) {
	if c.kind != kernelKind {
		return Centroid{}, fmt.Errorf("addc: absorbing into %v centroid with kernel update rule: %w", c.kind, ErrKindMismatch)
	}
	if len(point) != c.Dims() {
		return Centroid{}, fmt.Errorf("addc: point has %d dimensions, centroid has %d: %w", len(point), c.Dims(), ErrDimensionMismatch)
	}
	size := c.Size + f.kernel().Similarity(c.Center, point)
	if size <= 0 {
		return Centroid{}, fmt.Errorf("addc: kernel similarity yields mass %v: %w", size, ErrNoMass)
	}
	center := stepToward(c.Center, point, size)
	return Centroid{Center: center, Count: c.Count + 1, Size: size, kind: kernelKind}, nil
}

// Merge returns the size-weighted average of the two centers with counts
// and sizes summed. Two zero-size centroids merge to the midpoint.
func (KernelCentroids) Merge(a, b Centroid) (Centroid, error) {
	if a.kind != kernelKind || b.kind != kernelKind {
		return Centroid{}, fmt.Errorf("addc: merging %v and %v centroids with kernel update rule: %w", a.kind, b.kind, ErrKindMismatch)
	}
	if a.Dims() != b.Dims() {
		return Centroid{}, fmt.Errorf("addc: centroids have %d and %d dimensions: %w", a.Dims(), b.Dims(), ErrDimensionMismatch)
	}
	center := weightedAverage(a.Center, b.Center, a.Size, b.Size)
	return Centroid{
		Center: center,
		Count:  a.Count + b.Count,
		Size:   a.Size + b.Size,
		kind:   kernelKind,
	}, nil
}

// stepToward returns center + (point - center)/step without mutating its
// inputs.
func stepToward(center, point []float64, step float64) []float64 {
	diff := make([]float64, len(center))
	floats.SubTo(diff, point, center)
	out := make([]float64, len(center))
	return floats.AddScaledTo(out, center, 1/step, diff)
}

// weightedAverage returns (a*wa + b*wb)/(wa + wb). When both weights are
// zero it falls back to the unweighted midpoint.
func weightedAverage(a, b []float64, wa, wb float64) []float64 {
	if wa+wb == 0 {
		wa, wb = 1, 1
	}
	out := make([]float64, len(a))
	floats.ScaleTo(out, wa/(wa+wb), a)
	return floats.AddScaledTo(out, out, wb/(wa+wb), b)
}
