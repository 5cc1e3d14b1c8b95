package addc

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Neighbor pairs a stored centroid with its distance to a query point.
type Neighbor struct {
	Dist     float64
	Centroid Centroid
}

// PairIndex stores the live centroid set and answers nearest-neighbor and
// closest-pair queries as the set mutates. Membership is by center
// equality (see Centroid.Equal). Implementations are configured with the
// distance function at construction; capacity is enforced by the engine,
// not the index.
//
// The engine ships with BruteIndex, a full-scan reference implementation.
// A dynamic closest-pair structure (e.g. Eppstein's FastPair) can be
// plugged in through Config.Index without changing observable behavior.
type PairIndex interface {
	// Len returns the number of stored centroids.
	Len() int

	// Insert adds a centroid. Returns ErrDuplicateCentroid if a centroid
	// with an equal center is already stored.
	Insert(c Centroid) error

	// Remove evicts a stored centroid. Returns ErrCentroidNotFound if
	// absent.
	Remove(c Centroid) error

	// Replace substitutes new for old at the same logical slot. It must be
	// at least as correct as Remove(old) followed by Insert(new).
	Replace(old, new Centroid) error

	// ClosestPair returns the globally closest pair of stored centroids
	// and their distance. Returns ErrTooFewCentroids if fewer than two are
	// stored.
	ClosestPair() (float64, Centroid, Centroid, error)

	// Nearest returns all stored centroids with their distances to point,
	// ascending by distance.
	Nearest(point []float64) []Neighbor

	// Contains reports whether a centroid with the given center is stored.
	Contains(point []float64) bool

	// Centroids returns all stored centroids. The order is unspecified but
	// stable for a given internal state.
	Centroids() []Centroid
}

// BruteIndex is the reference PairIndex: an insertion-ordered slice with
// O(k) nearest-neighbor scans and O(k²) closest-pair scans. For the small
// live sets the engine maintains (at most kmax centroids) the full scan is
// an intentional simplicity trade-off.
type BruteIndex struct {
	dist    DistanceFunc
	entries []Centroid
}

// NewBruteIndex creates an empty BruteIndex using the given distance.
// capacityHint pre-sizes internal storage and is not a cap.
func NewBruteIndex(dist DistanceFunc, capacityHint int) *BruteIndex {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &BruteIndex{
		dist:    dist,
		entries: make([]Centroid, 0, capacityHint),
	}
}

func (ix *BruteIndex) Len() int { return len(ix.entries) }

func (ix *BruteIndex) find(c Centroid) int {
	for i, e := range ix.entries {
		if e.Equal(c) {
			return i
		}
	}
	return -1
}

func (ix *BruteIndex) Insert(c Centroid) error {
	if ix.find(c) >= 0 {
		return fmt.Errorf("addc: inserting centroid at %v: %w", c.Center, ErrDuplicateCentroid)
	}
	ix.entries = append(ix.entries, c)
	return nil
}

func (ix *BruteIndex) Remove(c Centroid) error {
	i := ix.find(c)
	if i < 0 {
		return fmt.Errorf("addc: removing centroid at %v: %w", c.Center, ErrCentroidNotFound)
	}
	ix.entries = append(ix.entries[:i], ix.entries[i+1:]...)
	return nil
}

func (ix *BruteIndex) Replace(old, new Centroid) error {
	i := ix.find(old)
	if i < 0 {
		return fmt.Errorf("addc: replacing centroid at %v: %w", old.Center, ErrCentroidNotFound)
	}
	if j := ix.find(new); j >= 0 && j != i {
		return fmt.Errorf("addc: replacement centroid at %v already stored: %w", new.Center, ErrDuplicateCentroid)
	}
	ix.entries[i] = new
	return nil
}

func (ix *BruteIndex) ClosestPair() (float64, Centroid, Centroid, error) {
	if len(ix.entries) < 2 {
		return 0, Centroid{}, Centroid{}, fmt.Errorf("addc: closest pair of %d centroids: %w", len(ix.entries), ErrTooFewCentroids)
	}
	best := -1
	var bestJ int
	var bestDist float64
	for i := 0; i < len(ix.entries); i++ {
		for j := i + 1; j < len(ix.entries); j++ {
			d := ix.dist(ix.entries[i].Center, ix.entries[j].Center)
			if best < 0 || d < bestDist {
				best, bestJ, bestDist = i, j, d
			}
		}
	}
	return bestDist, ix.entries[best], ix.entries[bestJ], nil
}

func (ix *BruteIndex) Nearest(point []float64) []Neighbor {
	out := make([]Neighbor, len(ix.entries))
	for i, e := range ix.entries {
		out[i] = Neighbor{Dist: ix.dist(point, e.Center), Centroid: e}
	}
	// Stable sort keeps insertion order among ties.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Dist < out[j].Dist })
	return out
}

func (ix *BruteIndex) Contains(point []float64) bool {
	for _, e := range ix.entries {
		if floats.Equal(e.Center, point) {
			return true
		}
	}
	return false
}

func (ix *BruteIndex) Centroids() []Centroid {
	return append([]Centroid(nil), ix.entries...)
}
