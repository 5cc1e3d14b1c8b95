package addc

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// DefaultTrimProportion is the conventional significance proportion for
// Trim.
const DefaultTrimProportion = 0.01

// Config controls AddC sketch behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// KMax is the maximum number of cluster centroids to store, i.e. the
	// memory budget. It controls the scale of the solution: larger values
	// give a higher-resolution clustering. Must be >= 1. Default: 100.
	KMax int

	// Distance measures dissimilarity between centers and incoming points.
	// Use KernelDistance to derive one from a similarity kernel, or supply
	// any DistanceFunc. Default: KernelDistance(GaussianKernel{}).
	Distance DistanceFunc

	// Centroids selects the centroid update strategy: KernelCentroids
	// (kernel-mass weighted, supports Trim) or MeanCentroids (plain running
	// mean). Default: KernelCentroids{} (Gaussian).
	Centroids CentroidFactory

	// Index stores the live centroid set and answers nearest-neighbor and
	// closest-pair queries. Default: a BruteIndex over Distance. Supply a
	// dynamic closest-pair structure here if kmax is large.
	Index PairIndex
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		KMax:      100,
		Distance:  KernelDistance(GaussianKernel{}),
		Centroids: KernelCentroids{},
	}
}

// applyDefaults fills in nil config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Distance == nil {
		cfg.Distance = KernelDistance(GaussianKernel{})
	}
	if cfg.Centroids == nil {
		cfg.Centroids = KernelCentroids{}
	}
	if cfg.Index == nil {
		cfg.Index = NewBruteIndex(cfg.Distance, cfg.KMax)
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error if not.
func validateConfig(cfg *Config) error {
	if cfg.KMax < 1 {
		return fmt.Errorf("addc: KMax must be >= 1, got %d", cfg.KMax)
	}
	return nil
}

// AddC maintains a bounded-memory clustering sketch of a point stream using
// the on-line agglomerative clustering algorithm of Guedalia, London and
// Werman, with the kernel-induced distance modifications of Zhang, Chen and
// Tan.
//
// For each arriving point the sketch applies three steps: move the closest
// centroid toward the point, merge the two closest centroids once capacity
// is reached, and insert the point as a fresh singleton centroid. The live
// centroid count is therefore min(points seen, KMax).
//
// AddC is not safe for concurrent use: each point's three-step cycle must
// observe the fully updated state left by the previous one, so concurrent
// producers must funnel through a single goroutine or an external lock.
type AddC struct {
	cfg     Config
	index   PairIndex
	npoints int
	dims    int
}

// New creates an empty AddC sketch. Returns an error if the config is
// invalid.
func New(cfg Config) (*AddC, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &AddC{
		cfg:   cfg,
		index: cfg.Index,
		dims:  -1,
	}, nil
}

// Add ingests a single point. The first point establishes the sketch's
// dimensionality; later points of a different length are rejected with
// ErrDimensionMismatch before any state changes. A nil return means the
// point was fully processed through all three steps.
func (a *AddC) Add(p []float64) error {
	if len(p) == 0 {
		return fmt.Errorf("addc: empty point: %w", ErrDimensionMismatch)
	}
	if a.dims >= 0 && len(p) != a.dims {
		return fmt.Errorf("addc: point has %d dimensions, sketch expects %d: %w", len(p), a.dims, ErrDimensionMismatch)
	}
	if err := a.moveClosest(p); err != nil {
		return err
	}
	if err := a.mergeClosest(); err != nil {
		return err
	}
	if err := a.index.Insert(a.cfg.Centroids.New(p)); err != nil {
		return fmt.Errorf("addc: inserting singleton: %w", err)
	}
	a.dims = len(p)
	a.npoints++
	return nil
}

// moveClosest applies step one: the stored centroid nearest to p absorbs p.
// Skipped while the index is empty.
func (a *AddC) moveClosest(p []float64) error {
	if a.index.Len() == 0 {
		return nil
	}
	// Full scan by design; see PairIndex for plugging in a spatial index.
	nearest := a.index.Nearest(p)[0].Centroid
	moved, err := a.cfg.Centroids.Absorb(nearest, p)
	if err != nil {
		return err
	}
	if err := a.index.Replace(nearest, moved); err != nil {
		return fmt.Errorf("addc: updating moved centroid: %w", err)
	}
	return nil
}

// mergeClosest applies step two: once the sketch is at capacity, the two
// closest centroids merge, freeing a slot for the incoming point. The
// merged centroid is computed before the index is touched so a failed merge
// leaves the index unchanged.
func (a *AddC) mergeClosest() error {
	if a.index.Len() < a.cfg.KMax || a.index.Len() < 2 {
		return nil
	}
	_, x, y, err := a.index.ClosestPair()
	if err != nil {
		return fmt.Errorf("addc: finding closest pair: %w", err)
	}
	merged, err := a.cfg.Centroids.Merge(x, y)
	if err != nil {
		return err
	}
	if err := a.index.Remove(y); err != nil {
		return fmt.Errorf("addc: evicting merged centroid: %w", err)
	}
	if err := a.index.Replace(x, merged); err != nil {
		return fmt.Errorf("addc: updating merged centroid: %w", err)
	}
	return nil
}

// Batch ingests an ordered sequence of points, equivalent to calling Add on
// each in turn. Processing stops at the first error; points before it have
// been fully ingested.
func (a *AddC) Batch(points [][]float64) error {
	for i, p := range points {
		if err := a.Add(p); err != nil {
			return fmt.Errorf("addc: batch point %d: %w", i, err)
		}
	}
	return nil
}

// Len returns the number of live centroids, min(NumPoints(), KMax).
func (a *AddC) Len() int { return a.index.Len() }

// NumPoints returns the number of points ingested so far.
func (a *AddC) NumPoints() int { return a.npoints }

// Contains reports whether a live centroid sits exactly at the given point.
func (a *AddC) Contains(p []float64) bool { return a.index.Contains(p) }

// Centroids returns a snapshot of the live centroid centers. The returned
// vectors are copies and safe to retain.
func (a *AddC) Centroids() [][]float64 {
	cs := a.index.Centroids()
	out := make([][]float64, len(cs))
	for i, c := range cs {
		out[i] = append([]float64(nil), c.Center...)
	}
	return out
}

// Trim returns the centroids whose kernel mass is significant: those with
// Size at or above proportion times the mean Size of all centroids with
// positive mass. It is read-only and does not shrink the sketch.
//
// proportion must be in (0, 1]; DefaultTrimProportion is the conventional
// choice. Returns ErrNoMass if no centroid has positive mass, which is
// always the case under MeanCentroids.
func (a *AddC) Trim(proportion float64) ([]Centroid, error) {
	if proportion <= 0 || proportion > 1 {
		return nil, fmt.Errorf("addc: trim proportion must be in (0, 1], got %v", proportion)
	}
	all := a.index.Centroids()
	var sizes []float64
	for _, c := range all {
		if c.Size > 0 {
			sizes = append(sizes, c.Size)
		}
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("addc: trimming %d centroids: %w", len(all), ErrNoMass)
	}
	threshold := stat.Mean(sizes, nil) * proportion
	var kept []Centroid
	for _, c := range all {
		if c.Size >= threshold {
			kept = append(kept, c)
		}
	}
	return kept, nil
}
