package addc

import "errors"

var (
	// ErrDimensionMismatch is returned when a point or centroid center has a
	// different length than the dimensionality the engine (or centroid) has
	// already established.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrKindMismatch is returned when a centroid produced by one update
	// strategy (plain vs. kernel-weighted) is passed to the other.
	ErrKindMismatch = errors.New("centroid kind mismatch")

	// ErrNoMass is returned by Trim when no stored centroid has positive
	// kernel mass, and by the kernel absorb rule when the kernel similarity
	// does not produce positive mass (so the update is undefined).
	ErrNoMass = errors.New("no positive kernel mass")

	// ErrTooFewCentroids is returned by ClosestPair when the index stores
	// fewer than two centroids.
	ErrTooFewCentroids = errors.New("fewer than two centroids stored")

	// ErrDuplicateCentroid is returned by Insert when a centroid with an
	// equal center is already stored.
	ErrDuplicateCentroid = errors.New("duplicate centroid")

	// ErrCentroidNotFound is returned by Remove and Replace when the target
	// centroid is not stored. Seeing it from an engine operation indicates a
	// broken invariant between the engine and its index.
	ErrCentroidNotFound = errors.New("centroid not found")
)
