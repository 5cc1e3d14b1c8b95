package addc

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestCentroidEquality(t *testing.T) {
	a := Centroid{Center: []float64{1, 2}, Count: 3, Size: 1.5}
	b := Centroid{Center: []float64{1, 2}, Count: 7, Size: 0}
	c := Centroid{Center: []float64{1, 2.1}}

	if !a.Equal(b) {
		t.Error("centroids with equal centers must be equal regardless of count/size")
	}
	if a.Equal(c) {
		t.Error("centroids with different centers must not be equal")
	}
	if a.Equal(Centroid{Center: []float64{1}}) {
		t.Error("centroids with different dimensionality must not be equal")
	}
}

func TestMeanCentroidsAbsorbIsRunningMean(t *testing.T) {
	f := MeanCentroids{}
	c := f.New([]float64{0, 0})
	if c.Count != 1 {
		t.Fatalf("singleton count: expected 1, got %d", c.Count)
	}

	points := [][]float64{{1, 0}, {2, 3}, {-3, 9}}
	var err error
	for _, p := range points {
		c, err = f.Absorb(c, p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// After absorbing all points the center is the arithmetic mean of the
	// creation point and every absorbed point.
	want := []float64{0, 3}
	if !floats.EqualApprox(c.Center, want, 1e-12) {
		t.Errorf("expected mean %v, got %v", want, c.Center)
	}
	if c.Count != 4 {
		t.Errorf("expected count 4, got %d", c.Count)
	}
	if c.Size != 0 {
		t.Errorf("plain centroids accumulate no mass, got size %v", c.Size)
	}
}

func TestMeanCentroidsMergeIsCountWeighted(t *testing.T) {
	f := MeanCentroids{}
	a := Centroid{Center: []float64{1, 1}, Count: 3, kind: plainKind}
	b := Centroid{Center: []float64{5, 5}, Count: 1, kind: plainKind}

	m, err := f.Merge(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []float64{2, 2}; !floats.EqualApprox(m.Center, want, 1e-12) {
		t.Errorf("expected %v, got %v", want, m.Center)
	}
	if m.Count != 4 {
		t.Errorf("expected count 4, got %d", m.Count)
	}
}

func TestKernelCentroidsAbsorb(t *testing.T) {
	f := KernelCentroids{} // Gaussian, sigma 1
	c := f.New([]float64{0, 0})
	if c.Count != 0 || c.Size != 0 {
		t.Fatalf("singleton must start with count 0 and size 0, got %d/%v", c.Count, c.Size)
	}

	c, err := f.Absorb(c, []float64{1, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// size' = K((0,0),(1,0)) = exp(-1/2); center' = 0 + (1-0)/size'.
	wantSize := math.Exp(-0.5)
	if math.Abs(c.Size-wantSize) > 1e-12 {
		t.Errorf("expected size %v, got %v", wantSize, c.Size)
	}
	wantCenter := []float64{1 / wantSize, 0}
	if !floats.EqualApprox(c.Center, wantCenter, 1e-12) {
		t.Errorf("expected center %v, got %v", wantCenter, c.Center)
	}
	if c.Count != 1 {
		t.Errorf("expected count 1, got %d", c.Count)
	}
}

func TestKernelCentroidsMergeIsSizeWeighted(t *testing.T) {
	f := KernelCentroids{}
	a := Centroid{Center: []float64{0, 0}, Count: 4, Size: 2, kind: kernelKind}
	b := Centroid{Center: []float64{3, 0}, Count: 2, Size: 1, kind: kernelKind}

	m, err := f.Merge(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []float64{1, 0}; !floats.EqualApprox(m.Center, want, 1e-12) {
		t.Errorf("expected %v, got %v", want, m.Center)
	}
	if m.Count != 6 {
		t.Errorf("merge must conserve count: expected 6, got %d", m.Count)
	}
	if m.Size != 3 {
		t.Errorf("merge must conserve size: expected 3, got %v", m.Size)
	}
}

func TestMergeZeroMassFallsBackToMidpoint(t *testing.T) {
	kf := KernelCentroids{}
	m, err := kf.Merge(kf.New([]float64{0, 4}), kf.New([]float64{2, 0}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []float64{1, 2}; !floats.EqualApprox(m.Center, want, 1e-12) {
		t.Errorf("expected midpoint %v, got %v", want, m.Center)
	}
}

func TestCentroidUpdatesDoNotMutateInputs(t *testing.T) {
	f := KernelCentroids{}
	c := f.New([]float64{1, 1})
	point := []float64{4, 5}

	moved, err := f.Absorb(c, point)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !floats.Equal(c.Center, []float64{1, 1}) {
		t.Error("Absorb mutated the input centroid")
	}
	if !floats.Equal(point, []float64{4, 5}) {
		t.Error("Absorb mutated the input point")
	}

	merged, err := f.Merge(c, moved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !floats.Equal(c.Center, []float64{1, 1}) {
		t.Error("Merge mutated an input centroid")
	}
	_ = merged
}

func TestCentroidKindMismatch(t *testing.T) {
	plain := MeanCentroids{}.New([]float64{0})
	kernel := KernelCentroids{}.New([]float64{0})

	if _, err := (MeanCentroids{}).Absorb(kernel, []float64{1}); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("expected ErrKindMismatch, got %v", err)
	}
	if _, err := (KernelCentroids{}).Absorb(plain, []float64{1}); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("expected ErrKindMismatch, got %v", err)
	}
	if _, err := (MeanCentroids{}).Merge(plain, kernel); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("expected ErrKindMismatch, got %v", err)
	}
	if _, err := (KernelCentroids{}).Merge(kernel, plain); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("expected ErrKindMismatch, got %v", err)
	}
}

func TestCentroidDimensionMismatch(t *testing.T) {
	f := KernelCentroids{}
	c := f.New([]float64{0, 0})

	if _, err := f.Absorb(c, []float64{1, 2, 3}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := f.Merge(c, f.New([]float64{1})); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestKernelCentroidsNoMass(t *testing.T) {
	// A kernel that yields zero similarity leaves the update undefined.
	f := KernelCentroids{Kernel: KernelFunc(func(x, y []float64) float64 { return 0 })}
	c := f.New([]float64{0})
	if _, err := f.Absorb(c, []float64{1}); !errors.Is(err, ErrNoMass) {
		t.Errorf("expected ErrNoMass, got %v", err)
	}
}
