package addc

import (
	"math"
	"math/rand"
	"testing"
)

func randVec(rng *rand.Rand, dims int) []float64 {
	v := make([]float64, dims)
	for i := range v {
		v[i] = rng.Float64()*4 - 2
	}
	return v
}

func TestKernelDistanceNilKernelIsEuclidean(t *testing.T) {
	dist := KernelDistance(nil)
	a := []float64{1, 2, 3}
	b := []float64{4, 6, 3}
	if got, want := dist(a, b), 5.0; got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestKernelDistanceGaussianShortcut(t *testing.T) {
	// The optimized 2 - 2K(x,y) form must agree with the general
	// K(x,x) - 2K(x,y) + K(y,y) form for arbitrary inputs.
	rng := rand.New(rand.NewSource(42))
	for _, sigma := range []float64{0.5, 1, 2.5} {
		k := GaussianKernel{Sigma: sigma}
		shortcut := KernelDistance(k)
		for i := 0; i < 100; i++ {
			x := randVec(rng, 5)
			y := randVec(rng, 5)
			general := k.Similarity(x, x) - 2*k.Similarity(x, y) + k.Similarity(y, y)
			if diff := math.Abs(shortcut(x, y) - general); diff > 1e-8 {
				t.Fatalf("sigma=%v: shortcut and general forms differ by %v", sigma, diff)
			}
		}
	}
}

func TestKernelDistanceLinearIsSquaredEuclidean(t *testing.T) {
	// For the linear kernel, K(x,x) - 2K(x,y) + K(y,y) collapses to ‖x-y‖²
	// (the constant c cancels).
	rng := rand.New(rand.NewSource(7))
	for _, c := range []float64{0, 3} {
		dist := KernelDistance(LinearKernel{C: c})
		for i := 0; i < 50; i++ {
			x := randVec(rng, 4)
			y := randVec(rng, 4)
			e := Euclidean(x, y)
			if diff := math.Abs(dist(x, y) - e*e); diff > 1e-8 {
				t.Fatalf("c=%v: expected squared Euclidean, differ by %v", c, diff)
			}
		}
	}
}

func TestKernelDistanceSelfIsZero(t *testing.T) {
	tests := []struct {
		name   string
		kernel Kernel
	}{
		{"gaussian", GaussianKernel{}},
		{"linear", LinearKernel{C: 1}},
		{"polynomial", PolynomialKernel{}},
		{"sigmoid", SigmoidKernel{}},
		{"laplacian", LaplacianKernel{}},
	}

	x := []float64{0.2, -1.7, 3.3}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := KernelDistance(tc.kernel)(x, x); math.Abs(got) > 1e-12 {
				t.Errorf("expected zero self-distance, got %v", got)
			}
		})
	}
}
