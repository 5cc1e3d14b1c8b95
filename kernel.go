package addc

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Kernel computes a scalar similarity between two equal-length vectors.
// Kernels are pure and deterministic; callers must ensure x and y have the
// same length before invocation.
type Kernel interface {
	Similarity(x, y []float64) float64
}

// KernelFunc adapts a plain function into a Kernel.
type KernelFunc func(x, y []float64) float64

func (f KernelFunc) Similarity(x, y []float64) float64 { return f(x, y) }

// LinearKernel computes the inner product plus an optional constant:
//
//	K(x, y) = x·y + c
//
// with c >= 0. The zero value is the homogeneous linear kernel (c = 0).
type LinearKernel struct {
	C float64
}

func (k LinearKernel) Similarity(x, y []float64) float64 {
	return floats.Dot(x, y) + k.C
}

// PolynomialKernel computes similarity over degree-D polynomials of the
// inputs:
//
//	K(x, y) = (x·y/a + c)^d
//
// A is a slope parameter (0 means 1), C >= 0 trades off higher- versus
// lower-order terms (default 0, the homogeneous case), and D is the degree
// (0 means 2).
type PolynomialKernel struct {
	A float64
	C float64
	D float64
}

func (k PolynomialKernel) Similarity(x, y []float64) float64 {
	a := k.A
	if a == 0 {
		a = 1
	}
	d := k.D
	if d == 0 {
		d = 2
	}
	return math.Pow(floats.Dot(x, y)/a+k.C, d)
}

// GaussianKernel is the radial basis function kernel
//
//	K(x, y) = exp(-‖x-y‖² / (2σ²))
//
// Sigma controls the bandwidth (0 means 1). Similarity of a point with
// itself is always 1, which KernelDistance exploits (see distance.go).
type GaussianKernel struct {
	Sigma float64
}

func (k GaussianKernel) Similarity(x, y []float64) float64 {
	s := k.Sigma
	if s == 0 {
		s = 1
	}
	d := floats.Distance(x, y, 2)
	return math.Exp(-(d * d) / (2 * s * s))
}

// ExponentialKernel is the Gaussian kernel with the square of the norm left
// out:
//
//	K(x, y) = exp(-‖x-y‖ / (2σ²))
//
// Sigma 0 means 1.
type ExponentialKernel struct {
	Sigma float64
}

func (k ExponentialKernel) Similarity(x, y []float64) float64 {
	s := k.Sigma
	if s == 0 {
		s = 1
	}
	return math.Exp(-floats.Distance(x, y, 2) / (2 * s * s))
}

// LaplacianKernel is equivalent to the exponential kernel but less
// sensitive to changes in Sigma:
//
//	K(x, y) = exp(-‖x-y‖ / σ)
//
// Sigma 0 means 1.
type LaplacianKernel struct {
	Sigma float64
}

func (k LaplacianKernel) Similarity(x, y []float64) float64 {
	s := k.Sigma
	if s == 0 {
		s = 1
	}
	return math.Exp(-floats.Distance(x, y, 2) / s)
}

// SigmoidKernel is the hyperbolic tangent (multilayer perceptron) kernel:
//
//	K(x, y) = tanh(α·(x·y) + c)
//
// Alpha 0 means 1/dim(x), the common choice. C 0 means -e, the conventional
// intercept. The sigmoid kernel is not positive definite, so the distance it
// induces is not a metric.
type SigmoidKernel struct {
	Alpha float64
	C     float64
}

func (k SigmoidKernel) Similarity(x, y []float64) float64 {
	a := k.Alpha
	if a == 0 {
		a = 1 / float64(len(x))
	}
	c := k.C
	if c == 0 {
		c = -math.E
	}
	return math.Tanh(a*floats.Dot(x, y) + c)
}

// RationalQuadraticKernel is a cheaper alternative to the Gaussian kernel:
//
//	K(x, y) = 1 - d²/(d² + c)    where d² = ‖x-y‖²
//
// with c >= 0. Identical inputs yield similarity 1 even when C is 0.
type RationalQuadraticKernel struct {
	C float64
}

func (k RationalQuadraticKernel) Similarity(x, y []float64) float64 {
	d := floats.Distance(x, y, 2)
	d2 := d * d
	if d2+k.C == 0 {
		return 1
	}
	return 1 - d2/(d2+k.C)
}

// MultiquadricKernel is a non-positive-definite kernel usable in the same
// situations as the rational quadratic kernel:
//
//	K(x, y) = sqrt(‖x-y‖² + c²)
type MultiquadricKernel struct {
	C float64
}

func (k MultiquadricKernel) Similarity(x, y []float64) float64 {
	d := floats.Distance(x, y, 2)
	return math.Sqrt(d*d + k.C*k.C)
}

// InverseMultiquadricKernel is the reciprocal of the multiquadric kernel.
// Like the Gaussian, it yields a kernel matrix of full rank.
type InverseMultiquadricKernel struct {
	C float64
}

func (k InverseMultiquadricKernel) Similarity(x, y []float64) float64 {
	return 1 / MultiquadricKernel{C: k.C}.Similarity(x, y)
}

// CircularKernel is an isotropic stationary kernel used in geostatistics,
// positive definite in R²:
//
//	K(x, y) = (2/π)·acos(-r) - (2/π)·r·sqrt(1-r²)   for r = ‖x-y‖/σ < 1
//	K(x, y) = 0                                     otherwise
//
// Sigma has no reasonable default and should come from prior analysis such
// as a semi-variogram. Panics if Sigma <= 0.
type CircularKernel struct {
	Sigma float64
}

func (k CircularKernel) Similarity(x, y []float64) float64 {
	if k.Sigma <= 0 {
		panic("CircularKernel: Sigma must be > 0")
	}
	r := floats.Distance(x, y, 2) / k.Sigma
	if r >= 1 {
		return 0
	}
	return (2/math.Pi)*math.Acos(-r) - (2/math.Pi)*r*math.Sqrt(1-r*r)
}
