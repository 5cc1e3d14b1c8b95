// Package addc implements AddC, an on-line agglomerative clustering
// algorithm for non-stationary data streams.
//
// AddC maintains a fixed-size set of weighted centroids summarizing an
// unbounded point stream. For each arriving point it applies three steps:
//
//  1. Move the closest centroid toward the point.
//  2. Merge the two closest centroids once capacity is reached.
//  3. Insert the point as a new singleton centroid.
//
// Step one minimizes within-cluster variance (a k-means-style update), step
// two maximizes inter-centroid distances (an agglomerative merge), and step
// three anticipates non-stationarity by treating every new point as a
// potential new cluster. The algorithm is due to Guedalia, London and
// Werman (Neural Computation 11, 1999); the kernel-induced distance and
// kernel-weighted centroid updates follow Zhang, Chen and Tan (Neural
// Processing Letters 21, 2005).
//
// Basic usage:
//
//	cfg := addc.DefaultConfig()
//	cfg.KMax = 8
//	sketch, err := addc.New(cfg)
//	for _, p := range points {
//		if err := sketch.Add(p); err != nil { ... }
//	}
//	centers := sketch.Centroids()
//	significant, err := sketch.Trim(addc.DefaultTrimProportion)
//
// # Kernels and distances
//
// Any Kernel can induce a distance via KernelDistance; the default is the
// Gaussian kernel, whose induced distance has a cheaper closed form. With a
// kernel-weighted strategy (KernelCentroids) each centroid accumulates a
// scalar mass that damps its motion as the cluster matures, and Trim can
// filter out centroids whose mass marks them as insignificant.
//
// AddC is a greedy local heuristic: it does not guarantee a globally
// optimal clustering, and results depend on arrival order.
package addc
