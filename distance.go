package kmeans

import "gonum.org/v1/gonum/floats"

// EuclideanDistance returns the Euclidean (L2) distance between a and b.
// Both slices must have the same length; [Cluster] validates point and
// centroid dimensions before any distances are computed, so the hot loop
// never compares mismatched points.
func EuclideanDistance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}
