package kmeans

import "errors"

// Sentinel errors returned by [Cluster] and [ClusterPrecomputed].
// Match them with errors.Is; returned errors wrap these with detail.
var (
	// ErrInvalidClusterCount indicates K < 1 or K greater than the number
	// of input points.
	ErrInvalidClusterCount = errors.New("kmeans: invalid cluster count")

	// ErrDimensionMismatch indicates that not all points (or supplied
	// initial centroids) share the same dimension.
	ErrDimensionMismatch = errors.New("kmeans: point dimension mismatch")

	// ErrInsufficientDistinctPoints indicates that random initialization
	// could not find K value-distinct points within its retry budget.
	ErrInsufficientDistinctPoints = errors.New("kmeans: insufficient distinct points")
)
