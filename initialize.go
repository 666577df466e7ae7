package kmeans

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// initRetryFactor bounds initialization at initRetryFactor*k uniform draws.
// Generous enough that the coupon-collector cost of k = n distinct points
// stays far below the cap, while still terminating when the input holds
// fewer than k distinct coordinate values.
const initRetryFactor = 64

// initializeCentroids selects k value-distinct initial centroids by drawing
// uniformly random indices from data. A draw is accepted only if its
// coordinates differ from every centroid accepted so far, so duplicate
// points in the input count as a single candidate. Returns
// ErrInsufficientDistinctPoints once the retry budget is exhausted.
//
// The returned centroids are copies; iterating on them never mutates data.
func initializeCentroids(rng *rand.Rand, data [][]float64, k int) ([][]float64, error) {
	centroids := make([][]float64, 0, k)
	maxDraws := initRetryFactor * k

	for draws := 0; len(centroids) < k; draws++ {
		if draws >= maxDraws {
			return nil, fmt.Errorf("kmeans: found only %d distinct centroids for K = %d after %d draws: %w",
				len(centroids), k, draws, ErrInsufficientDistinctPoints)
		}
		p := data[rng.Intn(len(data))]
		if containsPoint(centroids, p) {
			continue
		}
		c := make([]float64, len(p))
		copy(c, p)
		centroids = append(centroids, c)
	}

	return centroids, nil
}

// containsPoint reports whether p is coordinate-wise equal to any point in
// set. Exact comparison: value distinctness, not tolerance-based.
func containsPoint(set [][]float64, p []float64) bool {
	for _, q := range set {
		if floats.Equal(q, p) {
			return true
		}
	}
	return false
}
