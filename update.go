package kmeans

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// updateCentroids recomputes each centroid as the coordinate-wise mean of
// its members and returns the new CentroidSet along with the largest
// Euclidean shift of any centroid from its previous position.
//
// A cluster with no members has an undefined mean; policy decides whether
// its centroid is retained unchanged or re-seeded with a random input point.
// Either way the update never divides by zero.
func updateCentroids(data [][]float64, members [][]int, prev [][]float64, policy EmptyClusterPolicy, rng *rand.Rand) ([][]float64, float64) {
	next := make([][]float64, len(prev))
	var maxShift float64

	for j, group := range members {
		c := make([]float64, len(prev[j]))
		if len(group) == 0 {
			switch policy {
			case EmptyClusterReseed:
				copy(c, data[rng.Intn(len(data))])
			default:
				copy(c, prev[j])
			}
		} else {
			for _, i := range group {
				floats.Add(c, data[i])
			}
			floats.Scale(1/float64(len(group)), c)
		}
		next[j] = c

		if shift := EuclideanDistance(prev[j], c); shift > maxShift {
			maxShift = shift
		}
	}

	return next, maxShift
}
