package kmeans

import (
	"errors"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// dataContains reports whether p equals some point in data.
func dataContains(data [][]float64, p []float64) bool {
	for _, q := range data {
		if floats.Equal(q, p) {
			return true
		}
	}
	return false
}

func TestInitializeCentroids_CountMembershipDistinctness(t *testing.T) {
	data := [][]float64{
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
		{10, 10}, {10, 11}, {11, 10}, {11, 11},
	}
	rng := rand.New(rand.NewSource(1))

	for k := 1; k <= len(data); k++ {
		centroids, err := initializeCentroids(rng, data, k)
		if err != nil {
			t.Fatalf("k=%d: unexpected error: %v", k, err)
		}
		if len(centroids) != k {
			t.Fatalf("k=%d: expected %d centroids, got %d", k, k, len(centroids))
		}
		for j, c := range centroids {
			if !dataContains(data, c) {
				t.Errorf("k=%d: centroid %d = %v is not a point of the input", k, j, c)
			}
			for l := j + 1; l < len(centroids); l++ {
				if floats.Equal(c, centroids[l]) {
					t.Errorf("k=%d: centroids %d and %d are identical: %v", k, j, l, c)
				}
			}
		}
	}
}

func TestInitializeCentroids_KEqualsN(t *testing.T) {
	data := [][]float64{{0, 0}, {5, 5}, {-3, 2}}
	rng := rand.New(rand.NewSource(3))

	centroids, err := initializeCentroids(rng, data, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// All three distinct points must be selected, in some order.
	for _, p := range data {
		if !dataContains(centroids, p) {
			t.Errorf("point %v was not selected as a centroid", p)
		}
	}
}

func TestInitializeCentroids_DuplicatesCollapseToOneCandidate(t *testing.T) {
	// Two points share coordinates; three distinct values exist, so k=3 must
	// still succeed and never return (2,2) twice.
	data := [][]float64{{2, 2}, {2, 2}, {0, 0}, {9, 9}}
	rng := rand.New(rand.NewSource(5))

	centroids, err := initializeCentroids(rng, data, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := 0
	for _, c := range centroids {
		if floats.Equal(c, []float64{2, 2}) {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("duplicate-valued point selected %d times, expected exactly 1", seen)
	}
}

func TestInitializeCentroids_InsufficientDistinctPoints(t *testing.T) {
	data := [][]float64{{1, 1}, {1, 1}}
	rng := rand.New(rand.NewSource(7))

	_, err := initializeCentroids(rng, data, 2)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if !errors.Is(err, ErrInsufficientDistinctPoints) {
		t.Errorf("expected ErrInsufficientDistinctPoints, got %v", err)
	}
}

func TestInitializeCentroids_Deterministic(t *testing.T) {
	data := [][]float64{
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0},
	}

	first, err := initializeCentroids(rand.New(rand.NewSource(99)), data, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := initializeCentroids(rand.New(rand.NewSource(99)), data, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for j := range first {
		if !floats.Equal(first[j], second[j]) {
			t.Errorf("centroid %d differs between seeded runs: %v vs %v", j, first[j], second[j])
		}
	}
}

func TestInitializeCentroids_DoesNotAliasInput(t *testing.T) {
	data := [][]float64{{1, 2}, {3, 4}}
	rng := rand.New(rand.NewSource(11))

	centroids, err := initializeCentroids(rng, data, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range centroids {
		c[0] += 100
	}
	if data[0][0] == 101 || data[1][0] == 103 {
		t.Error("mutating a centroid mutated the input point set")
	}
}
