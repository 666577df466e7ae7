package kmeans

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"
)

// Phase identifies which half of a Lloyd iteration an observer callback
// follows.
type Phase string

const (
	// PhaseAssign follows the assignment step: every point has been mapped
	// to its nearest centroid.
	PhaseAssign Phase = "assign"
	// PhaseUpdate follows the update step: every centroid has been
	// recomputed as the mean of its assigned points.
	PhaseUpdate Phase = "update"
)

// ObserverFunc receives the engine state after each assignment and each
// update step. iteration counts from 0. The centroids and labels slices are
// the engine's live state: observers must not modify them and must copy
// anything they retain past the callback.
type ObserverFunc func(iteration int, phase Phase, centroids [][]float64, labels []int)

// EmptyClusterPolicy selects how the update step recomputes a centroid
// whose cluster received no points.
type EmptyClusterPolicy string

const (
	// EmptyClusterRetain keeps the previous centroid unchanged. This is the
	// default: it keeps the run deterministic after initialization.
	EmptyClusterRetain EmptyClusterPolicy = "retain"
	// EmptyClusterReseed replaces the centroid with a point drawn uniformly
	// at random from the input.
	EmptyClusterReseed EmptyClusterPolicy = "reseed"
)

// Config controls k-means clustering behavior.
// Start with [DefaultConfig], set K, and override the fields you need.
type Config struct {
	// K is the number of clusters. Must satisfy 1 <= K <= len(data).
	K int

	// MaxIterations caps the number of assign/update cycles. The run stops
	// earlier if it converges. Must be >= 1. Default: 100.
	MaxIterations int

	// Tolerance is the convergence threshold: the run converges when no
	// centroid moves by more than this Euclidean distance in an update
	// step, or when an assignment step changes no labels. Must be >= 0.
	// Default: 1e-6.
	Tolerance float64

	// InitialCentroids, when non-nil, is adopted as the starting CentroidSet
	// and random initialization is skipped. Must have exactly K rows with
	// the same dimension as the data. The rows are copied; the caller's
	// slices are not modified.
	InitialCentroids [][]float64

	// EmptyClusterPolicy selects how empty clusters are re-centered.
	// Default: EmptyClusterRetain.
	EmptyClusterPolicy EmptyClusterPolicy

	// Workers controls the number of goroutines for the assignment step.
	// 0 means runtime.NumCPU(); 1 forces the sequential path. The result is
	// identical either way.
	Workers int

	// Rand is the random source used for centroid initialization (and for
	// EmptyClusterReseed). A single source covers the whole run; supply a
	// seeded source for reproducible runs. nil means a time-seeded source.
	Rand *rand.Rand

	// Observer, when non-nil, is invoked after every assignment and every
	// update step. Lets a renderer, logger, or test harness watch the run
	// without the engine depending on it.
	Observer ObserverFunc
}

// Result contains the output of a k-means run.
type Result struct {
	// Centroids is the final CentroidSet; index is the cluster label.
	Centroids [][]float64

	// Labels assigns each point index to a cluster label in [0, K).
	Labels []int

	// Members groups point indices by cluster label, in ascending index
	// order. Members[j] is empty (length 0) for a cluster that received no
	// points. It is the inverse view of Labels.
	Members [][]int

	// Iterations is the number of completed assign/update cycles.
	Iterations int

	// Converged reports whether the run stopped because centroids stabilized
	// (or labels stopped changing) rather than because MaxIterations ran out.
	Converged bool
}

// DefaultConfig returns a Config with reasonable defaults. K is not
// defaulted and must be set by the caller.
func DefaultConfig() Config {
	return Config{
		MaxIterations:      100,
		Tolerance:          1e-6,
		EmptyClusterPolicy: EmptyClusterRetain,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = 100
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = 1e-6
	}
	if cfg.EmptyClusterPolicy == "" {
		cfg.EmptyClusterPolicy = EmptyClusterRetain
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

// validateConfig checks cfg against the input size n and returns a
// descriptive error if invalid.
func validateConfig(cfg *Config, n int) error {
	if cfg.K < 1 {
		return fmt.Errorf("kmeans: K must be >= 1, got %d: %w", cfg.K, ErrInvalidClusterCount)
	}
	if cfg.K > n {
		return fmt.Errorf("kmeans: K = %d exceeds number of points n = %d: %w", cfg.K, n, ErrInvalidClusterCount)
	}
	if cfg.MaxIterations < 1 {
		return fmt.Errorf("kmeans: MaxIterations must be >= 1, got %d", cfg.MaxIterations)
	}
	if cfg.Tolerance < 0 {
		return fmt.Errorf("kmeans: Tolerance must be >= 0, got %g", cfg.Tolerance)
	}
	switch cfg.EmptyClusterPolicy {
	case EmptyClusterRetain, EmptyClusterReseed:
		// valid
	default:
		return fmt.Errorf("kmeans: invalid EmptyClusterPolicy %q", cfg.EmptyClusterPolicy)
	}
	if cfg.InitialCentroids != nil && len(cfg.InitialCentroids) != cfg.K {
		return fmt.Errorf("kmeans: InitialCentroids has %d rows, want K = %d", len(cfg.InitialCentroids), cfg.K)
	}
	return nil
}

// pointDims verifies that every point shares one dimension and returns it.
func pointDims(data [][]float64) (int, error) {
	dims := len(data[0])
	if dims == 0 {
		return 0, fmt.Errorf("kmeans: points must have at least one coordinate")
	}
	for i, p := range data {
		if len(p) != dims {
			return 0, fmt.Errorf("kmeans: point %d has dimension %d, want %d: %w", i, len(p), dims, ErrDimensionMismatch)
		}
	}
	return dims, nil
}

// copyCentroids deep-copies caller-supplied initial centroids, verifying
// each row against the data dimension.
func copyCentroids(src [][]float64, dims int) ([][]float64, error) {
	centroids := make([][]float64, len(src))
	for j, c := range src {
		if len(c) != dims {
			return nil, fmt.Errorf("kmeans: initial centroid %d has dimension %d, want %d: %w", j, len(c), dims, ErrDimensionMismatch)
		}
		centroids[j] = make([]float64, dims)
		copy(centroids[j], c)
	}
	return centroids, nil
}

// Cluster partitions data into cfg.K clusters with Lloyd's algorithm.
// Each element is a point (float64 slice); all points must have the same
// dimension. The input is never modified. Returns an error if the config is
// invalid, the input is ragged, or initialization cannot find K
// value-distinct points.
func Cluster(data [][]float64, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg, len(data)); err != nil {
		return nil, err
	}

	dims, err := pointDims(data)
	if err != nil {
		return nil, err
	}

	var centroids [][]float64
	if cfg.InitialCentroids != nil {
		centroids, err = copyCentroids(cfg.InitialCentroids, dims)
	} else {
		centroids, err = initializeCentroids(cfg.Rand, data, cfg.K)
	}
	if err != nil {
		return nil, err
	}

	return run(data, centroids, cfg), nil
}

// ClusterPrecomputed clusters on a precomputed distance matrix.
// distMatrix is a flat []float64 of length n*n in row-major order, where
// distMatrix[i*n+j] is the distance between points i and j. Each row is
// treated as a point in an n-dimensional feature space of distances and fed
// through the same assign/update machinery; the matrix is not modified.
func ClusterPrecomputed(distMatrix []float64, n int, cfg Config) (*Result, error) {
	if len(distMatrix) != n*n {
		return nil, fmt.Errorf("kmeans: distMatrix length %d does not match n*n = %d (n=%d)", len(distMatrix), n*n, n)
	}
	data := make([][]float64, n)
	for i := range data {
		data[i] = distMatrix[i*n : (i+1)*n]
	}
	return Cluster(data, cfg)
}

// run executes the assign/update loop from an initialized CentroidSet.
// cfg has been defaulted and validated by the caller.
func run(data, centroids [][]float64, cfg Config) *Result {
	n := len(data)
	labels := make([]int, n)

	iterations := 0
	converged := false

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		changed := assignLabels(data, centroids, labels, cfg.Workers)
		if cfg.Observer != nil {
			cfg.Observer(iter, PhaseAssign, centroids, labels)
		}

		// An unchanged assignment is a fixed point: recomputing means over
		// the same members cannot move any centroid. Labels start zeroed, so
		// the check is only meaningful after the first cycle.
		if iter > 0 && !changed {
			converged = true
			break
		}

		members := membership(labels, cfg.K)
		next, maxShift := updateCentroids(data, members, centroids, cfg.EmptyClusterPolicy, cfg.Rand)
		centroids = next
		if cfg.Observer != nil {
			cfg.Observer(iter, PhaseUpdate, centroids, labels)
		}
		iterations++

		if maxShift <= cfg.Tolerance {
			converged = true
			break
		}
	}

	// Materialize the final assignment against the final centroids so the
	// result is always internally consistent, whichever way the loop ended.
	assignLabels(data, centroids, labels, cfg.Workers)

	return &Result{
		Centroids:  centroids,
		Labels:     labels,
		Members:    membership(labels, cfg.K),
		Iterations: iterations,
		Converged:  converged,
	}
}
