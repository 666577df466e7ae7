// Package kmeans implements k-means clustering using Lloyd's algorithm.
//
// Given n points in a fixed-dimension feature space and a cluster count K,
// the algorithm partitions the points into K groups so that each point
// belongs to the cluster whose centroid is nearest (Euclidean distance), and
// centroids are iteratively recomputed as the mean of their assigned points.
//
// Basic usage:
//
//	cfg := kmeans.DefaultConfig()
//	cfg.K = 3
//	result, err := kmeans.Cluster(data, cfg)
//	// result.Labels[i] is the cluster label for point i
//	// result.Centroids[j] is the mean position of cluster j
//	// result.Members[j] lists the point indices assigned to cluster j
//
// For precomputed distance matrices (e.g. pairwise trajectory distances),
// each matrix row is treated as a point in an n-dimensional feature space
// and clustered with the same machinery:
//
//	result, err := kmeans.ClusterPrecomputed(distMatrix, n, cfg)
//
// # Determinism
//
// Initialization draws random points from the input; supply a seeded source
// via Config.Rand to make runs reproducible. Everything after initialization
// is deterministic (with the default empty-cluster policy), including the
// nearest-centroid tie-break, which always keeps the lowest cluster label.
// The parallel assignment path produces results identical to the sequential
// one regardless of Config.Workers.
package kmeans
