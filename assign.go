package kmeans

// nearestCentroid returns the label of the centroid closest to p.
// Centroids are scanned in label order with a strict less-than comparison,
// so an exact distance tie keeps the lowest label.
func nearestCentroid(p []float64, centroids [][]float64) int {
	best := 0
	bestDist := EuclideanDistance(p, centroids[0])
	for j := 1; j < len(centroids); j++ {
		if d := EuclideanDistance(p, centroids[j]); d < bestDist {
			best = j
			bestDist = d
		}
	}
	return best
}

// assignRange writes the nearest-centroid label for points [start, end) into
// labels and reports whether any entry changed.
func assignRange(data, centroids [][]float64, labels []int, start, end int) bool {
	changed := false
	for i := start; i < end; i++ {
		if l := nearestCentroid(data[i], centroids); labels[i] != l {
			labels[i] = l
			changed = true
		}
	}
	return changed
}

// membership builds the inverse view of labels: point indices grouped by
// cluster label, ascending within each group. A group that received no
// points has length zero.
func membership(labels []int, k int) [][]int {
	members := make([][]int, k)
	for i, l := range labels {
		members[l] = append(members[l], i)
	}
	return members
}
