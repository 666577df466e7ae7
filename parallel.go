package kmeans

import "sync"

// assignLabels runs the assignment step, fanning out over contiguous point
// ranges when workers > 1. Each worker reads the immutable data and centroid
// snapshot and writes a disjoint range of labels, so no synchronization is
// needed for the writes. Falls back to the sequential path if workers <= 1.
//
// The resulting labels are bitwise identical to the sequential path: each
// point's nearest centroid depends on no other point.
func assignLabels(data, centroids [][]float64, labels []int, workers int) bool {
	n := len(data)
	if workers <= 1 || n <= 1 {
		return assignRange(data, centroids, labels, 0, n)
	}

	changed := make([]bool, workers)

	var wg sync.WaitGroup
	rowsPerWorker := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, n)
		if start >= n {
			break
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			changed[w] = assignRange(data, centroids, labels, start, end)
		}(w, start, end)
	}

	wg.Wait()

	for _, c := range changed {
		if c {
			return true
		}
	}
	return false
}
