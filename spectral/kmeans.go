// Package spectral: seeded k-means over embedded points.
package spectral

import "math/rand"

// kmeans clusters points into k groups and returns a label per point.
//
// Determinism:
//
//   - The first centroid is a seeded random point; each further centroid is
//     the point farthest from the centroids chosen so far (farthest-point
//     initialization, lowest index on ties). Distinct clusters therefore
//     never start from duplicate centroids as long as distinct points exist.
//   - Nearest-centroid ties resolve to the lowest centroid index.
//   - An empty cluster keeps its previous centroid rather than resampling.
//
// Termination: the loop stops when an assignment round changes no label, or
// after maxIter rounds regardless of convergence.
//
// k ≥ len(points) degenerates to singleton labels without running the loop.
//
// Complexity: O(I·k·n·d).
func kmeans(points [][]float64, k, maxIter int, rng *rand.Rand) []int {
	n := len(points)
	if n == 0 {
		return nil
	}

	labels := make([]int, n)
	if k >= n {
		// Each point is its own cluster; surplus clusters stay empty.
		for i := range labels {
			labels[i] = i
		}

		return labels
	}

	dims := len(points[0])

	// 1) Farthest-point initialization seeded by rng.
	centroids := make([][]float64, k)
	centroids[0] = append([]float64(nil), points[rng.Intn(n)]...)
	minDist := make([]float64, n)
	for i, p := range points {
		minDist[i] = sqDist(p, centroids[0])
	}
	for c := 1; c < k; c++ {
		far := 0
		for i := 1; i < n; i++ {
			if minDist[i] > minDist[far] {
				far = i
			}
		}
		centroids[c] = append([]float64(nil), points[far]...)
		for i, p := range points {
			if d := sqDist(p, centroids[c]); d < minDist[i] {
				minDist[i] = d
			}
		}
	}

	counts := make([]int, k)
	sums := make([][]float64, k)
	for c := range sums {
		sums[c] = make([]float64, dims)
	}

	for iter := 0; iter < maxIter; iter++ {
		// 2) Assignment: nearest centroid, lowest index on ties.
		changed := false
		for i, p := range points {
			best := 0
			bestDist := sqDist(p, centroids[0])
			for c := 1; c < k; c++ {
				if d := sqDist(p, centroids[c]); d < bestDist {
					best = c
					bestDist = d
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		// 3) Update: centroid = mean of members; empty clusters keep the old
		// centroid so the label space never shrinks mid-run.
		for c := range sums {
			counts[c] = 0
			for d := range sums[c] {
				sums[c][d] = 0
			}
		}
		for i, p := range points {
			c := labels[i]
			counts[c]++
			for d, v := range p {
				sums[c][d] += v
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				continue
			}
			for d := 0; d < dims; d++ {
				centroids[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}

	return labels
}

// sqDist returns the squared euclidean distance between two points.
func sqDist(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return s
}
