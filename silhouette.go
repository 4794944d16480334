package kmedoids

import "math"

// Silhouettes computes the silhouette width of every object in a partition.
// distMatrix is flat n×n row-major; labels assigns each object a cluster ID
// in [0, k).
//
// For an object o in cluster C, a is the mean dissimilarity of o to the
// other members of C and b is the smallest mean dissimilarity of o to the
// members of any other cluster; the width is (b - a) / max(a, b). Objects in
// singleton clusters have width 0, as do objects with a == b == 0. Widths
// lie in [-1, 1]: values near 1 mark an object deep inside its own cluster,
// negative values an object closer to a neighboring one. Cost: O(n²).
func Silhouettes(distMatrix []float64, n int, labels []int, k int) []float64 {
	sizes := make([]int, k)
	for _, l := range labels {
		sizes[l]++
	}

	result := make([]float64, n)
	sums := make([]float64, k)

	for o := 0; o < n; o++ {
		for c := range sums {
			sums[c] = 0
		}
		for j := 0; j < n; j++ {
			if j != o {
				sums[labels[j]] += distMatrix[o*n+j]
			}
		}

		own := labels[o]
		if sizes[own] <= 1 {
			continue // singleton cluster, width stays 0
		}

		a := sums[own] / float64(sizes[own]-1)
		b := math.Inf(1)
		for c, sum := range sums {
			if c == own || sizes[c] == 0 {
				continue
			}
			if mean := sum / float64(sizes[c]); mean < b {
				b = mean
			}
		}
		if math.IsInf(b, 1) {
			continue // no other occupied cluster
		}

		if m := max(a, b); m > 0 {
			result[o] = (b - a) / m
		}
	}

	return result
}
