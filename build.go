package kmedoids

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// FindInitialMedoid returns the object with the minimum sum of
// dissimilarities to all other objects. distMatrix is flat n×n row-major.
// The first minimal row wins on ties. O(n²).
func FindInitialMedoid(distMatrix []float64, n int) int {
	sums := make([]float64, n)
	for i := range sums {
		sums[i] = floats.Sum(distMatrix[i*n : (i+1)*n])
	}
	return floats.MinIdx(sums)
}

// FindNextMedoid returns the nonselected object whose promotion to medoid
// would shrink the total dissimilarity the most. The gain of a candidate i
// is the sum over every other nonselected object j of max(D_j - d(j,i), 0),
// where D_j is j's distance to its assigned medoid. The first maximal
// candidate wins on ties, so an all-zero scan still selects the lowest
// nonselected index (this is what makes k == n runs promote every object).
func FindNextMedoid(distMatrix []float64, n int, state *ClusteringState) int {
	bestGain := math.Inf(-1)
	next := -1

	for _, i := range state.nonselected {
		gain := 0.0
		for _, j := range state.nonselected {
			if j == i {
				continue
			}
			dJ := distMatrix[j*n+state.classification[j]]
			gain += max(dJ-distMatrix[j*n+i], 0)
		}

		if gain > bestGain {
			bestGain = gain
			next = i
		}
	}

	return next
}

// Build runs the BUILD phase: starting from the initial medoid it greedily
// adds k-1 more, reclassifying after each addition. The returned state has
// exactly k medoids and every nonselected object assigned to its nearest
// and second-nearest medoid. Assumes 2 <= k <= n. O(k·n²).
func Build(distMatrix []float64, n, k int) *ClusteringState {
	state := NewClusteringState(n, FindInitialMedoid(distMatrix, n))

	for i := 0; i < k-1; i++ {
		state.AddMedoid(FindNextMedoid(distMatrix, n, state))
		Reclassify(distMatrix, n, state)
	}

	return state
}
