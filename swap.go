package kmedoids

// SwapCost computes the change in total dissimilarity that exchanging the
// given medoid for the given nonselected candidate would cause, summed over
// every object that stays nonselected. distMatrix is flat n×n row-major.
// A negative cost means the swap improves the objective.
//
// For each such object j the contribution is derived from four distances:
// j to its current medoid, j to the outgoing medoid, j to the candidate, and
// j to its second-closest medoid. Objects assigned to the outgoing medoid
// either move to the candidate or fall back to their second-closest medoid,
// whichever is nearer; objects assigned elsewhere contribute only if the
// candidate is strictly closer than their current medoid. Requires a state
// whose assignments were restored by Reclassify. Cost: O(n) per pair.
func SwapCost(distMatrix []float64, n int, state *ClusteringState, medoid, candidate int) float64 {
	total := 0.0

	for _, j := range state.nonselected {
		if j == candidate {
			continue
		}

		cur := distMatrix[j*n+state.classification[j]]
		toOut := distMatrix[j*n+medoid]
		toIn := distMatrix[j*n+candidate]

		switch {
		case cur >= toOut:
			// The outgoing medoid is (or ties) j's nearest.
			second := distMatrix[j*n+state.secondClosest[j]]
			if toIn < second {
				total += toIn - toOut
			} else {
				total += second - toOut
			}
		case cur > toIn:
			// Removing the outgoing medoid leaves j in place, but the
			// candidate is strictly closer than j's current medoid.
			total += toIn - cur
		}
	}

	return total
}
