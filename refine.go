package kmedoids

import (
	"log"
	"math"
)

// Refine runs the SWAP phase: it evaluates every (medoid, nonselected)
// exchange, applies the single cheapest swap if its cost is below -tolerance,
// reclassifies, and repeats until no such swap exists or maxIterations swaps
// have been applied. The first minimal pair wins on ties, scanning medoids
// and nonselected objects in ascending order.
//
// It returns the number of applied swaps and whether the loop converged to a
// local optimum; converged is false only when the iteration cap stopped the
// search, which is also logged. On return the state is always freshly
// reclassified. Cost per iteration: O(k·(n-k)·n).
func Refine(distMatrix []float64, n int, state *ClusteringState, maxIterations int, tolerance float64) (iterations int, converged bool) {
	for iterations < maxIterations {
		minCost := math.Inf(1)
		oldMedoid := -1
		newMedoid := -1

		for _, i := range state.medoids {
			for _, h := range state.nonselected {
				cost := SwapCost(distMatrix, n, state, i, h)
				if cost < minCost {
					minCost = cost
					oldMedoid = i
					newMedoid = h
				}
			}
		}

		if minCost >= -tolerance {
			return iterations, true
		}

		state.SwapMedoid(oldMedoid, newMedoid)
		Reclassify(distMatrix, n, state)
		iterations++
	}

	log.Printf("kmedoids: refine stopped after %d swaps without reaching a local optimum", maxIterations)
	return iterations, false
}
