package kmedoids

import "math"

// Reclassify recomputes, for every nonselected object, its nearest and
// second-nearest medoid, and returns the total dissimilarity of the
// partition (the clustering objective). distMatrix is flat n×n row-major.
//
// The scan visits medoids in ascending order starting from the object's
// current assignment: a strictly closer medoid takes over as nearest and
// demotes the previous one to second-nearest; a medoid strictly closer than
// the running second-nearest replaces only that. The second-nearest
// candidate starts empty each pass: values carried in the state are
// placeholders from AddMedoid/SwapMedoid and are fully rebuilt here, so
// repeated calls without an intervening medoid change are idempotent.
// Cost: O(k·n).
func Reclassify(distMatrix []float64, n int, state *ClusteringState) float64 {
	total := 0.0

	for _, o := range state.nonselected {
		nearest := state.classification[o]
		nearestDist := distMatrix[o*n+nearest]
		second := -1
		secondDist := math.Inf(1)

		for _, m := range state.medoids {
			if m == nearest {
				continue
			}
			d := distMatrix[o*n+m]
			if d < nearestDist {
				second = nearest
				secondDist = nearestDist
				nearest = m
				nearestDist = d
			} else if d < secondDist {
				second = m
				secondDist = d
			}
		}

		state.classification[o] = nearest
		if second >= 0 {
			state.secondClosest[o] = second
		}
		total += nearestDist
	}

	return total
}
