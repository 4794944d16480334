package kmedoids

import "sort"

// ClusteringState is the mutable partition state threaded through the BUILD
// and SWAP phases. It tracks which objects are medoids, which are not, and
// for every object the medoid it is assigned to plus the second-closest
// medoid (used to bound swap-cost evaluation without rescanning all medoids).
//
// Membership is stored as ascending sorted slices so that every scan visits
// objects in index order; the "first minimum/maximum wins" tie-breaks in the
// phases depend on that order being stable.
type ClusteringState struct {
	medoids        []int
	nonselected    []int
	classification []int
	secondClosest  []int
}

// NewClusteringState creates the state for n objects with a single initial
// medoid. All objects start classified to the initial medoid, which also
// serves as the degenerate second-closest until more medoids exist.
func NewClusteringState(n, initialMedoid int) *ClusteringState {
	s := &ClusteringState{
		medoids:        make([]int, 0, 1),
		nonselected:    make([]int, 0, n),
		classification: make([]int, n),
		secondClosest:  make([]int, n),
	}

	for i := 0; i < n; i++ {
		s.classification[i] = initialMedoid
		s.secondClosest[i] = initialMedoid
		if i != initialMedoid {
			s.nonselected = append(s.nonselected, i)
		}
	}
	s.medoids = append(s.medoids, initialMedoid)

	return s
}

// NumObjects returns the total number of objects in the partition.
func (s *ClusteringState) NumObjects() int {
	return len(s.classification)
}

// Medoids returns the current medoid indices in ascending order.
// The slice is owned by the state; callers must not modify it.
func (s *ClusteringState) Medoids() []int {
	return s.medoids
}

// Nonselected returns the current nonselected object indices in ascending
// order. The slice is owned by the state; callers must not modify it.
func (s *ClusteringState) Nonselected() []int {
	return s.nonselected
}

// Classification returns the assigned medoid for every object. Medoids map
// to themselves. The slice is owned by the state; callers must not modify it.
func (s *ClusteringState) Classification() []int {
	return s.classification
}

// SecondClosestMedoids returns the second-closest medoid for every object.
// Entries are only meaningful for nonselected objects, and only after a
// Reclassify pass. The slice is owned by the state; callers must not modify it.
func (s *ClusteringState) SecondClosestMedoids() []int {
	return s.secondClosest
}

// AddMedoid promotes a nonselected object to a medoid and assigns it to
// itself.
func (s *ClusteringState) AddMedoid(m int) {
	s.medoids = insertSorted(s.medoids, m)
	s.nonselected = removeSorted(s.nonselected, m)
	s.classification[m] = m
}

// SwapMedoid demotes oldMedoid to nonselected, promotes newMedoid, and remaps
// every classification and second-closest entry pointing at oldMedoid to
// newMedoid. The remapped entries are placeholders only: callers must run
// Reclassify before reading any assignment.
func (s *ClusteringState) SwapMedoid(oldMedoid, newMedoid int) {
	s.medoids = removeSorted(s.medoids, oldMedoid)
	s.nonselected = insertSorted(s.nonselected, oldMedoid)
	s.AddMedoid(newMedoid)

	for i, m := range s.classification {
		if m == oldMedoid {
			s.classification[i] = newMedoid
		}
	}
	for i, m := range s.secondClosest {
		if m == oldMedoid {
			s.secondClosest[i] = newMedoid
		}
	}
}

// insertSorted inserts v into ascending sorted slice s if not already present.
func insertSorted(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	if i < len(s) && s[i] == v {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// removeSorted removes v from ascending sorted slice s if present.
func removeSorted(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	if i == len(s) || s[i] != v {
		return s
	}
	return append(s[:i], s[i+1:]...)
}
