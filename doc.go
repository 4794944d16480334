// Package kmedoids implements Partitioning Around Medoids (PAM), the
// classical k-medoids clustering algorithm of Kaufman and Rousseeuw.
//
// PAM clusters n objects into k groups by selecting k representative objects
// ("medoids") that minimize the sum of dissimilarities from every object to
// its nearest medoid. Unlike k-means, it never averages observations: medoids
// are always real data points, which makes the algorithm usable with any
// dissimilarity measure and robust to outliers.
//
// Basic usage:
//
//	cfg := kmedoids.DefaultConfig()
//	cfg.K = 3
//	result, err := kmedoids.Cluster(data, cfg)
//	// result.Medoids are the k selected object indices (ascending)
//	// result.Classification[i] is the medoid object i is assigned to
//	// result.Labels[i] is the compact cluster ID of object i, in [0, k)
//
// For precomputed distance matrices:
//
//	result, err := kmedoids.ClusterPrecomputed(distMatrix, n, cfg)
//
// For gonum matrices (rows are observations):
//
//	result, err := kmedoids.ClusterMatrix(m, cfg)
//
// # Algorithm
//
// The run has two phases. BUILD greedily selects k medoids, starting from
// the object with the smallest total dissimilarity to all others and adding
// the object with the largest reduction in the objective at each step. SWAP
// then repeatedly evaluates every (medoid, nonselected) exchange in O(n) per
// pair and applies the single best strictly-improving swap until none
// remains, leaving a local optimum. Both phases are deterministic: ties are
// broken by ascending object index, so identical inputs always produce
// identical results.
package kmedoids
