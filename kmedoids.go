package kmedoids

import (
	"fmt"
	"runtime"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Config controls k-medoids clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// K is the number of medoids (clusters) to select. There is no sensible
	// default; callers must set it. Must be >= 2.
	K int

	// Metric is the distance function used to measure point dissimilarity.
	// Built-in: EuclideanMetric, ManhattanMetric, CosineMetric, ChebyshevMetric,
	// MinkowskiMetric. Use DistanceFunc to wrap a custom function.
	// Ignored by ClusterPrecomputed. Default: EuclideanMetric.
	Metric DistanceMetric

	// MaxIterations caps the number of swaps applied during refinement. Each
	// swap strictly lowers the total dissimilarity, so the cap only triggers
	// on pathological inputs. Set to 0 to default to 100. Must be >= 0.
	MaxIterations int

	// SwapTolerance is the improvement a swap must offer to be applied: only
	// swaps whose cost is below -SwapTolerance are taken. Raising it trades
	// solution quality for earlier convergence. Must be >= 0. Default: 0.
	SwapTolerance float64

	// Workers controls the number of goroutines used to build the pairwise
	// distance matrix. The clustering itself is sequential. 0 means use
	// runtime.NumCPU(). Default: 0 (auto).
	Workers int
}

// Result contains the output of k-medoids clustering.
type Result struct {
	// Medoids holds the object indices of the K selected medoids, in
	// ascending order.
	Medoids []int

	// Classification maps each object to the object index of its medoid.
	// Medoids are classified to themselves.
	Classification []int

	// Labels assigns each object a dense cluster ID in [0, K): the position
	// of its medoid within Medoids.
	Labels []int

	// TotalDissimilarity is the sum over all nonmedoid objects of the
	// dissimilarity to their medoid. This is the objective the algorithm
	// minimizes.
	TotalDissimilarity float64

	// Silhouettes holds the per-object silhouette width, in [-1, 1]. Values
	// near 1 mark objects well matched to their cluster; negative values mark
	// objects that sit closer to a neighboring cluster.
	Silhouettes []float64

	// MeanSilhouette is the average silhouette width over all objects, a
	// summary measure of partition quality.
	MeanSilhouette float64

	// Iterations is the number of swaps applied during refinement.
	Iterations int

	// Converged reports whether refinement reached a local optimum. False
	// means the MaxIterations cap stopped it first.
	Converged bool
}

// DefaultConfig returns a Config with reasonable defaults.
// K must still be set by the caller.
func DefaultConfig() Config {
	return Config{
		Metric:        EuclideanMetric{},
		MaxIterations: 100,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.K < 2 {
		return fmt.Errorf("kmedoids: K must be >= 2, got %d", cfg.K)
	}
	if cfg.MaxIterations < 0 {
		return fmt.Errorf("kmedoids: MaxIterations must be >= 0 (0 means default to 100), got %d", cfg.MaxIterations)
	}
	if cfg.SwapTolerance < 0 {
		return fmt.Errorf("kmedoids: SwapTolerance must be >= 0, got %f", cfg.SwapTolerance)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = 100
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// Cluster performs k-medoids clustering on the given data.
// Each element is a point (float64 slice); all points must have the same
// dimensionality. Returns an error if the config is invalid or there are
// fewer than Config.K points.
func Cluster(data [][]float64, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := len(data)
	if n < cfg.K {
		return nil, fmt.Errorf("kmedoids: cannot select %d medoids from %d objects", cfg.K, n)
	}

	dims := len(data[0])
	flatData := make([]float64, n*dims)
	for i, row := range data {
		copy(flatData[i*dims:], row)
	}

	distMatrix := PairwiseDistancesParallel(flatData, n, dims, cfg.Metric, cfg.Workers)
	return clusterFromDistMatrix(distMatrix, n, cfg)
}

// ClusterPrecomputed performs k-medoids clustering on a precomputed
// dissimilarity matrix. distMatrix is a flat []float64 of length n*n in
// row-major order, where distMatrix[i*n+j] is the dissimilarity between
// objects i and j. The Config.Metric field is ignored since dissimilarities
// are already computed.
func ClusterPrecomputed(distMatrix []float64, n int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	if len(distMatrix) != n*n {
		return nil, fmt.Errorf("kmedoids: distMatrix length %d does not match n*n = %d (n=%d)", len(distMatrix), n*n, n)
	}

	return clusterFromDistMatrix(distMatrix, n, cfg)
}

// ClusterMatrix performs k-medoids clustering on the rows of a gonum matrix.
// Each row is one point; columns are dimensions.
func ClusterMatrix(m mat.Matrix, cfg Config) (*Result, error) {
	rows, cols := m.Dims()
	data := make([][]float64, rows)
	for i := range data {
		row := make([]float64, cols)
		for j := 0; j < cols; j++ {
			row[j] = m.At(i, j)
		}
		data[i] = row
	}
	return Cluster(data, cfg)
}

// clusterFromDistMatrix runs the PAM pipeline from a dissimilarity matrix:
// BUILD the initial medoid set, refine it by swapping, then snapshot the
// final partition.
func clusterFromDistMatrix(distMatrix []float64, n int, cfg Config) (*Result, error) {
	if n < cfg.K {
		return nil, fmt.Errorf("kmedoids: cannot select %d medoids from %d objects", cfg.K, n)
	}

	state := Build(distMatrix, n, cfg.K)
	iterations, converged := Refine(distMatrix, n, state, cfg.MaxIterations, cfg.SwapTolerance)
	total := Reclassify(distMatrix, n, state)

	return buildResult(distMatrix, n, state, total, iterations, converged), nil
}

// buildResult copies the final clustering state into an immutable Result and
// attaches the silhouette scores.
func buildResult(distMatrix []float64, n int, state *ClusteringState, total float64, iterations int, converged bool) *Result {
	medoids := make([]int, len(state.Medoids()))
	copy(medoids, state.Medoids())

	classification := make([]int, n)
	copy(classification, state.Classification())

	rank := make(map[int]int, len(medoids))
	for r, m := range medoids {
		rank[m] = r
	}
	labels := make([]int, n)
	for o, m := range classification {
		labels[o] = rank[m]
	}

	silhouettes := Silhouettes(distMatrix, n, labels, len(medoids))

	return &Result{
		Medoids:            medoids,
		Classification:     classification,
		Labels:             labels,
		TotalDissimilarity: total,
		Silhouettes:        silhouettes,
		MeanSilhouette:     stat.Mean(silhouettes, nil),
		Iterations:         iterations,
		Converged:          converged,
	}
}
