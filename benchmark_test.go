package kmedoids

import (
	"math/rand"
	"testing"
)

func generateBenchData(n, dims int) [][]float64 {
	rng := rand.New(rand.NewSource(42))
	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, dims)
		for j := range data[i] {
			data[i][j] = rng.Float64() * 100
		}
	}
	return data
}

func generateFlatData(n, dims int) []float64 {
	rng := rand.New(rand.NewSource(42))
	data := make([]float64, n*dims)
	for i := range data {
		data[i] = rng.Float64() * 100
	}
	return data
}

// --- Pairwise Distances ---

func benchPairwiseDistances(b *testing.B, n int) {
	b.Helper()
	dims := 2
	data := generateFlatData(n, dims)
	metric := EuclideanMetric{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		PairwiseDistances(data, n, dims, metric)
	}
}

func BenchmarkPairwiseDistances_100(b *testing.B)  { benchPairwiseDistances(b, 100) }
func BenchmarkPairwiseDistances_500(b *testing.B)  { benchPairwiseDistances(b, 500) }
func BenchmarkPairwiseDistances_1000(b *testing.B) { benchPairwiseDistances(b, 1000) }

func benchPairwiseDistancesParallel(b *testing.B, n, workers int) {
	b.Helper()
	dims := 2
	data := generateFlatData(n, dims)
	metric := EuclideanMetric{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		PairwiseDistancesParallel(data, n, dims, metric, workers)
	}
}

func BenchmarkPairwiseDistancesParallel_500_4(b *testing.B)  { benchPairwiseDistancesParallel(b, 500, 4) }
func BenchmarkPairwiseDistancesParallel_1000_4(b *testing.B) { benchPairwiseDistancesParallel(b, 1000, 4) }

// --- BUILD phase ---

func benchBuild(b *testing.B, n int) {
	b.Helper()
	dims := 2
	data := generateFlatData(n, dims)
	distMatrix := PairwiseDistances(data, n, dims, EuclideanMetric{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Build(distMatrix, n, 8)
	}
}

func BenchmarkBuild_100(b *testing.B)  { benchBuild(b, 100) }
func BenchmarkBuild_500(b *testing.B)  { benchBuild(b, 500) }
func BenchmarkBuild_1000(b *testing.B) { benchBuild(b, 1000) }

// --- Reclassify ---

func benchReclassify(b *testing.B, n int) {
	b.Helper()
	dims := 2
	data := generateFlatData(n, dims)
	distMatrix := PairwiseDistances(data, n, dims, EuclideanMetric{})
	state := Build(distMatrix, n, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Reclassify(distMatrix, n, state)
	}
}

func BenchmarkReclassify_100(b *testing.B)  { benchReclassify(b, 100) }
func BenchmarkReclassify_500(b *testing.B)  { benchReclassify(b, 500) }
func BenchmarkReclassify_1000(b *testing.B) { benchReclassify(b, 1000) }

// --- SwapCost ---

func benchSwapCost(b *testing.B, n int) {
	b.Helper()
	dims := 2
	data := generateFlatData(n, dims)
	distMatrix := PairwiseDistances(data, n, dims, EuclideanMetric{})
	state := Build(distMatrix, n, 8)
	medoid := state.Medoids()[0]
	candidate := state.Nonselected()[0]
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SwapCost(distMatrix, n, state, medoid, candidate)
	}
}

func BenchmarkSwapCost_100(b *testing.B)  { benchSwapCost(b, 100) }
func BenchmarkSwapCost_500(b *testing.B)  { benchSwapCost(b, 500) }
func BenchmarkSwapCost_1000(b *testing.B) { benchSwapCost(b, 1000) }

// --- Full Pipeline ---

func benchFullPipeline(b *testing.B, n int) {
	b.Helper()
	dims := 2
	data := generateBenchData(n, dims)
	cfg := DefaultConfig()
	cfg.K = 8
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Cluster(data, cfg)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFullPipeline_100(b *testing.B)  { benchFullPipeline(b, 100) }
func BenchmarkFullPipeline_500(b *testing.B)  { benchFullPipeline(b, 500) }
func BenchmarkFullPipeline_1000(b *testing.B) { benchFullPipeline(b, 1000) }

func benchClusterPrecomputed(b *testing.B, n int) {
	b.Helper()
	dims := 2
	data := generateFlatData(n, dims)
	distMatrix := PairwiseDistances(data, n, dims, EuclideanMetric{})
	cfg := DefaultConfig()
	cfg.K = 8
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := ClusterPrecomputed(distMatrix, n, cfg)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClusterPrecomputed_100(b *testing.B) { benchClusterPrecomputed(b, 100) }
func BenchmarkClusterPrecomputed_500(b *testing.B) { benchClusterPrecomputed(b, 500) }
