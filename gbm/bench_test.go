package gbm_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mcpath/dist"
	"github.com/katalvlaran/mcpath/gbm"
	"github.com/katalvlaran/mcpath/rng"
)

// benchDraws prepares n deterministic standard normal draws.
func benchDraws(n int) []float64 {
	src := rng.NewStream(1)
	sampler := dist.StandardNormal{}
	zs := make([]float64, n)
	for i := range zs {
		zs[i] = sampler.Sample(src)
	}
	return zs
}

// BenchmarkGBM_Path benchmarks the allocating univariate path (252 steps).
func BenchmarkGBM_Path(b *testing.B) {
	m, err := gbm.New(100, 0.05, 0.2, 1.0/252)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	zs := benchDraws(252)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Path(zs)
	}
}

// BenchmarkGBM_FillPath benchmarks the in-place univariate path (252 steps),
// reusing one buffer across iterations.
func BenchmarkGBM_FillPath(b *testing.B) {
	m, err := gbm.New(100, 0.05, 0.2, 1.0/252)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	zs := benchDraws(252)
	buf := make([]float64, len(zs)+1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf[1:], zs)
		m.FillPath(buf)
	}
}

// benchMulti builds a 3-asset model for the multivariate benchmarks.
func benchMulti(b *testing.B) *gbm.MultiGBM {
	m, err := gbm.NewMulti(
		[]float64{1, 2, 3},
		[]float64{0.1, 0.2, 0.3},
		mat.NewDense(3, 3, []float64{
			1.0, 0.5, 0.1,
			0.0, 0.6, 0.7,
			0.0, 0.0, 0.8,
		}),
		1.0/252,
	)
	if err != nil {
		b.Fatalf("NewMulti failed: %v", err)
	}
	return m
}

// BenchmarkMultiGBM_PathDense benchmarks the GEMM pipeline (252 steps, 3 assets).
func BenchmarkMultiGBM_PathDense(b *testing.B) {
	m := benchMulti(b)
	zs := mat.NewDense(252, 3, benchDraws(252*3))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.PathDense(zs)
	}
}

// BenchmarkMultiGBM_PathVectors benchmarks the step-wise pipeline on the same
// workload, for a direct comparison against PathDense.
func BenchmarkMultiGBM_PathVectors(b *testing.B) {
	m := benchMulti(b)
	flat := benchDraws(252 * 3)
	zs := make([][]float64, 252)
	for t := range zs {
		zs[t] = flat[t*3 : (t+1)*3]
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.PathVectors(zs)
	}
}
