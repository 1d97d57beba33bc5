// SPDX-License-Identifier: MIT

// Package dist_test validates MultivariateNormal: construction errors, the
// affine transform in all three forms, and statistical agreement with gonum's
// own covariance-parameterized implementation.
package dist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/katalvlaran/mcpath/dist"
	"github.com/katalvlaran/mcpath/rng"
)

// lowerFactor is the 2×2 factor shared by the transform tests:
//
//	C = | 1.0  0.0 |      C·Cᵀ = | 1.00  0.50 |
//	    | 0.5  2.0 |             | 0.50  4.25 |
func lowerFactor() *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		1.0, 0.0,
		0.5, 2.0,
	})
}

// TestNewMultivariateNormal_RejectsBadShape requires ErrDimensionMismatch when
// the factor is not len(mu)×len(mu).
func TestNewMultivariateNormal_RejectsBadShape(t *testing.T) {
	mu := []float64{1, 2, 3}
	_, err := dist.NewMultivariateNormal(mu, lowerFactor())
	require.ErrorIs(t, err, dist.ErrDimensionMismatch)
}

// TestNewMultivariateNormal_TriangularCheck covers the opt-in strictness:
// dense factors fail, either triangle passes, and the default accepts all.
func TestNewMultivariateNormal_TriangularCheck(t *testing.T) {
	mu := []float64{0, 0}
	full := mat.NewDense(2, 2, []float64{1, 0.3, 0.5, 2})
	upper := mat.NewDense(2, 2, []float64{1, 0.3, 0, 2})

	_, err := dist.NewMultivariateNormal(mu, full, dist.WithTriangularCheck())
	require.ErrorIs(t, err, dist.ErrNotTriangular)

	_, err = dist.NewMultivariateNormal(mu, upper, dist.WithTriangularCheck())
	require.NoError(t, err, "upper-triangular factors are legal")

	_, err = dist.NewMultivariateNormal(mu, lowerFactor(), dist.WithTriangularCheck())
	require.NoError(t, err, "lower-triangular factors are legal")

	_, err = dist.NewMultivariateNormal(mu, full)
	require.NoError(t, err, "unchecked by default")
}

// TestMultivariateNormal_ZeroFactorYieldsMean pins the degenerate case: with
// C = 0 every sample is exactly μ, regardless of the draws consumed.
func TestMultivariateNormal_ZeroFactorYieldsMean(t *testing.T) {
	mu := []float64{5, 6, 7}
	mv, err := dist.NewMultivariateNormal(mu, mat.NewDense(3, 3, nil))
	require.NoError(t, err)

	src := rng.NewStream(42)
	got := make([]float64, 3)
	for i := 0; i < 8; i++ {
		mv.SampleVector(src, got)
		assert.Equal(t, mu, got, "sample %d", i)
	}
}

// TestTransformSample_HandComputed checks μ + C·z against arithmetic done by
// hand: μ=[1,2], z=[0.3,−0.4] ⇒ [1.3, 1.35].
func TestTransformSample_HandComputed(t *testing.T) {
	mv, err := dist.NewMultivariateNormal([]float64{1, 2}, lowerFactor())
	require.NoError(t, err)

	got := mv.TransformSample([]float64{0.3, -0.4})
	require.Len(t, got, 2)
	assert.InDelta(t, 1.30, got[0], 1e-12)
	assert.InDelta(t, 1.35, got[1], 1e-12)
}

// TestTransformInto_MatchesAllocatingForm verifies the no-alloc form writes
// exactly what TransformSample returns.
func TestTransformInto_MatchesAllocatingForm(t *testing.T) {
	mv, err := dist.NewMultivariateNormal([]float64{-1, 0.5}, lowerFactor())
	require.NoError(t, err)

	z := []float64{1.7, -2.2}
	dst := make([]float64, 2)
	mv.TransformInto(dst, z)
	assert.Equal(t, mv.TransformSample(z), dst)
}

// TestTransformPath_PerColumnMean verifies the bulk form: column j of the
// result equals TransformSample of column j of the input, i.e. μ is applied
// once per step and never accumulated along the path.
func TestTransformPath_PerColumnMean(t *testing.T) {
	mv, err := dist.NewMultivariateNormal([]float64{10, 20}, lowerFactor())
	require.NoError(t, err)

	zs := mat.NewDense(2, 3, []float64{
		0.3, 0.0, -1.0,
		-0.4, 0.0, 2.0,
	})
	out := mv.TransformPath(zs)

	r, c := out.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	for j := 0; j < c; j++ {
		want := mv.TransformSample(mat.Col(nil, j, zs))
		got := mat.Col(nil, j, out)
		for i := range want {
			assert.InDelta(t, want[i], got[i], 1e-12, "entry (%d,%d)", i, j)
		}
	}
}

// TestTransformRows_IsTransposedTransformPath verifies the row layout agrees
// with the column layout on the same draws: TransformRows(Z) must equal
// TransformPath(Zᵀ) transposed, entry by entry.
func TestTransformRows_IsTransposedTransformPath(t *testing.T) {
	mv, err := dist.NewMultivariateNormal([]float64{10, 20}, lowerFactor())
	require.NoError(t, err)

	rows := mat.NewDense(3, 2, []float64{
		0.3, -0.4,
		0.0, 0.0,
		-1.0, 2.0,
	})
	cols := mat.DenseCopyOf(rows.T())

	byRows := mv.TransformRows(rows)
	byCols := mv.TransformPath(cols)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, byCols.At(j, i), byRows.At(i, j), 1e-12,
				"draw %d component %d", i, j)
		}
	}
}

// TestSampleVector_PanicsOnBadDst pins the buffer contract: a dst of the
// wrong length is a programmer error with a stable panic message.
func TestSampleVector_PanicsOnBadDst(t *testing.T) {
	mv, err := dist.NewMultivariateNormal([]float64{0, 0}, lowerFactor())
	require.NoError(t, err)

	assert.PanicsWithValue(t, "dist: dst length must equal Dim", func() {
		mv.SampleVector(rng.NewStream(1), make([]float64, 3))
	})
	assert.Panics(t, func() {
		mv.TransformInto(make([]float64, 2), make([]float64, 1))
	})
}

// TestSampleVector_AgreesWithGonumDistmv draws from this package's factor
// parameterization and from distmv's covariance parameterization of the same
// law, then compares empirical means and covariances of both against the
// exact values. n=20000 keeps every tolerance several standard errors wide.
func TestSampleVector_AgreesWithGonumDistmv(t *testing.T) {
	const n = 20000
	mu := []float64{1, -2}
	chol := lowerFactor()

	// Exact covariance C·Cᵀ, also fed to distmv.
	var prod mat.Dense
	prod.Mul(chol, chol.T())
	sigma := mat.NewSymDense(2, nil)
	for i := 0; i < 2; i++ {
		for j := i; j < 2; j++ {
			sigma.SetSym(i, j, prod.At(i, j))
		}
	}

	mv, err := dist.NewMultivariateNormal(mu, chol)
	require.NoError(t, err)

	ref, ok := distmv.NewNormal(mu, sigma, rng.NewStream(2))
	require.True(t, ok, "covariance must be positive definite")

	mine := mat.NewDense(n, 2, nil)
	theirs := mat.NewDense(n, 2, nil)
	src := rng.NewStream(1)
	for i := 0; i < n; i++ {
		mv.SampleVector(src, mine.RawRowView(i))
		ref.Rand(theirs.RawRowView(i))
	}

	for name, samples := range map[string]*mat.Dense{"factor": mine, "distmv": theirs} {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, mu[j], stat.Mean(mat.Col(nil, j, samples), nil), 0.1,
				"%s: mean of component %d", name, j)
		}
		cov := mat.NewSymDense(2, nil)
		stat.CovarianceMatrix(cov, samples, nil)
		for i := 0; i < 2; i++ {
			for j := i; j < 2; j++ {
				assert.InDelta(t, sigma.At(i, j), cov.At(i, j), 0.25,
					"%s: covariance entry (%d,%d)", name, i, j)
			}
		}
	}
}
