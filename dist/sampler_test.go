// SPDX-License-Identifier: MIT

// Package dist_test validates the scalar samplers: determinism under a fixed
// seed, first moments, and the location-scale identity tying Normal to
// StandardNormal.
package dist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mcpath/dist"
	"github.com/katalvlaran/mcpath/rng"
)

// drawScalars pulls n variates from s using a fresh stream for seed.
func drawScalars(s dist.Sampler, seed uint64, n int) []float64 {
	src := rng.NewStream(seed)
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Sample(src)
	}
	return out
}

// TestStandardNormal_Deterministic verifies that the same seed reproduces the
// same draw sequence bit for bit.
func TestStandardNormal_Deterministic(t *testing.T) {
	a := drawScalars(dist.StandardNormal{}, 42, 256)
	b := drawScalars(dist.StandardNormal{}, 42, 256)
	assert.Equal(t, a, b)
}

// TestStandardNormal_Moments checks sample mean and variance against N(0,1)
// with tolerances several standard errors wide at n=20000.
func TestStandardNormal_Moments(t *testing.T) {
	xs := drawScalars(dist.StandardNormal{}, 7, 20000)
	mean, std := stat.MeanStdDev(xs, nil)
	assert.InDelta(t, 0.0, mean, 0.05)
	assert.InDelta(t, 1.0, std, 0.05)
}

// TestNormal_LocationScaleOfStandard pins the exact identity: for the same
// source state, Normal{Mu, Sigma} draws Mu + Sigma·z where z is the
// StandardNormal draw. The arithmetic is identical, so equality is exact.
func TestNormal_LocationScaleOfStandard(t *testing.T) {
	const mu, sigma = 3.0, 2.0
	zs := drawScalars(dist.StandardNormal{}, 11, 128)
	xs := drawScalars(dist.Normal{Mu: mu, Sigma: sigma}, 11, 128)
	require.Len(t, xs, len(zs))
	for i := range zs {
		assert.Equal(t, zs[i]*sigma+mu, xs[i], "draw %d", i)
	}
}

// TestNormal_ZeroSigmaIsDegenerate verifies σ=0 collapses the distribution to
// a point mass at Mu. The source is still consumed (one draw per call), which
// keeps stream layouts independent of parameter values.
func TestNormal_ZeroSigmaIsDegenerate(t *testing.T) {
	xs := drawScalars(dist.Normal{Mu: -1.5, Sigma: 0}, 3, 32)
	for i, x := range xs {
		assert.Equal(t, -1.5, x, "draw %d", i)
	}
}

// TestIID_MatchesScalarSequence pins the adapter's draw discipline: one
// D-dimensional IID sample consumes the source exactly like D consecutive
// scalar samples, in index order.
func TestIID_MatchesScalarSequence(t *testing.T) {
	const d, rounds = 3, 8
	want := drawScalars(dist.StandardNormal{}, 21, d*rounds)

	v := dist.IID{D: d, Of: dist.StandardNormal{}}
	src := rng.NewStream(21)
	dst := make([]float64, d)
	for r := 0; r < rounds; r++ {
		v.SampleVector(src, dst)
		assert.Equal(t, want[r*d:(r+1)*d], dst, "round %d", r)
	}

	assert.Panics(t, func() { v.SampleVector(src, make([]float64, d+1)) })
}
