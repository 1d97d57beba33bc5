// Package gbm_test validates the univariate model: parameter validation, the
// closed-form step, path construction in both the allocating and the in-place
// form, and the log-return drift under simulation.
package gbm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mcpath/dist"
	"github.com/katalvlaran/mcpath/gbm"
	"github.com/katalvlaran/mcpath/rng"
)

// TestNew_RejectsBadParameters walks the rejection table for New.
func TestNew_RejectsBadParameters(t *testing.T) {
	cases := []struct {
		name                string
		s0, drift, vola, dt float64
	}{
		{"zero dt", 100, 0.05, 0.2, 0},
		{"negative dt", 100, 0.05, 0.2, -0.5},
		{"negative vola", 100, 0.05, -0.2, 1},
		{"NaN initial", math.NaN(), 0.05, 0.2, 1},
		{"Inf drift", 100, math.Inf(1), 0.2, 1},
		{"NaN dt", 100, 0.05, 0.2, math.NaN()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gbm.New(tc.s0, tc.drift, tc.vola, tc.dt)
			require.ErrorIs(t, err, gbm.ErrInvalidParameter)
		})
	}
}

// TestNew_AcceptsDegenerateButValid accepts σ=0 (deterministic growth) and
// s0=0 (absorbed at zero), both meaningful processes.
func TestNew_AcceptsDegenerateButValid(t *testing.T) {
	m, err := gbm.New(100, 0.05, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 100*math.Exp(0.05), m.Step(100, 3.7), "σ=0 ignores the draw")

	z, err := gbm.New(0, 0.05, 0.2, 1)
	require.NoError(t, err)
	assert.Zero(t, z.Step(0, 1.0), "zero stays absorbed")
}

// TestStep_MatchesClosedForm pins the exact transition against arithmetic
// spelled out in full.
func TestStep_MatchesClosedForm(t *testing.T) {
	const s0, mu, sigma, dt, z = 300.0, 0.03, 0.15, 0.25, 0.7
	m, err := gbm.New(s0, mu, sigma, dt)
	require.NoError(t, err)

	want := s0 * math.Exp((mu-0.5*sigma*sigma)*dt+sigma*math.Sqrt(dt)*z)
	assert.InDelta(t, want, m.Step(s0, z), 1e-12)
}

// TestLogStep_ConsistentWithStep ties the two step forms together:
// Step(s, z) = s·exp(LogStep(z)).
func TestLogStep_ConsistentWithStep(t *testing.T) {
	m, err := gbm.New(50, -0.1, 0.3, 0.5)
	require.NoError(t, err)
	for _, z := range []float64{-2.5, -0.3, 0, 0.3, 2.5} {
		assert.InDelta(t, 50*math.Exp(m.LogStep(z)), m.Step(50, z), 1e-12, "z=%v", z)
	}
}

// TestPath_ShapeAndRecurrence verifies the length contract (len(zs)+1, index
// 0 is the initial value) and that every entry follows from Step.
func TestPath_ShapeAndRecurrence(t *testing.T) {
	m, err := gbm.New(120, 0.02, 0.25, 1.0/12)
	require.NoError(t, err)

	zs := []float64{0.5, -1.2, 0.0, 2.1, -0.7}
	path := m.Path(zs)
	require.Len(t, path, len(zs)+1)
	assert.Equal(t, 120.0, path[0])
	for i, z := range zs {
		assert.Equal(t, m.Step(path[i], z), path[i+1], "step %d", i)
	}

	assert.Equal(t, []float64{120}, m.Path(nil), "no steps ⇒ initial value only")
}

// TestFillPath_MatchesAllocatingPath pins the in-place contract: seeding
// buf[1:] with the draws and transforming must reproduce Path(zs) exactly,
// element for element.
func TestFillPath_MatchesAllocatingPath(t *testing.T) {
	m, err := gbm.New(80, 0.07, 0.4, 0.1)
	require.NoError(t, err)

	zs := []float64{1.4, -0.2, 0.9, -1.8}
	buf := make([]float64, len(zs)+1)
	copy(buf[1:], zs)
	m.FillPath(buf)

	assert.Equal(t, m.Path(zs), buf)
}

// TestFillPath_EmptyBufferPanics pins the one illegal buffer shape.
func TestFillPath_EmptyBufferPanics(t *testing.T) {
	m, err := gbm.New(80, 0.07, 0.4, 0.1)
	require.NoError(t, err)
	assert.Panics(t, func() { m.FillPath(nil) })
}

// TestStep_LogReturnDrift simulates single exact steps over a long horizon
// and checks the mean log-return against (μ−σ²/2)·Δt. Parameters follow the
// long-standing reference scenario μ=−0.2, σ=0.4 over five years.
func TestStep_LogReturnDrift(t *testing.T) {
	const n = 20000
	m, err := gbm.New(300, -0.2, 0.4, 5)
	require.NoError(t, err)

	src := rng.NewStream(42)
	sampler := dist.StandardNormal{}
	logs := make([]float64, n)
	for i := range logs {
		logs[i] = m.LogStep(sampler.Sample(src))
	}

	want := (-0.2 - 0.5*0.4*0.4) * 5 // -1.4
	assert.InDelta(t, want, stat.Mean(logs, nil), 0.05)
}
