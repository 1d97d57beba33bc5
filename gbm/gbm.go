// Package gbm: univariate geometric Brownian motion.
package gbm

import "math"

// GBM is the univariate process S(t) with drift μ, volatility σ and fixed
// time step Δt, advanced with the exact log-normal transition (see package
// docs). The value is immutable after New; per-step constants are
// precomputed once.
type GBM struct {
	s0    float64
	drift float64
	vola  float64
	dt    float64

	logDrift  float64 // (μ − σ²/2)·Δt
	volaSqrtT float64 // σ·√Δt
}

// New validates the parameters and builds the model.
//
// Requirements:
//   - s0, drift finite;
//   - vola finite and ≥ 0;
//   - dt finite and > 0.
//
// Violations return ErrInvalidParameter.
func New(s0, drift, vola, dt float64) (*GBM, error) {
	if !isFinite(s0) || !isFinite(drift) || !isFinite(vola) || !isFinite(dt) {
		return nil, ErrInvalidParameter
	}
	if vola < 0 || dt <= 0 {
		return nil, ErrInvalidParameter
	}

	return &GBM{
		s0:        s0,
		drift:     drift,
		vola:      vola,
		dt:        dt,
		logDrift:  (drift - 0.5*vola*vola) * dt,
		volaSqrtT: vola * math.Sqrt(dt),
	}, nil
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// InitialValue returns S(0).
func (m *GBM) InitialValue() float64 { return m.s0 }

// Step advances one value by one time step given a standard normal draw z:
//
//	Step(s, z) = s·exp((μ−σ²/2)Δt + σ√Δt·z)
//
// One exp, no allocations; prev is read only.
func (m *GBM) Step(prev, z float64) float64 {
	return prev * math.Exp(m.logDrift+m.volaSqrtT*z)
}

// LogStep returns the log-increment ln(S(t+Δt)/S(t)) for the draw z, i.e.
// (μ−σ²/2)Δt + σ√Δt·z. Useful when aggregating log-returns directly.
func (m *GBM) LogStep(z float64) float64 {
	return m.logDrift + m.volaSqrtT*z
}

// Path materializes a full trajectory from the given draws. The result has
// len(zs)+1 values with the initial value at index 0; zs may be empty, in
// which case the path is just [S(0)].
//
// Complexity: O(len(zs)) time, one allocation.
func (m *GBM) Path(zs []float64) []float64 {
	out := make([]float64, len(zs)+1)
	out[0] = m.s0
	for i, z := range zs {
		out[i+1] = m.Step(out[i], z)
	}
	return out
}

// FillPath rewrites buf into a trajectory in place. On entry buf[1:] holds
// one standard normal draw per step and buf[0] is ignored; on return buf[0]
// is S(0) and buf[i] is the value after i steps. The transformation reads
// each draw exactly once, before overwriting its slot.
//
// len(buf) must be at least 1; an empty buffer panics.
//
// Complexity: O(len(buf)) time, zero allocations.
func (m *GBM) FillPath(buf []float64) {
	if len(buf) == 0 {
		panic(panicBufEmpty)
	}

	buf[0] = m.s0
	for i := 1; i < len(buf); i++ {
		z := buf[i]
		buf[i] = m.Step(buf[i-1], z)
	}
}
