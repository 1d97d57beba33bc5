// Package gbm: correlated multivariate geometric Brownian motion.
package gbm

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mcpath/dist"
)

// MultiGBM is the d-dimensional Euler-Maruyama process
//
//	S(t+Δt) = S(t) + S(t)⊙(Δt·μ + √Δt·C·z), z ~ N(0, I_d),
//
// where the factor C encodes instantaneous correlation (Cov = C·Cᵀ). The
// diffusion transform C·z is delegated to a zero-mean dist.MultivariateNormal
// built at construction.
//
// Immutable after NewMulti; Step writes only into caller-supplied buffers, so
// one model may serve many goroutines at once.
type MultiGBM struct {
	initial []float64
	drifts  []float64
	noise   *dist.MultivariateNormal

	dim    int
	dt     float64
	sqrtDt float64
}

// NewMulti builds the model from initial values, per-component drifts, a d×d
// factor and the time step. opts are forwarded to the factor validation
// (dist.WithTriangularCheck is the one that matters here).
//
// Errors:
//   - ErrInvalidParameter: empty state, non-finite entries, dt ≤ 0.
//   - ErrDimensionMismatch: len(drifts) ≠ len(initial), or factor not d×d.
//   - dist.ErrNotTriangular: strict factor validation requested and failed.
func NewMulti(initial, drifts []float64, chol mat.Matrix, dt float64, opts ...dist.Option) (*MultiGBM, error) {
	d := len(initial)
	if d == 0 || !isFinite(dt) || dt <= 0 {
		return nil, ErrInvalidParameter
	}
	for _, v := range initial {
		if !isFinite(v) {
			return nil, ErrInvalidParameter
		}
	}
	for _, v := range drifts {
		if !isFinite(v) {
			return nil, ErrInvalidParameter
		}
	}
	if len(drifts) != d {
		return nil, ErrDimensionMismatch
	}
	if r, c := chol.Dims(); r != d || c != d {
		return nil, ErrDimensionMismatch
	}

	noise, err := dist.NewMultivariateNormal(make([]float64, d), chol, opts...)
	if err != nil {
		return nil, err
	}

	return &MultiGBM{
		initial: append([]float64(nil), initial...),
		drifts:  append([]float64(nil), drifts...),
		noise:   noise,
		dim:     d,
		dt:      dt,
		sqrtDt:  math.Sqrt(dt),
	}, nil
}

// Dim returns the number of components d.
func (m *MultiGBM) Dim() int { return m.dim }

// InitialState returns a copy of S(0).
func (m *MultiGBM) InitialState() []float64 {
	return append([]float64(nil), m.initial...)
}

// Step advances one state by one time step: dst = prev + prev⊙(Δt·μ + √Δt·C·z).
//
// All three slices must have length Dim, and dst must not share backing
// storage with prev or z (dst doubles as the C·z scratch). Violations panic.
//
// Complexity: O(d²), zero allocations.
func (m *MultiGBM) Step(dst, prev, z []float64) {
	if len(dst) != m.dim || len(prev) != m.dim || len(z) != m.dim {
		panic(panicStepDims)
	}
	if &dst[0] == &prev[0] || &dst[0] == &z[0] {
		panic(panicStepAlias)
	}

	m.noise.TransformInto(dst, z) // dst = C·z (the noise has zero mean)
	for i := 0; i < m.dim; i++ {
		dst[i] = prev[i] + prev[i]*(m.dt*m.drifts[i]+m.sqrtDt*dst[i])
	}
}

// PathDense materializes a whole trajectory with dense algebra. zs is
// steps×d, one standard normal vector per row (row t drives step t). The
// result is (steps+1)×d with S(0) in row 0. All diffusion terms C·z_t come
// from a single matrix multiply; the time recurrence then runs row by row.
//
// A non-empty zs must have Dim columns; anything else panics. An empty zs
// (the Dense zero value) means zero steps and yields the single initial row.
//
// Complexity: O(steps·d²) with GEMM constants, two allocations.
func (m *MultiGBM) PathDense(zs *mat.Dense) *mat.Dense {
	steps, d := zs.Dims()
	if steps == 0 {
		out := mat.NewDense(1, m.dim, nil)
		out.SetRow(0, m.initial)
		return out
	}
	if d != m.dim {
		panic(panicZsDim)
	}

	out := mat.NewDense(steps+1, m.dim, nil)
	out.SetRow(0, m.initial)

	diff := m.noise.TransformRows(zs) // row t = C·z_t
	for t := 0; t < steps; t++ {
		prev := out.RawRowView(t)
		next := out.RawRowView(t + 1)
		dRow := diff.RawRowView(t)
		for i := 0; i < m.dim; i++ {
			next[i] = prev[i] + prev[i]*(m.dt*m.drifts[i]+m.sqrtDt*dRow[i])
		}
	}
	return out
}

// PathVectors materializes the same trajectory as a sequence of state
// vectors, stepping with Step. zs holds one draw vector per step; the result
// has len(zs)+1 vectors with a copy of S(0) first.
//
// PathDense and PathVectors agree to floating-point reassociation error; the
// dense form exists for bulk throughput, this one for streaming consumers.
func (m *MultiGBM) PathVectors(zs [][]float64) [][]float64 {
	out := make([][]float64, len(zs)+1)
	out[0] = m.InitialState()
	for t, z := range zs {
		next := make([]float64, m.dim)
		m.Step(next, out[t], z)
		out[t+1] = next
	}
	return out
}
