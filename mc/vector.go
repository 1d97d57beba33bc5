// Package mc: vector trajectories and the multivariate simulation modes.
package mc

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mcpath/dist"
)

// VectorModel is a d-dimensional process the simulator can materialize. Step
// advances one state into dst given the previous state and one standard
// normal draw per component; dst, prev and z all have length Dim and dst
// never aliases the other two (the simulator guarantees this).
//
// Implementations must be immutable during a run, as with Model.
type VectorModel interface {
	Dim() int
	InitialState() []float64
	Step(dst, prev, z []float64)
}

// VectorPath is one d-dimensional trajectory backed by a single row-major
// arena of (steps+1)·d float64s: state t occupies the contiguous block
// [t·d, (t+1)·d). One allocation per path, and the dense view comes for
// free.
type VectorPath struct {
	data []float64
	dim  int
}

// newVectorPath allocates the arena for steps transitions of dimension dim.
func newVectorPath(steps, dim int) *VectorPath {
	return &VectorPath{
		data: make([]float64, (steps+1)*dim),
		dim:  dim,
	}
}

// Dim returns the number of components per state.
func (p *VectorPath) Dim() int { return p.dim }

// Len returns the number of states, always steps+1.
func (p *VectorPath) Len() int { return len(p.data) / p.dim }

// At returns component i of state t.
func (p *VectorPath) At(t, i int) float64 {
	if i < 0 || i >= p.dim {
		panic(panicComponentRange)
	}
	return p.data[t*p.dim+i]
}

// State returns state t as a slice view over the arena; it shares storage
// with the path, so writes modify the trajectory.
func (p *VectorPath) State(t int) []float64 {
	return p.data[t*p.dim : (t+1)*p.dim : (t+1)*p.dim]
}

// Terminal returns the final state as a view, like State.
func (p *VectorPath) Terminal() []float64 { return p.State(p.Len() - 1) }

// Component extracts the time series of component i as a fresh slice of
// Len() values.
func (p *VectorPath) Component(i int) []float64 {
	if i < 0 || i >= p.dim {
		panic(panicComponentRange)
	}

	out := make([]float64, p.Len())
	for t := range out {
		out[t] = p.data[t*p.dim+i]
	}
	return out
}

// Dense returns the trajectory as a (steps+1)×d gonum matrix WITHOUT
// copying: the matrix wraps the arena, so it is a read-write view. Use
// Dense().T() when an algorithm wants components in rows and steps in
// columns.
func (p *VectorPath) Dense() *mat.Dense {
	return mat.NewDense(p.Len(), p.dim, p.data)
}

// SimulateVectorPaths materializes nrPaths vector trajectories of the model:
// each path starts at m.InitialState() and advances with d standard normal
// draws per step, consumed component-major within the step. The result has
// exactly nrPaths entries; every path stores nrSteps+1 states.
//
// A nil model panics.
func (s *PathSimulator) SimulateVectorPaths(seed uint64, m VectorModel) []*VectorPath {
	if m == nil {
		panic(panicNilModel)
	}

	d := m.Dim()
	initial := m.InitialState()
	sampler := dist.StandardNormal{}
	return runPaths(s, seed, func(src rand.Source, _ int) *VectorPath {
		vp := newVectorPath(s.nrSteps, d)
		copy(vp.State(0), initial)
		z := make([]float64, d)
		for t := 0; t < s.nrSteps; t++ {
			for c := range z {
				z[c] = sampler.Sample(src)
			}
			m.Step(vp.State(t+1), vp.State(t), z)
		}
		return vp
	})
}

// SimulateVectorPathsWith samples an nrSteps×Dim matrix of raw draws per
// path (row t holds the step-t draw vector) and hands it to pathFn, which
// maps draws to the finished trajectory (for a process model, typically its
// PathDense method). The draw matrix is freshly allocated per path.
//
// For raw independent gaussians use dist.IID{D: d, Of: dist.StandardNormal{}};
// it fills each row in component order, so this mode consumes the stream
// exactly like SimulateVectorPaths and the two agree for the same seed.
//
// nrSteps must be at least 1 in this mode (an empty draw matrix cannot be
// represented); a zero-step simulator panics here, while all other modes
// accept it. Nil arguments panic.
func (s *PathSimulator) SimulateVectorPathsWith(seed uint64, sampler dist.VectorSampler, pathFn func(*mat.Dense) *mat.Dense) []*mat.Dense {
	if sampler == nil {
		panic(panicNilSampler)
	}
	if pathFn == nil {
		panic(panicNilFn)
	}
	if s.nrSteps == 0 {
		panic(panicNoSteps)
	}

	d := sampler.Dim()
	return runPaths(s, seed, func(src rand.Source, _ int) *mat.Dense {
		zs := mat.NewDense(s.nrSteps, d, nil)
		for t := 0; t < s.nrSteps; t++ {
			sampler.SampleVector(src, zs.RawRowView(t))
		}
		return pathFn(zs)
	})
}
