// Package mc: the path simulator and its scalar simulation modes.
package mc

import (
	"runtime"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/mcpath/dist"
	"github.com/katalvlaran/mcpath/rng"
)

// Path is one scalar trajectory: nrSteps+1 values with the initial value at
// index 0 and the state after step t at index t.
type Path []float64

// Terminal returns the final value of the path.
func (p Path) Terminal() float64 { return p[len(p)-1] }

// Model is a scalar process the simulator can materialize: an initial value
// plus a transition driven by one standard normal draw per step.
//
// Implementations must be immutable during a run; the simulator may call
// Step from several goroutines at once in partitioned mode.
type Model interface {
	InitialValue() float64
	Step(prev, z float64) float64
}

// PathSimulator owns the run geometry: how many paths, how many steps per
// path, and how the work is laid out over streams and goroutines. It holds
// no per-run state, so one simulator may serve many runs and many
// goroutines concurrently.
type PathSimulator struct {
	nrPaths int
	nrSteps int
	opts    Options
}

// NewPathSimulator validates the geometry and builds a simulator.
// nrPaths and nrSteps must be non-negative; both zeros are meaningful
// (an empty collection, single-state paths). Violations return
// ErrNegativeCount.
func NewPathSimulator(nrPaths, nrSteps int, opts ...Option) (*PathSimulator, error) {
	if nrPaths < 0 || nrSteps < 0 {
		return nil, ErrNegativeCount
	}

	return &PathSimulator{
		nrPaths: nrPaths,
		nrSteps: nrSteps,
		opts:    gatherOptions(opts...),
	}, nil
}

// NumPaths returns the configured number of paths per run.
func (s *PathSimulator) NumPaths() int { return s.nrPaths }

// NumSteps returns the configured number of steps per path.
func (s *PathSimulator) NumSteps() int { return s.nrSteps }

// runPaths executes perPath once per path index and collects the results in
// index order. It is the single engine behind every simulation mode, scalar
// and vector alike.
//
// Sequential layout (default): one stream for the whole run, handed to
// perPath for paths 0,1,2,… in order. perPath must consume a fixed number of
// draws per call for the layout to be meaningful; every mode in this package
// does.
//
// Partitioned layout (WithWorkers): one derived substream per path index,
// jobs fanned out over a bounded worker pool. Workers write disjoint slots
// of the result slice, so no locks are needed and merge order is trivially
// the index order.
func runPaths[T any](s *PathSimulator, seed uint64, perPath func(src rand.Source, i int) T) []T {
	out := make([]T, s.nrPaths)
	if s.nrPaths == 0 {
		return out
	}

	if !s.opts.partitioned {
		src := rng.NewStream(seed)
		for i := range out {
			out[i] = perPath(src, i)
		}
		return out
	}

	workers := s.opts.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > s.nrPaths {
		workers = s.nrPaths
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = perPath(rng.NewSubStream(seed, uint64(i)), i)
			}
		}()
	}
	for i := 0; i < s.nrPaths; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return out
}

// SimulatePaths materializes nrPaths trajectories of the model: each path
// starts at m.InitialValue() and advances with one standard normal draw per
// step. The result always has exactly nrPaths entries (len 0, non-nil, when
// nrPaths is 0) and every path has nrSteps+1 values.
//
// A nil model panics.
func (s *PathSimulator) SimulatePaths(seed uint64, m Model) []Path {
	if m == nil {
		panic(panicNilModel)
	}

	sampler := dist.StandardNormal{}
	return runPaths(s, seed, func(src rand.Source, _ int) Path {
		p := make(Path, s.nrSteps+1)
		p[0] = m.InitialValue()
		for t := 0; t < s.nrSteps; t++ {
			p[t+1] = m.Step(p[t], sampler.Sample(src))
		}
		return p
	})
}

// SimulatePathsWith samples nrSteps raw draws per path from the sampler and
// hands them to pathFn, which maps draws to the finished trajectory (for a
// process model, typically its Path method). The draw slice is freshly
// allocated per path; pathFn may keep or return it.
//
// The shape of the result paths is whatever pathFn returns; process models
// return nrSteps+1 values with the initial value first.
//
// A nil sampler or pathFn panics.
func (s *PathSimulator) SimulatePathsWith(seed uint64, sampler dist.Sampler, pathFn func([]float64) []float64) []Path {
	if sampler == nil {
		panic(panicNilSampler)
	}
	if pathFn == nil {
		panic(panicNilFn)
	}

	return runPaths(s, seed, func(src rand.Source, _ int) Path {
		draws := make([]float64, s.nrSteps)
		for t := range draws {
			draws[t] = sampler.Sample(src)
		}
		return Path(pathFn(draws))
	})
}

// SimulatePathsInPlace is the buffer-reuse variant of SimulatePathsWith: for
// each path the simulator allocates one nrSteps+1 buffer, samples the draws
// into buf[1:] (buf[0] is left zero), and calls inPlaceFn to rewrite the
// buffer into the finished trajectory (for a process model, its FillPath
// method). The rewritten buffer becomes the path, so the whole mode costs
// one allocation per path and nothing else.
//
// For any model with matching Path/FillPath semantics the three scalar modes
// produce identical collections for the same seed: they consume the same
// draws in the same order and apply the same arithmetic.
//
// A nil sampler or inPlaceFn panics.
func (s *PathSimulator) SimulatePathsInPlace(seed uint64, sampler dist.Sampler, inPlaceFn func(buf []float64)) []Path {
	if sampler == nil {
		panic(panicNilSampler)
	}
	if inPlaceFn == nil {
		panic(panicNilFn)
	}

	return runPaths(s, seed, func(src rand.Source, _ int) Path {
		buf := make([]float64, s.nrSteps+1)
		for t := 1; t <= s.nrSteps; t++ {
			buf[t] = sampler.Sample(src)
		}
		inPlaceFn(buf)
		return Path(buf)
	})
}
