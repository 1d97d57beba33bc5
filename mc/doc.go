// SPDX-License-Identifier: MIT

// Package mc is the Monte Carlo path engine of mcpath: it turns a seed, a
// process model and a path count into a collection of simulated trajectories,
// and aggregates payoffs over that collection.
//
// 🚀 How the pieces compose
//
//	seed ─▶ random stream ─▶ sampler (dist) ─▶ process model (gbm) ─▶ paths
//	                                                                    │
//	                                payoff aggregation (PathEvaluator) ◀┘
//
//	The simulator owns the run geometry (nrPaths × nrSteps) and the draw
//	bookkeeping; models own the dynamics; payoffs own the valuation. Every
//	stage consumes randomness only through the explicit seed.
//
// ✨ Key features:
//   - three scalar modes over one draw discipline: materialize a model
//     (SimulatePaths), transform raw draws (SimulatePathsWith), or rewrite
//     draw buffers in place (SimulatePathsInPlace) - same seed, same result,
//     whichever mode fits the call site
//   - vector modes for correlated systems, with arena-backed VectorPath
//     storage exposing gonum dense views at zero copy cost
//   - optional worker pool: WithWorkers(n) partitions paths over goroutines
//     with one derived substream per path, so results never depend on n
//   - PathEvaluator: payoff evaluation with explicit "no value" handling and
//     the total-count averaging rule
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/mcpath/gbm"
//	    "github.com/katalvlaran/mcpath/mc"
//	)
//
//	sim, _ := mc.NewPathSimulator(100_000, 100)
//	model, _ := gbm.New(300, 0.03, 0.15, 0.01)
//	paths := sim.SimulatePaths(42, model)
//
//	eval := mc.NewPathEvaluator(paths)
//	price, ok := eval.EvaluateAverage(func(p mc.Path) (float64, bool) {
//	    return math.Max(p[len(p)-1]-250, 0), true
//	})
//
// Determinism:
//
//	Sequential runs consume ONE stream in path order, then step order, then
//	component order. Partitioned runs (WithWorkers) consume one SplitMix64
//	substream per path. The two layouts differ from each other but each is
//	exactly reproducible from the seed, on any machine, at any worker count.
//
// Error accuracy shrinks as O(1/√N) in the path count N; quadrupling N
// halves the statistical error of averaged payoffs.
package mc
