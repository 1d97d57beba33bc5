// SPDX-License-Identifier: MIT

// Package mc: functional configuration for the path simulator.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - the stable panic messages for programmer errors.
//
// Design goals:
//   - Deterministic behavior: the draw layout is a function of the
//     configuration, never of scheduling or machine shape.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package mc

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers runs the simulator sequentially: a single stream for
	// the whole run, consumed in path order, then step order, then
	// component order.
	DefaultWorkers = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersNegative = "mc: WithWorkers: n must be >= 0"
	panicNilModel        = "mc: model must not be nil"
	panicNilSampler      = "mc: sampler must not be nil"
	panicNilFn           = "mc: transform function must not be nil"
	panicNoSteps         = "mc: SimulateVectorPathsWith requires at least one step"
	panicComponentRange  = "mc: component index out of range"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	workers     int  // requested goroutines; 0 means GOMAXPROCS at run time
	partitioned bool // true once WithWorkers was applied at all
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:     DefaultWorkers,
		partitioned: false,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ---------- Constructors (WithX) ----------

// WithWorkers switches the simulator to the partitioned layout and runs each
// batch on up to n goroutines. n=0 picks GOMAXPROCS when the run starts;
// n<0 panics.
//
// Layout contract: in partitioned mode every path i draws from its own
// substream, derived as DeriveSeed(seed, i). The RESULT therefore depends
// only on the seed and the geometry - never on n, GOMAXPROCS or scheduling.
// It does differ from the sequential single-stream layout; pick one mode per
// reproducibility domain and stay with it.
//
// Complexity: the run partitions nrPaths jobs over min(n, nrPaths) workers.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *Options) {
		o.workers = n
		o.partitioned = true
	}
}
