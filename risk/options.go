// Package risk: functional options for the ratio guards.
package risk

// DefaultTolerance is the zero-guard tolerance when no option is given: the
// denominator is rejected only when it is exactly zero.
const DefaultTolerance = 0.0

// panic messages (no magic strings in code).
const (
	panicNegativeTolerance = "risk: tolerance must be non-negative"
)

// Options collects the tunable knobs of the ratio functions.
type Options struct {
	tolerance float64
}

// Option mutates Options.
type Option func(*Options)

// WithTolerance widens the zero guard: a denominator d is rejected when
// |d| <= tol. Negative tolerances panic.
func WithTolerance(tol float64) Option {
	if tol < 0 {
		panic(panicNegativeTolerance)
	}
	return func(o *Options) {
		o.tolerance = tol
	}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
