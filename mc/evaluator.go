// SPDX-License-Identifier: MIT

// Package mc: payoff evaluation over simulated path collections.
package mc

// Payoff maps one path to a value. The boolean reports whether the payoff is
// defined for that path; return false for "no value" rather than encoding it
// as NaN or a magic number. Defined values pass through unchanged, NaN and
// ±Inf included.
type Payoff[P any] func(P) (float64, bool)

// Value is one evaluated payoff: the value and whether it was defined.
type Value struct {
	Value float64
	OK    bool
}

// PathEvaluator aggregates payoffs over a fixed collection of paths. The
// type parameter is the path representation: Path, *VectorPath, a gonum
// matrix, or anything else a run produced.
type PathEvaluator[P any] struct {
	paths []P
}

// NewPathEvaluator wraps a path collection for evaluation. The evaluator
// keeps the slice without copying; callers must not mutate it while
// evaluating.
func NewPathEvaluator[P any](paths []P) *PathEvaluator[P] {
	return &PathEvaluator[P]{paths: paths}
}

// Len returns the number of paths in the collection.
func (e *PathEvaluator[P]) Len() int { return len(e.paths) }

// Evaluate applies payoff to every path and returns the per-path values in
// path order.
func (e *PathEvaluator[P]) Evaluate(payoff Payoff[P]) []Value {
	out := make([]Value, len(e.paths))
	for i := range e.paths {
		v, ok := payoff(e.paths[i])
		out[i] = Value{Value: v, OK: ok}
	}
	return out
}

// EvaluateAverage averages the defined payoffs over the TOTAL path count:
// an undefined payoff contributes nothing to the sum but still counts in
// the denominator, so a payoff defined on half the paths is worth half its
// conditional value, not renormalized over the paying half. The average
// itself is undefined (ok=false) when the collection is empty or when no
// payoff was defined at all.
func (e *PathEvaluator[P]) EvaluateAverage(payoff Payoff[P]) (float64, bool) {
	if len(e.paths) == 0 {
		return 0, false
	}

	var (
		total   float64
		defined bool
	)
	for i := range e.paths {
		if v, ok := payoff(e.paths[i]); ok {
			total += v
			defined = true
		}
	}
	if !defined {
		return 0, false
	}
	return total / float64(len(e.paths)), true
}
