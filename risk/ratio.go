// Package risk: ratio arithmetic.
package risk

import "math"

// divisible reports whether denom survives the zero guard: |denom| must
// exceed the tolerance. NaN denominators pass the guard and propagate.
func divisible(denom, tolerance float64) bool {
	return !(math.Abs(denom) <= tolerance)
}

// SharpeRatio returns (assetReturn − benchmarkReturn) / assetStd, the
// risk-adjusted excess return of the asset over the benchmark.
//
// assetStd is typically the standard deviation of the asset's returns over
// the same horizon as the return figures. A zero (or within-tolerance)
// assetStd yields ErrDivisionByZero.
//
// Complexity: O(1).
func SharpeRatio(assetReturn, benchmarkReturn, assetStd float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if !divisible(assetStd, o.tolerance) {
		return 0, ErrDivisionByZero
	}
	return (assetReturn - benchmarkReturn) / assetStd, nil
}

// InformationRatio returns (portfolioReturn − benchmarkReturn) /
// trackingError, the active return per unit of deviation from the
// benchmark.
//
// trackingError is the standard deviation of the active-return series. A
// zero (or within-tolerance) trackingError yields ErrDivisionByZero.
//
// Complexity: O(1).
func InformationRatio(portfolioReturn, benchmarkReturn, trackingError float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if !divisible(trackingError, o.tolerance) {
		return 0, ErrDivisionByZero
	}
	return (portfolioReturn - benchmarkReturn) / trackingError, nil
}
