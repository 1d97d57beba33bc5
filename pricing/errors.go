// Package pricing: sentinel error set.
// Pricers return sentinels (match with errors.Is); see dist and mc for the
// same convention in the packages underneath.
package pricing

import "errors"

var (
	// ErrInvalidParameter is returned for unusable market or contract
	// parameters: non-positive spot, strike, expiry or volatility,
	// non-finite rates, a zero-step simulator, or a correlation matrix
	// that is not positive definite.
	ErrInvalidParameter = errors.New("pricing: invalid parameter")

	// ErrDimensionMismatch is returned when basket inputs disagree on the
	// number of assets (spots, volatilities, weights, correlation matrix).
	ErrDimensionMismatch = errors.New("pricing: dimension mismatch")

	// ErrNoEstimate is returned when a simulation produced no defined
	// payoff to average, e.g. a zero-path run.
	ErrNoEstimate = errors.New("pricing: no estimate from simulation")
)
