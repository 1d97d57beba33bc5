// Package risk provides scalar risk-adjusted performance ratios.
//
// # What lives here 🚀
//
//   - SharpeRatio: excess return over the benchmark, divided by the
//     asset's return volatility.
//   - InformationRatio: active return over the benchmark, divided by the
//     tracking error.
//
// Both share one failure mode: a vanishing denominator. The guard is
// tolerance-aware via WithTolerance, so callers decide whether "zero" means
// exactly 0 or merely below their numerical noise floor. A denominator that
// fails the guard yields ErrDivisionByZero.
//
// # Scope ⚙️
//
// Inputs are plain float64 summary statistics the caller has already
// estimated (for Monte Carlo estimates, see the mc package's evaluator).
// Non-finite inputs are not rejected here: NaN and ±Inf propagate through
// the arithmetic so upstream estimation problems stay visible.
package risk
