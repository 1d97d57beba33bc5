// Package risk: sentinel errors.
package risk

import "errors"

// ErrDivisionByZero is returned when a ratio's denominator fails the zero
// guard (exactly zero, or within the configured tolerance of it).
//
// NOTE: DO NOT %w wrap this sentinel inside the package; callers match it
// with errors.Is. Wrap at the outer boundary only.
var ErrDivisionByZero = errors.New("risk: division by zero")
