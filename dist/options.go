// SPDX-License-Identifier: MIT

// Package dist: functional configuration for distribution constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - the stable panic messages used for buffer-misuse programmer errors.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package dist

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTriangularCheck leaves the factor orientation unchecked.
	// x = μ + C·z has covariance C·Cᵀ for ANY square C, so a non-triangular
	// factor is a valid (if unusual) parameterization; strict callers opt in
	// via WithTriangularCheck.
	DefaultTriangularCheck = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDstLength = "dist: dst length must equal Dim"
	panicZLength   = "dist: z length must equal Dim"
	panicPathShape = "dist: path matrix must have Dim rows and at least one column"
	panicRowShape  = "dist: row matrix must have Dim columns and at least one row"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	triangularCheck bool // DefaultTriangularCheck
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		triangularCheck: DefaultTriangularCheck,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ---------- Constructors (WithX) ----------

// WithTriangularCheck makes NewMultivariateNormal reject factors that are
// neither lower- nor upper-triangular (ErrNotTriangular). Either orientation
// passes: both L·Lᵀ and U·Uᵀ are valid covariance factorizations, and the
// transform never relies on the triangle being on a particular side.
//
// Complexity of the check: O(d²) once, at construction.
func WithTriangularCheck() Option {
	return func(o *Options) { o.triangularCheck = true }
}
