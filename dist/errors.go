// SPDX-License-Identifier: MIT
// Package dist: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the dist
// package. Constructors MUST return these sentinels and tests MUST check them
// via errors.Is. Sampling itself never returns errors; misuse of preallocated
// buffers is a programmer error and panics with a stable message (options.go).

package dist

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dist: ..." for consistency and to allow easy
// grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary; callers will still use errors.Is to match.

var (
	// ErrDimensionMismatch indicates incompatible dimensions between the mean
	// vector and the factor matrix, e.g. len(mu)=3 with a 2×2 factor.
	// Construction must validate shapes before any allocation.
	ErrDimensionMismatch = errors.New("dist: dimension mismatch")

	// ErrNotTriangular signals that the factor failed the optional
	// triangularity check (WithTriangularCheck): it is neither
	// lower-triangular nor upper-triangular.
	ErrNotTriangular = errors.New("dist: factor is not triangular")
)
