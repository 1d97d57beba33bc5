// SPDX-License-Identifier: MIT
// Package mc: sentinel error set.
// Constructors return sentinels (match with errors.Is). Simulation methods
// never return errors: geometry is validated at construction and buffer or
// nil-argument misuse is a programmer error that panics with a stable
// message (options.go).

package mc

import "errors"

var (
	// ErrNegativeCount is returned by NewPathSimulator when nrPaths or
	// nrSteps is negative. Zero is legal for both: zero paths yields an
	// empty (non-nil) collection, zero steps yields single-state paths.
	ErrNegativeCount = errors.New("mc: path and step counts must be non-negative")
)
