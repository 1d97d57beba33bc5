// Package gbm: sentinel error set and stable panic messages.
// Constructors return sentinels (check with errors.Is); buffer misuse in the
// hot-path methods is a programmer error and panics with a stable message.
package gbm

import "errors"

var (
	// ErrInvalidParameter is returned when a model parameter is unusable:
	// non-positive or non-finite dt, negative volatility, non-finite values,
	// or an empty state vector.
	ErrInvalidParameter = errors.New("gbm: invalid parameter")

	// ErrDimensionMismatch is returned when initial values, drifts and the
	// factor matrix disagree on the dimension d.
	ErrDimensionMismatch = errors.New("gbm: dimension mismatch")
)

const (
	panicBufEmpty  = "gbm: FillPath: buffer must hold at least the initial value"
	panicStepDims  = "gbm: Step: dst, prev and z must all have length Dim"
	panicStepAlias = "gbm: Step: dst must not alias prev or z"
	panicZsDim     = "gbm: draws must have Dim components per step"
)
