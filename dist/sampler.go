// SPDX-License-Identifier: MIT

// Package dist: scalar sampling contracts and the gaussian samplers.
package dist

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws one scalar variate per call from a fixed distribution,
// consuming randomness only from the supplied source.
//
// Implementations hold no mutable state; sharing one value across goroutines
// is safe as long as each goroutine supplies its own source.
type Sampler interface {
	Sample(src rand.Source) float64
}

// VectorSampler draws one d-dimensional variate per call into dst.
//
// Contract:
//   - Dim() is constant for the lifetime of the sampler.
//   - len(dst) must equal Dim(); anything else is a programmer error and
//     panics with a stable message.
//   - Components are drawn in index order, so the number and order of source
//     words consumed per call is fixed. Reproducibility across runs depends
//     on this.
type VectorSampler interface {
	Dim() int
	SampleVector(src rand.Source, dst []float64)
}

// Compile-time contract checks.
var (
	_ Sampler       = StandardNormal{}
	_ Sampler       = Normal{}
	_ VectorSampler = IID{}
	_ VectorSampler = (*MultivariateNormal)(nil)
)

// IID adapts a scalar sampler into a VectorSampler whose components are
// independent draws of Of. Filling happens in index order, so a D-dimensional
// IID sample consumes the source exactly like D consecutive scalar samples.
type IID struct {
	D  int
	Of Sampler
}

// Dim returns the configured dimension.
func (v IID) Dim() int { return v.D }

// SampleVector fills dst with independent draws of Of. len(dst) must equal
// D; anything else panics.
func (v IID) SampleVector(src rand.Source, dst []float64) {
	if len(dst) != v.D {
		panic(panicDstLength)
	}
	for i := range dst {
		dst[i] = v.Of.Sample(src)
	}
}

// StandardNormal samples N(0,1).
//
// The zero value is ready to use; the type carries no state at all.
type StandardNormal struct{}

// Sample draws one standard normal variate from src.
func (StandardNormal) Sample(src rand.Source) float64 {
	return distuv.Normal{Mu: 0, Sigma: 1, Src: src}.Rand()
}

// Normal samples N(Mu, Sigma²). Sigma is expected to be non-negative; the
// draw is the usual location-scale transform of a standard normal, so for a
// given source state Normal{Mu, Sigma} draws exactly Mu + Sigma·z where z is
// what StandardNormal{} would have drawn.
type Normal struct {
	Mu    float64
	Sigma float64
}

// Sample draws one N(Mu, Sigma²) variate from src.
func (n Normal) Sample(src rand.Source) float64 {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma, Src: src}.Rand()
}
