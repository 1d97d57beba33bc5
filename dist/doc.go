// SPDX-License-Identifier: MIT

// Package dist provides the sampling layer of mcpath: scalar and vector
// distributions that draw from an explicit rand.Source.
//
// 🚀 Why its own package?
//
//	Process models (gbm) and the simulator (mc) never talk to a generator
//	directly. They consume Sampler / VectorSampler values, so the same
//	simulation code runs unchanged over N(0,1), N(μ,σ²) or a correlated
//	multivariate normal - and stays deterministic, because every draw
//	flows through the caller-supplied source.
//
// ✨ Key features:
//   - Sampler / VectorSampler: the two sampling contracts of the module
//   - StandardNormal, Normal: scalar gaussians via gonum distuv
//   - MultivariateNormal: x = μ + C·z with a caller-supplied Cholesky-style
//     factor C; includes bulk path transforms for correlated step matrices
//   - optional strictness: WithTriangularCheck() rejects factors that are
//     neither lower- nor upper-triangular at construction time
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mcpath/dist"
//
//	mv, err := dist.NewMultivariateNormal(mu, chol)
//	if err != nil { ... }
//	x := make([]float64, mv.Dim())
//	mv.SampleVector(rng.NewStream(42), x)
//
// Determinism:
//
//	Same source state ⇒ same draws, always. Samplers hold no mutable
//	state after construction and are safe to share across goroutines as
//	long as each goroutine uses its own rand.Source.
package dist
