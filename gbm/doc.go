// Package gbm implements geometric Brownian motion process models for the
// path simulator: a univariate model with the exact log-normal transition and
// a correlated multivariate model with the Euler-Maruyama scheme.
//
// 🚀 The processes
//
//	Univariate SDE:   dS = μ·S·dt + σ·S·dW
//	Multivariate SDE: dSᵢ = μᵢ·Sᵢ·dt + Sᵢ·(C·dW)ᵢ, with C the factor of the
//	instantaneous covariance (Cov = C·Cᵀ).
//
// ✨ Discretization, stated once:
//   - GBM steps with the CLOSED-FORM transition
//     S(t+Δt) = S(t)·exp((μ−σ²/2)Δt + σ√Δt·z),
//     so univariate paths carry no discretization bias at any Δt.
//   - MultiGBM steps with EULER-MARUYAMA
//     S(t+Δt) = S(t) + S(t)⊙(Δt·μ + √Δt·C·z),
//     the standard scheme for correlated systems; bias vanishes as Δt→0.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mcpath/gbm"
//
//	m, err := gbm.New(300, 0.03, 0.15, 1.0/252)
//	if err != nil { ... }
//	path := m.Path(zs) // len(zs)+1 values, path[0] == 300
//
// Both models are immutable after construction and safe to share across
// goroutines; per-call state lives entirely in caller-supplied buffers.
//
// Performance:
//
//   - GBM.Step: one exp, zero allocations.
//   - MultiGBM.PathDense: one GEMM for the whole path's diffusion terms.
package gbm
