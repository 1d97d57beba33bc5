// Package mcpath is a Monte Carlo engine for path-dependent financial
// payoffs — seeded random streams, correlated process models, and a
// simulator/evaluator pair that turns paths into price estimates.
//
// 🚀 What is mcpath?
//
//	A deterministic, reproducibility-first simulation toolkit:
//		• Seeded streams: PCG generators + SplitMix64 substream derivation
//		• Samplers: standard/general normal, Cholesky-correlated multivariate
//		• Process models: exact univariate GBM, Euler multivariate GBM
//		• Simulator: three scalar modes, vector paths, parallel partitioning
//		• Evaluator: payoff averaging with a fixed denominator rule
//		• Pricers: Black-Scholes & Black-76 closed forms, MC European & basket
//
// ✨ Why choose mcpath?
//
//   - Deterministic by contract – a seed fully fixes every draw, in any mode
//   - Worker-count independent – parallel runs reproduce bit-for-bit anywhere
//   - gonum-native – paths expose mat.Dense views, no copying
//   - Honest errors – typed sentinels at construction, panics only for misuse
//
// Everything is organized under focused packages:
//
//	rng/     — seeded streams & deterministic substream derivation
//	dist/    — scalar & vector samplers, Cholesky transform
//	gbm/     — geometric Brownian motion, univariate & correlated
//	mc/      — path simulator, vector paths, payoff evaluator
//	pricing/ — analytic & Monte Carlo option pricers
//	risk/    — Sharpe & information ratios
//	cmd/     — the mcpath CLI: simulate, price, export, runs
//
// Quick sketch:
//
//	seed ──► rng ──► dist ──► gbm ──► mc ──► estimate
//	                                   │
//	                            pricing/risk
//
// Start with examples/ for runnable scenarios, or the mc package docs for
// the simulation contracts.
//
//	go get github.com/katalvlaran/mcpath
package mcpath
