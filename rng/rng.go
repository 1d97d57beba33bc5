// Package rng - deterministic stream construction shared by all stochastic code.
//
// This file centralizes random generation for samplers, process models and the
// path simulator.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms and runs.
//   - Encapsulation: a single stream factory; no time-based sources hidden anywhere.
//   - Safety: no panics, no logging; pure functions only.
//   - Performance: O(1) construction, zero allocations beyond the generator itself.
//
// Concurrency:
//   - rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use NewSubStream to create independent streams for parallel workers.
package rng

import "golang.org/x/exp/rand"

// NewStream returns the deterministic generator for the given seed.
// Every uint64 is a valid seed and yields its own stream; in particular
// seed 0 is an ordinary seed, not a request for a default.
//
// Complexity: O(1).
func NewStream(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Parallel simulation partitions need one independent substream per unit of
//     work, reproducible regardless of how many workers execute them.
//   - A SplitMix64-style avalanche mix eliminates correlations between
//     neighbouring stream ids.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer. They provide
//     strong bit diffusion; small changes in inputs produce large,
//     well-distributed output changes.
//
// Complexity: O(1).
func DeriveSeed(parent, stream uint64) uint64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	var x uint64
	x = parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// NewSubStream returns the generator for substream `stream` of run `parent`.
// Equivalent to NewStream(DeriveSeed(parent, stream)); the identity matters,
// callers may precompute sub-seeds and build streams later.
//
// Complexity: O(1).
func NewSubStream(parent, stream uint64) *rand.Rand {
	return NewStream(DeriveSeed(parent, stream))
}
