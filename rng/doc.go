// Package rng is the single source of random streams for mcpath.
//
// 🚀 Why a dedicated package?
//
//	Every stochastic component in this module (samplers, process models,
//	the path simulator) consumes randomness through an explicit
//	rand.Source. There is no ambient or time-seeded generator anywhere:
//	a run is fully described by its uint64 seed, and the same seed
//	always reproduces the same result bit for bit.
//
// ✨ Key features:
//   - NewStream: one deterministic PCG stream per seed (every uint64 is
//     a valid, distinct seed - including 0)
//   - DeriveSeed: SplitMix64 mixing of a parent seed and a stream id,
//     for independent per-worker or per-path substreams
//   - NewSubStream: convenience composition of the two
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mcpath/rng"
//
//	src := rng.NewStream(42)        // sequential run
//	sub := rng.NewSubStream(42, 7)  // substream #7 of the same run
//
// Concurrency:
//
//	A *rand.Rand is NOT goroutine-safe. Never share one across
//	goroutines; derive one substream per goroutine instead.
package rng
