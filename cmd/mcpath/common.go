package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcpath/internal/config"
	"github.com/katalvlaran/mcpath/internal/store"
	"github.com/katalvlaran/mcpath/mc"
)

// simFlags carries the simulation geometry every subcommand shares. Flag
// values only apply when the user set them; otherwise the config value
// wins (flags > config > defaults).
type simFlags struct {
	paths   int
	steps   int
	seed    uint64
	workers int
}

// register declares the shared flags on cmd.
func (f *simFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.paths, "paths", 0, "number of simulated paths")
	cmd.Flags().IntVar(&f.steps, "steps", 0, "time steps per path")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "run seed (any uint64)")
	cmd.Flags().IntVar(&f.workers, "workers", 1,
		"worker goroutines; 1 = sequential single-stream layout, 0 = all CPUs")
}

// resolve merges flags over the config and validates the merged geometry.
func (f *simFlags) resolve(cmd *cobra.Command, cfg *config.Config) (paths, steps int, seed uint64, workers int, err error) {
	paths = cfg.Simulation.Paths
	steps = cfg.Simulation.Steps
	seed = cfg.Simulation.Seed
	workers = cfg.Simulation.Workers

	if cmd.Flags().Changed("paths") {
		paths = f.paths
	}
	if cmd.Flags().Changed("steps") {
		steps = f.steps
	}
	if cmd.Flags().Changed("seed") {
		seed = f.seed
	}
	if cmd.Flags().Changed("workers") {
		workers = f.workers
	}
	if workers < 0 {
		return 0, 0, 0, 0, fmt.Errorf("workers must be non-negative, got %d", workers)
	}
	return paths, steps, seed, workers, nil
}

// simOptions maps a worker count to simulator options. One worker keeps the
// sequential single-stream draw layout; anything else switches to the
// partitioned per-path-substream layout (still machine-independent).
func simOptions(workers int) []mc.Option {
	if workers == 1 {
		return nil
	}
	return []mc.Option{mc.WithWorkers(workers)}
}

// layoutName names the draw layout for run summaries.
func layoutName(workers int) string {
	if workers == 1 {
		return "sequential"
	}
	if workers == 0 {
		return "partitioned (all CPUs)"
	}
	return fmt.Sprintf("partitioned (%d workers)", workers)
}

// floatFlag resolves an optional float flag against its config fallback.
func floatFlag(cmd *cobra.Command, name string, flagValue, configValue float64) float64 {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configValue
}

// recordRun appends one run to the SQLite store at dsn.
func recordRun(ctx context.Context, dsn string, r store.Run) error {
	s, err := store.Open(dsn)
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.Record(ctx, r)
	if err != nil {
		return err
	}
	fmt.Printf("recorded run %d in %s\n", id, dsn)
	return nil
}
