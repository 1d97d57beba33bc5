package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mcpath/gbm"
	"github.com/katalvlaran/mcpath/internal/chunkio"
	"github.com/katalvlaran/mcpath/mc"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Simulate paths and write them as CRC-framed XOR chunks",
	RunE:  runExport,
}

var (
	exportSim     simFlags
	exportSpot    float64
	exportDrift   float64
	exportVola    float64
	exportHorizon float64
	exportOut     string
	exportCheck   bool
)

func init() {
	exportSim.register(exportCmd)
	exportCmd.Flags().Float64Var(&exportSpot, "spot", 100, "initial price")
	exportCmd.Flags().Float64Var(&exportDrift, "drift", 0.05, "annual drift")
	exportCmd.Flags().Float64Var(&exportVola, "vola", 0.2, "annual volatility")
	exportCmd.Flags().Float64Var(&exportHorizon, "horizon", 1, "horizon in years")
	exportCmd.Flags().StringVar(&exportOut, "out", "",
		"output file (default <export dir>/paths-<seed>.mcpk)")
	exportCmd.Flags().BoolVar(&exportCheck, "check", false,
		"re-read the file and verify every chunk against the simulated paths")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	paths, steps, seed, workers, err := exportSim.resolve(cmd, cfg)
	if err != nil {
		return err
	}
	spot := floatFlag(cmd, "spot", exportSpot, cfg.Option.Spot)
	vola := floatFlag(cmd, "vola", exportVola, cfg.Option.Vola)
	horizon := floatFlag(cmd, "horizon", exportHorizon, cfg.Option.TimeToExpiry)

	if steps < 1 {
		return fmt.Errorf("export: need at least one step, got %d", steps)
	}

	sim, err := mc.NewPathSimulator(paths, steps, simOptions(workers)...)
	if err != nil {
		return err
	}
	model, err := gbm.New(spot, exportDrift, vola, horizon/float64(steps))
	if err != nil {
		return err
	}

	start := time.Now()
	result := sim.SimulatePaths(seed, model)
	series := make([][]float64, len(result))
	for i, p := range result {
		series[i] = p
	}

	name := exportOut
	if name == "" {
		name = filepath.Join(cfg.Export.Dir, fmt.Sprintf("paths-%d.mcpk", seed))
	}
	if err := chunkio.WriteFile(name, series); err != nil {
		return err
	}
	elapsed := time.Since(start)

	info, err := os.Stat(name)
	if err != nil {
		return err
	}
	rawBytes := int64(paths) * int64(steps+1) * 8
	var pct float64
	if rawBytes > 0 {
		pct = 100 * float64(info.Size()) / float64(rawBytes)
	}
	fmt.Printf("wrote %s: %d paths x %d samples, %d bytes (raw %d, %.1f%%), %s\n",
		name, paths, steps+1, info.Size(), rawBytes, pct,
		elapsed.Round(time.Millisecond))

	if !exportCheck {
		return nil
	}

	got, err := chunkio.ReadFile(name)
	if err != nil {
		return fmt.Errorf("export: verify %s: %w", name, err)
	}
	if len(got) != len(series) {
		return fmt.Errorf("export: verify %s: %d chunks, want %d", name, len(got), len(series))
	}
	for i := range got {
		if !floats.Equal(got[i], series[i]) {
			return fmt.Errorf("export: verify %s: chunk %d differs", name, i)
		}
	}
	fmt.Printf("verified %d chunks\n", len(got))
	return nil
}
