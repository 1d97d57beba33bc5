package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mcpath/gbm"
	"github.com/katalvlaran/mcpath/internal/store"
	"github.com/katalvlaran/mcpath/mc"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate univariate GBM paths and summarize the terminals",
	RunE:  runSimulate,
}

var (
	simulateSim     simFlags
	simulateSpot    float64
	simulateDrift   float64
	simulateVola    float64
	simulateHorizon float64
	simulateRecord  bool
)

func init() {
	simulateSim.register(simulateCmd)
	simulateCmd.Flags().Float64Var(&simulateSpot, "spot", 100, "initial price")
	simulateCmd.Flags().Float64Var(&simulateDrift, "drift", 0.05, "annual drift")
	simulateCmd.Flags().Float64Var(&simulateVola, "vola", 0.2, "annual volatility")
	simulateCmd.Flags().Float64Var(&simulateHorizon, "horizon", 1, "horizon in years")
	simulateCmd.Flags().BoolVar(&simulateRecord, "record", false,
		"append the run to the SQLite store")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	paths, steps, seed, workers, err := simulateSim.resolve(cmd, cfg)
	if err != nil {
		return err
	}
	spot := floatFlag(cmd, "spot", simulateSpot, cfg.Option.Spot)
	vola := floatFlag(cmd, "vola", simulateVola, cfg.Option.Vola)
	horizon := floatFlag(cmd, "horizon", simulateHorizon, cfg.Option.TimeToExpiry)
	drift := simulateDrift

	if steps < 1 {
		return fmt.Errorf("simulate: need at least one step, got %d", steps)
	}

	sim, err := mc.NewPathSimulator(paths, steps, simOptions(workers)...)
	if err != nil {
		return err
	}
	model, err := gbm.New(spot, drift, vola, horizon/float64(steps))
	if err != nil {
		return err
	}

	start := time.Now()
	result := sim.SimulatePaths(seed, model)
	elapsed := time.Since(start)

	meanTerminal, ok := mc.NewPathEvaluator(result).EvaluateAverage(func(p mc.Path) (float64, bool) {
		return p.Terminal(), true
	})
	if !ok {
		fmt.Println("no paths simulated")
		return nil
	}

	terminals := make([]float64, len(result))
	logReturns := make([]float64, len(result))
	for i, p := range result {
		terminals[i] = p.Terminal()
		logReturns[i] = math.Log(p.Terminal() / spot)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Metric", "Value")
	table.Append("Paths x Steps", fmt.Sprintf("%d x %d", paths, steps))
	table.Append("Seed / Layout", fmt.Sprintf("%d / %s", seed, layoutName(workers)))
	table.Append("Model", fmt.Sprintf("GBM s0=%g drift=%g vola=%g T=%g", spot, drift, vola, horizon))
	table.Append("Mean terminal", fmt.Sprintf("%.4f", meanTerminal))
	table.Append("Min terminal", fmt.Sprintf("%.4f", floats.Min(terminals)))
	table.Append("Max terminal", fmt.Sprintf("%.4f", floats.Max(terminals)))
	table.Append("Mean log-return", fmt.Sprintf("%.6f", stat.Mean(logReturns, nil)))
	table.Append("Std log-return", fmt.Sprintf("%.6f", stat.StdDev(logReturns, nil)))
	table.Append("Elapsed", elapsed.Round(time.Millisecond).String())
	table.Render()

	if simulateRecord {
		return recordRun(cmd.Context(), cfg.Storage.DSN, store.Run{
			Kind:     store.KindSimulate,
			Paths:    paths,
			Steps:    steps,
			Seed:     seed,
			Params:   fmt.Sprintf("s0=%g drift=%g vola=%g T=%g", spot, drift, vola, horizon),
			Estimate: meanTerminal,
			Elapsed:  elapsed,
		})
	}
	return nil
}
