package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcpath/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs, newest first",
	RunE:  runRuns,
}

var runsLimit int

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum runs to list")
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := store.Open(cfg.Storage.DSN)
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.Recent(cmd.Context(), runsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Printf("no runs recorded in %s\n", cfg.Storage.DSN)
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "When (UTC)", "Kind", "Paths", "Steps", "Seed", "Params", "Estimate", "ms")
	for _, r := range runs {
		table.Append(
			fmt.Sprintf("%d", r.ID),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Kind,
			fmt.Sprintf("%d", r.Paths),
			fmt.Sprintf("%d", r.Steps),
			fmt.Sprintf("%d", r.Seed),
			r.Params,
			fmt.Sprintf("%.4f", r.Estimate),
			fmt.Sprintf("%.1f", r.Elapsed.Seconds()*1000),
		)
	}
	table.Render()
	return nil
}
