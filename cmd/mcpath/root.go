package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcpath/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "mcpath",
	Short: "Monte Carlo path simulation and option pricing",
	Long: `mcpath drives the simulation engine from the command line: generate
GBM scenario paths, price European and basket options against their
closed forms, export paths as compressed chunks and keep a record of
past runs.

Settings resolve in three layers: flags win over the config file, the
config file wins over built-in defaults. MCPATH_* environment variables
(and a .env file) override the config file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"YAML config file (optional)")
}

// loadConfig resolves the configuration for one invocation.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default()
	}
	return config.Load(configPath)
}
