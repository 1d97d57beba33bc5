// Package config loads the CLI configuration from YAML with environment
// overrides.
//
// Precedence, lowest to highest: built-in defaults, the YAML file, then
// MCPATH_* environment variables (a .env file in the working directory is
// honoured via godotenv).
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the complete CLI configuration.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Option     OptionConfig     `yaml:"option"`
	Basket     BasketConfig     `yaml:"basket"`
	Storage    StorageConfig    `yaml:"storage"`
	Export     ExportConfig     `yaml:"export"`
}

// SimulationConfig controls the Monte Carlo geometry.
type SimulationConfig struct {
	Paths   int    `yaml:"paths"`
	Steps   int    `yaml:"steps"`
	Seed    uint64 `yaml:"seed"`
	Workers int    `yaml:"workers"` // 0 = one worker per CPU
}

// OptionConfig carries the default European option parameters; command-line
// flags override them per invocation.
type OptionConfig struct {
	Spot         float64 `yaml:"spot"`
	Strike       float64 `yaml:"strike"`
	TimeToExpiry float64 `yaml:"time_to_expiry"` // years
	RiskFree     float64 `yaml:"risk_free"`
	Vola         float64 `yaml:"vola"`
}

// BasketConfig describes the correlated basket scenario: one entry per
// asset plus the full correlation matrix, row per asset.
type BasketConfig struct {
	Spots        []float64   `yaml:"spots"`
	Volas        []float64   `yaml:"volas"`
	Weights      []float64   `yaml:"weights"`
	Correlations [][]float64 `yaml:"correlations"`
	Strike       float64     `yaml:"strike"`
	TimeToExpiry float64     `yaml:"time_to_expiry"`
	RiskFree     float64     `yaml:"risk_free"`
}

// StorageConfig controls where run records are persisted.
type StorageConfig struct {
	DSN string `yaml:"dsn"` // SQLite file path, or ":memory:"
}

// ExportConfig controls the chunked path export.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// Load reads the YAML file at path and applies .env plus MCPATH_* overrides.
// Values absent from every source fall back to the defaults.
func Load(path string) (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	setDefaults(&cfg)

	return &cfg, nil
}

// Default returns the configuration used when no file is given: .env and
// MCPATH_* overrides over the built-in defaults.
func Default() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	setDefaults(&cfg)

	return &cfg, nil
}

// applyEnvOverrides overwrites fields from MCPATH_* variables when present.
// Malformed numeric values are reported, not ignored.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("MCPATH_PATHS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config.Load: parse MCPATH_PATHS: %w", err)
		}
		cfg.Simulation.Paths = n
	}
	if v := os.Getenv("MCPATH_STEPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config.Load: parse MCPATH_STEPS: %w", err)
		}
		cfg.Simulation.Steps = n
	}
	if v := os.Getenv("MCPATH_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config.Load: parse MCPATH_SEED: %w", err)
		}
		cfg.Simulation.Seed = n
	}
	if v := os.Getenv("MCPATH_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config.Load: parse MCPATH_WORKERS: %w", err)
		}
		cfg.Simulation.Workers = n
	}
	if v := os.Getenv("MCPATH_DSN"); v != "" {
		cfg.Storage.DSN = v
	}
	if v := os.Getenv("MCPATH_EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}
	return nil
}

// setDefaults fills every field that no source provided.
func setDefaults(cfg *Config) {
	if cfg.Simulation.Paths <= 0 {
		cfg.Simulation.Paths = 10_000
	}
	if cfg.Simulation.Steps <= 0 {
		cfg.Simulation.Steps = 252 // one trading year of daily steps
	}
	if cfg.Simulation.Workers < 0 {
		cfg.Simulation.Workers = 0
	}
	if cfg.Option.Spot <= 0 {
		cfg.Option.Spot = 100
	}
	if cfg.Option.Strike <= 0 {
		cfg.Option.Strike = 100
	}
	if cfg.Option.TimeToExpiry <= 0 {
		cfg.Option.TimeToExpiry = 1
	}
	if cfg.Option.Vola <= 0 {
		cfg.Option.Vola = 0.2
	}
	if len(cfg.Basket.Spots) == 0 {
		cfg.Basket = BasketConfig{
			Spots:   []float64{100, 120, 80},
			Volas:   []float64{0.2, 0.3, 0.25},
			Weights: []float64{0.4, 0.35, 0.25},
			Correlations: [][]float64{
				{1.0, 0.5, 0.2},
				{0.5, 1.0, 0.4},
				{0.2, 0.4, 1.0},
			},
			Strike:       100,
			TimeToExpiry: 1,
			RiskFree:     0.02,
		}
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "mcpath.db"
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "export"
	}
}
