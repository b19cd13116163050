// Package config loads the warsim driver configuration from an HCL
// file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete driver configuration
type Config struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	Output     OutputSettings     `hcl:"output,block"`
	LogLevel   string             `hcl:"log_level,optional"`
}

// SimulationSettings controls the simulation run
type SimulationSettings struct {
	Games    int   `hcl:"games,optional"`
	Workers  int   `hcl:"workers,optional"`
	Seed     int64 `hcl:"seed,optional"`
	MaxTurns int   `hcl:"max_turns,optional"`
}

// OutputSettings controls where histogram state is written
type OutputSettings struct {
	StateFile string `hcl:"state_file,optional"`
	CSVFile   string `hcl:"csv_file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Simulation: SimulationSettings{
			Games: 100000,
		},
		Output: OutputSettings{
			StateFile: "state.msgp",
			CSVFile:   "state.csv",
		},
		LogLevel: "info",
	}
}

// Load reads configuration from an HCL file. A missing file returns the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if cfg.Simulation.Games == 0 {
		cfg.Simulation.Games = 100000
	}
	if cfg.Output.StateFile == "" {
		cfg.Output.StateFile = "state.msgp"
	}
	if cfg.Output.CSVFile == "" {
		cfg.Output.CSVFile = "state.csv"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Simulation.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Simulation.Games)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", c.Simulation.Workers)
	}
	if c.Simulation.MaxTurns < 0 {
		return fmt.Errorf("max_turns cannot be negative, got %d", c.Simulation.MaxTurns)
	}
	if c.Output.StateFile == "" {
		return fmt.Errorf("state_file cannot be empty")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	return nil
}
