package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lox/warsim/internal/config"
	"github.com/lox/warsim/internal/histogram"
	"github.com/lox/warsim/internal/simulator"
)

// SimulateCmd runs a batch of games and folds the results into the
// persisted histogram state, the way a long-running data collection
// accumulates across invocations.
type SimulateCmd struct {
	Games    int    `short:"n" default:"0" help:"Number of games to simulate (overrides config)"`
	Workers  int    `default:"0" help:"Parallel workers (0 = all CPUs)"`
	Seed     int64  `default:"0" help:"Run seed (0 = time-based)"`
	Config   string `default:"warsim.hcl" help:"Path to HCL config file"`
	Verbose  bool   `help:"Verbose logging"`
	NoResume bool   `help:"Discard any persisted state instead of merging into it"`
}

func (cmd *SimulateCmd) Run() error {
	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Flags beat config file values.
	if cmd.Games > 0 {
		cfg.Simulation.Games = cmd.Games
	}
	if cmd.Workers > 0 {
		cfg.Simulation.Workers = cmd.Workers
	}
	if cmd.Seed != 0 {
		cfg.Simulation.Seed = cmd.Seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := setupLogger(cfg.LogLevel, cmd.Verbose)
	logger.Info("starting simulation",
		"games", cfg.Simulation.Games,
		"workers", cfg.Simulation.Workers,
		"seed", seed)

	sim := simulator.New(simulator.Config{
		Games:    cfg.Simulation.Games,
		Workers:  cfg.Simulation.Workers,
		Seed:     seed,
		MaxTurns: cfg.Simulation.MaxTurns,
		Logger:   logger,
	})

	results, err := sim.Run(context.Background())
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	state := histogram.New()
	if !cmd.NoResume {
		state = histogram.Load(cfg.Output.StateFile)
		if prior := state.TotalGames(); prior > 0 {
			logger.Info("merging into persisted state", "prior_games", prior)
		}
	}
	state.Merge(results)

	if err := state.Save(cfg.Output.StateFile); err != nil {
		return err
	}
	if err := state.SaveCSV(cfg.Output.CSVFile); err != nil {
		return err
	}
	logger.Info("state saved",
		"state_file", cfg.Output.StateFile,
		"csv_file", cfg.Output.CSVFile,
		"total_games", state.TotalGames())

	printSummary(state)
	return nil
}

func printSummary(h *histogram.Histogram) {
	fmt.Printf("\nGames recorded: %d\n", h.TotalGames())
	fmt.Printf("Game length: mean %.1f, median %.0f, stddev %.1f turns\n",
		h.Mean(), h.Median(), h.StdDev())
	fmt.Printf("Range: %d to %d turns\n", h.Min(), h.Max())
	fmt.Printf("Percentiles: P5=%.0f, P25=%.0f, P75=%.0f, P95=%.0f\n",
		h.Percentile(0.05), h.Percentile(0.25), h.Percentile(0.75), h.Percentile(0.95))
}
