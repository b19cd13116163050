// Package simulator runs many independent games of War and aggregates
// how long each one took into a histogram. Games share no state, so the
// work fans out across workers and the per-worker histograms merge by
// addition at the end.
package simulator

import (
	"context"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/warsim/internal/game"
	"github.com/lox/warsim/internal/histogram"
	"github.com/lox/warsim/internal/randutil"
)

// Config holds configuration for a simulation run
type Config struct {
	// Games is the number of games to simulate.
	Games int

	// Workers is the number of parallel workers. Defaults to the number
	// of CPUs.
	Workers int

	// Seed is the run seed. Per-game seeds derive from it and the game
	// index, so a run is reproducible regardless of worker count.
	Seed int64

	// MaxTurns abandons a game past this many turns as a safety valve.
	// 0 means unlimited.
	MaxTurns int

	// ProgressInterval is how often progress is reported. Defaults to
	// 5 seconds.
	ProgressInterval time.Duration

	Logger *log.Logger
}

// Simulator runs War game simulations
type Simulator struct {
	config Config
	clock  quartz.Clock
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.ProgressInterval <= 0 {
		config.ProgressInterval = 5 * time.Second
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config, clock: quartz.NewReal()}
}

// Run simulates the configured number of games and returns the merged
// histogram of game lengths.
func (s *Simulator) Run(ctx context.Context) (*histogram.Histogram, error) {
	progress := newProgressReporter(s.clock, s.config.Logger, s.config.ProgressInterval, s.config.Games)
	progress.Start()
	defer progress.Stop()

	eg, ctx := errgroup.WithContext(ctx)
	results := make(chan *histogram.Histogram, s.config.Workers)

	// Games are striped across workers by index; seeds depend only on
	// the index, so the merged result is scheduling-independent.
	for w := 0; w < s.config.Workers; w++ {
		first := w
		eg.Go(func() error {
			local := histogram.New()
			for i := first; i < s.config.Games; i += s.config.Workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				if turns, ok := s.playGame(i); ok {
					local.Observe(turns)
				}
				progress.GameDone()
			}
			select {
			case results <- local:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		eg.Wait()
		close(results)
	}()

	merged := histogram.New()
	for local := range results {
		merged.Merge(local)
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	progress.Finish()
	return merged, nil
}

// playGame runs game number index to completion and returns how many
// turns it took. The second return is false when the game was abandoned
// at the turn cap.
func (s *Simulator) playGame(index int) (int, bool) {
	rng := randutil.New(randutil.GameSeed(s.config.Seed, index))
	g := game.New(rng)
	for {
		if _, ok := g.Step(); !ok {
			return g.Turn(), true
		}
		if s.config.MaxTurns > 0 && g.Turn() >= s.config.MaxTurns && !g.Over() {
			s.config.Logger.Warn("abandoning runaway game",
				"game", index, "turns", g.Turn(), "state", g.Summary())
			return 0, false
		}
	}
}
