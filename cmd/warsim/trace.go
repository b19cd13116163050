package main

import (
	"fmt"
	"time"

	"github.com/lox/warsim/internal/game"
	"github.com/lox/warsim/internal/randutil"
)

// TraceCmd plays one game to completion, printing every event. Useful
// for eyeballing the rules in action; the game is fully mechanical, so
// there is nothing to interact with.
type TraceCmd struct {
	Seed      int64 `default:"0" help:"Game seed (0 = time-based)"`
	ShowState bool  `help:"Print the pile summary after each turn"`
}

func (cmd *TraceCmd) Run() error {
	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	styles := game.NewEventStyles()
	g := game.New(randutil.New(seed))
	fmt.Printf("seed %d\n\n", seed)

	for {
		events, ok := g.Step()
		if !ok {
			break
		}
		fmt.Printf("turn %d\n", g.Turn())
		for _, e := range events {
			fmt.Printf("  %s\n", styles.Describe(e))
		}
		if cmd.ShowState {
			fmt.Printf("  %s\n", g.Summary())
		}
	}

	fmt.Printf("\nfinished in %d turns, player %d wins\n", g.Turn(), g.Winner())
	return nil
}
