package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate games of War and aggregate a game-length histogram"`
	Show     ShowCmd          `cmd:"" help:"Show the persisted histogram and its statistics"`
	Trace    TraceCmd         `cmd:"" help:"Play a single seeded game, printing every event"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("warsim"),
		kong.Description("Simulator for the card game War: how many turns does a game take?"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
