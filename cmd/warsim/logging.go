package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// setupLogger configures a logger at the named level, with a verbose
// flag override down to debug.
func setupLogger(level string, verbose bool) *log.Logger {
	parsed := log.InfoLevel
	switch level {
	case "debug":
		parsed = log.DebugLevel
	case "info":
		parsed = log.InfoLevel
	case "warn":
		parsed = log.WarnLevel
	case "error":
		parsed = log.ErrorLevel
	}
	if verbose {
		parsed = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: parsed})
}
