// Package main provides the cssmod CLI tool for migrating components to CSS Modules.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		printError(os.Stderr, err, getBoolWithFallback("verbose", "verbose", false))
		os.Exit(1)
	}
}

// printError reports a fatal error; verbose mode includes the stack trace.
func printError(w io.Writer, err error, verbose bool) {
	if verbose {
		fmt.Fprintf(w, "Error: %+v\n", err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// newLogger builds the stderr console logger stored in the command context.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
