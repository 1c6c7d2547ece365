package main

import (
	"errors"
	"os"

	"github.com/fatih/color"

	"csfuse/fusion"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps the error taxonomy onto the CLI contract: usage problems
// exit 1, everything else (parse failure, IO failure) exits 2.
func exitCode(err error) int {
	var usage *fusion.UsageError
	if errors.Is(err, fusion.ErrInputNotFound) || errors.As(err, &usage) {
		return 1
	}
	return 2
}
