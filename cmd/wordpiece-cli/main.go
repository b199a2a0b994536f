// Package main provides the entry point for the wordpiece-cli tool, a thin
// command-line surface around the hftokenizer library.
package main

import (
	"fmt"
	"os"

	"github.com/prabhuomkar/libtokenizers/cmd/wordpiece-cli/cmd"
)

// Build-time variables (set via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	cmd.SetVersionInfo(Version, Commit, BuildTime)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
