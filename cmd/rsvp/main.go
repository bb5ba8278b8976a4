// Package main is the entry point for the rsvp command.
package main

import (
	"os"

	"github.com/phrazzld/rsvp-tracker/internal/cli"
)

// Set via ldflags, e.g. -ldflags "-X main.version=v1.0.0".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
