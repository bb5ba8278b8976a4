// Package cli implements the rsvp command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	configPath  string
	logLevel    string
	showMetrics bool
}

// NewRootCmd builds the rsvp command tree.
func NewRootCmd() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:   "rsvp",
		Short: "Track Yes/No/Maybe responses for an event's guest list",
		Long: `rsvp records RSVP responses keyed by player ID and reports who is
attending along with per-status counts.

Configuration is read from an optional YAML file (--config) and RSVP_*
environment variables, e.g. RSVP_LOGGING_LEVEL=debug.`,
		SilenceUsage: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level (debug, log, info, warn, error)")
	root.PersistentFlags().BoolVar(&flags.showMetrics, "metrics", false, "Print RSVP metrics after the report")

	root.AddCommand(newDemoCmd(&flags))
	root.AddCommand(newApplyCmd(&flags))
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rsvp %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
		},
	}
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
