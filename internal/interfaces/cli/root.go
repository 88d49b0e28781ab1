// Package cli wires the gqlgate commands: scaffolding, merging, compressing,
// checking and inspecting gateway configurations.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gqlgate/gqlgate-cli/internal/infrastructure/logging"
)

// loggerFunc builds the command logger after flags have been parsed.
type loggerFunc func() zerolog.Logger

// Execute runs the root command and exits non-zero on failure.
func Execute(version, commit, date string) {
	if err := NewRootCommand(version, commit, date).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand creates the gqlgate root command with all subcommands.
func NewRootCommand(version, commit, date string) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "gqlgate",
		Short: "gqlgate - GraphQL gateway configuration toolkit",
		Long: `gqlgate manages the configuration of a GraphQL gateway: a schema of types,
fields and arguments together with per-field resolution pipelines.

Configurations layer: later sources merge onto earlier ones into a single
effective configuration, which can be compressed to its minimal serialized
form before being handed to the blueprint runtime.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	newLogger := func() zerolog.Logger {
		return logging.New(os.Stderr, verbose)
	}

	rootCmd.AddCommand(
		newInitCommand(newLogger),
		newMergeCommand(newLogger),
		newCompressCommand(newLogger),
		newCheckCommand(newLogger),
		newInspectCommand(newLogger),
	)

	return rootCmd
}
