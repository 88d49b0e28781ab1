package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gqlgate/gqlgate-cli/internal/core/config"
	"github.com/gqlgate/gqlgate-cli/internal/infrastructure/configload"
)

// MergeFlags holds command-line flags for the merge command.
type MergeFlags struct {
	Output   string
	Compress bool
	Save     bool
}

func newMergeCommand(newLogger loggerFunc) *cobra.Command {
	flags := &MergeFlags{}

	cmd := &cobra.Command{
		Use:   "merge <config-file>...",
		Short: "Merge configuration sources into one effective configuration",
		Long: `Merge folds the given configuration files left to right: each file is
overlaid on the result so far, with the right side winning on conflicts.
GQLGATE_* environment variables are applied last.

Examples:
  gqlgate merge base.json override.json            # print effective config
  gqlgate merge base.json prod.json -o out.json    # write to a file
  gqlgate merge base.json --compress --save        # persist minimal form`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			loader := configload.NewUnifiedLoader(log, configload.NewFileLoaders(args...)...)
			cfg, err := loader.Load(cmd.Context())
			if err != nil {
				return err
			}

			if flags.Compress {
				cfg = cfg.Compress()
			}

			if flags.Save {
				repo := configload.NewRepository()
				if err := repo.Save(cmd.Context(), cfg); err != nil {
					return fmt.Errorf("save effective config: %w", err)
				}
				path, _ := repo.Path()
				log.Info().Str("path", path).Msg("saved effective configuration")
			}

			return writeConfig(cmd, cfg, flags.Output)
		},
	}

	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write the result to a file instead of stdout")
	cmd.Flags().BoolVar(&flags.Compress, "compress", false, "Compress the result to its minimal form")
	cmd.Flags().BoolVar(&flags.Save, "save", false, "Persist the result to the user config directory")

	return cmd
}

// writeConfig emits a config as indented JSON to a file or the command's
// stdout.
func writeConfig(cmd *cobra.Command, cfg config.Config, output string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	if err := os.WriteFile(output, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}
