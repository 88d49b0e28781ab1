package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newInitCommand(newLogger loggerFunc) *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter gateway configuration",
		Long: `Init writes an example gateway configuration demonstrating the schema
registry and all three resolution step kinds (http, const, objectPath).

Examples:
  gqlgate init                      # write gateway.json
  gqlgate init -o configs/dev.json  # write somewhere else`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			if _, err := os.Stat(output); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", output)
			}

			if err := os.WriteFile(output, []byte(StarterConfigJSON()), 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			log.Info().Str("path", output).Msg("wrote starter gateway configuration")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "gateway.json", "Destination path for the starter configuration")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
