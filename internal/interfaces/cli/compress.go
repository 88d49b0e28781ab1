package cli

import (
	"github.com/spf13/cobra"

	"github.com/gqlgate/gqlgate-cli/internal/infrastructure/configload"
)

func newCompressCommand(newLogger loggerFunc) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compress <config-file>",
		Short: "Rewrite a configuration in its minimal serialized form",
		Long: `Compress strips redundancy that the blueprint runtime can reconstruct:
HTTP step input/output schemas, GET methods, and false isList/isRequired
flags all disappear from the output. The result is semantically equivalent
to the input and compressing it again changes nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			cfg, err := configload.NewFileLoader(args[0]).Load(cmd.Context())
			if err != nil {
				return err
			}

			compressed := cfg.Compress()
			log.Debug().Str("source", args[0]).Int("types", len(compressed.GraphQL.Types)).Msg("compressed configuration")

			return writeConfig(cmd, compressed, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the result to a file instead of stdout")

	return cmd
}
