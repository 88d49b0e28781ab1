package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gqlgate/gqlgate-cli/internal/core/ports"
	"github.com/gqlgate/gqlgate-cli/internal/infrastructure/configload"
)

var (
	checkOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	checkFailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func newCheckCommand(newLogger loggerFunc) *cobra.Command {
	return newCheckCommandWith(newLogger, nil)
}

// newCheckCommandWith allows injecting a blueprint transcoder; tests use a
// stub, and a nil transcoder limits the check to decoding.
func newCheckCommandWith(newLogger loggerFunc, transcoder ports.Transcoder) *cobra.Command {
	var encodeSteps bool

	cmd := &cobra.Command{
		Use:   "check <config-file>...",
		Short: "Validate that configuration sources decode cleanly",
		Long: `Check decodes each source and, when a blueprint transcoder is available,
runs the result through it. Failures name the offending file and the field
path inside it; a failing source never aborts the remaining ones.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			out := cmd.OutOrStdout()
			failed := 0

			for _, path := range args {
				cfg, err := configload.NewFileLoader(path).Load(cmd.Context())
				if err != nil {
					failed++
					fmt.Fprintln(out, checkFailStyle.Render(fmt.Sprintf("✗ %s: %v", path, err)))
					continue
				}

				if transcoder != nil {
					if _, err := transcoder.ToBlueprint(cmd.Context(), cfg, encodeSteps); err != nil {
						failed++
						var terr *ports.TranscodeError
						if errors.As(err, &terr) {
							log.Debug().Str("source", path).Str("reason", terr.Reason).Msg("transcoding rejected configuration")
						}
						fmt.Fprintln(out, checkFailStyle.Render(fmt.Sprintf("✗ %s: %v", path, err)))
						continue
					}
				}

				fmt.Fprintln(out, checkOKStyle.Render(fmt.Sprintf("✓ %s (version %d, %d types)",
					path, cfg.Version, len(cfg.GraphQL.Types))))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d configuration sources failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&encodeSteps, "encode-steps", false, "Ask the transcoder to encode resolution steps into the blueprint")

	return cmd
}
