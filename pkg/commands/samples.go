package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teamsfx/teamsapp-cli/pkg/config"
	"github.com/teamsfx/teamsapp-cli/pkg/question"
	"github.com/teamsfx/teamsapp-cli/pkg/tui"
)

// newSamplesCmd creates the samples subcommand
func newSamplesCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List available samples",
		Long:  `List the samples that "new --sample" can start from.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !deps.Flags.Enabled(config.FlagSamples) {
				fmt.Fprintln(out, tui.Warning("Samples are disabled."))
				return nil
			}

			catalog := question.SampleCatalog()
			fmt.Fprintln(out, tui.TitleStyle.Render(fmt.Sprintf("Found %d samples:", len(catalog))))
			for _, s := range catalog {
				fmt.Fprintf(out, "  - %s: %s\n", tui.InfoStyle.Render(s.ID), s.Label)
				fmt.Fprintf(out, "      %s\n", s.Detail)
			}
			return nil
		},
	}
}
