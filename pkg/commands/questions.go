package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamsfx/teamsapp-cli/pkg/question"
	"github.com/teamsfx/teamsapp-cli/pkg/tui"
)

var flows = map[string]func() []question.Step{
	"create":     question.CreateFlow,
	"env":        question.EnvFlow,
	"select-env": question.SelectEnvFlow,
}

func flowNames() []string {
	names := make([]string, 0, len(flows))
	for name := range flows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newQuestionsCmd creates the questions subcommand
func newQuestionsCmd(deps *Deps) *cobra.Command {
	var flow, format string

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print a question flow as a schema document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			build, ok := flows[flow]
			if !ok {
				return fmt.Errorf("unknown flow %q (available: %s)", flow, strings.Join(flowNames(), ", "))
			}
			s := question.NewSchema(build())

			var data []byte
			var err error
			switch format {
			case "yaml":
				data, err = question.EncodeSchema(s)
			case "json":
				data, err = json.MarshalIndent(s, "", "  ")
				data = append(data, '\n')
			default:
				return fmt.Errorf("unknown format %q (available: yaml, json)", format)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&flow, "flow", "create", "Flow to print ("+strings.Join(flowNames(), ", ")+")")
	cmd.Flags().StringVarP(&format, "output", "o", "yaml", "Output format (yaml, json)")

	cmd.AddCommand(newQuestionsCheckCmd(deps), newQuestionsRegistryCmd(deps))
	return cmd
}

func newQuestionsCheckCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a schema document, upgrading older versions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read schema: %w", err)
			}
			s, err := question.LoadSchema(data, deps.Registry)
			if err != nil {
				return err
			}
			msg := fmt.Sprintf("Schema is valid: %d questions (version %d).", len(s.Questions), s.Version)
			fmt.Fprintln(cmd.OutOrStdout(), tui.Success(msg))
			return nil
		},
	}
}

func newQuestionsRegistryCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "registry",
		Short: "List the validators and option resolvers a schema may reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Validators:")
			for _, name := range deps.Registry.ValidatorNames() {
				fmt.Fprintf(out, "  - %s\n", name)
			}
			fmt.Fprintln(out, "Resolvers:")
			for _, name := range deps.Registry.ResolverNames() {
				fmt.Fprintf(out, "  - %s\n", name)
			}
			return nil
		},
	}
}
