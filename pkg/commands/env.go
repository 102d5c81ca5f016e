package commands

import (
	"github.com/spf13/cobra"

	"github.com/teamsfx/teamsapp-cli/pkg/question"
)

// newEnvCmd creates the env command group
func newEnvCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Manage project environments",
	}
	cmd.AddCommand(newEnvAddCmd(deps), newEnvSelectCmd(deps))
	return cmd
}

func newEnvAddCmd(deps *Deps) *cobra.Command {
	var name string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inputs := question.Inputs{}
			if name != "" {
				inputs[question.EnvName] = name
			}
			return runFlow(cmd, deps, "env-add", question.EnvFlow(), inputs, interactive)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Environment name")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", true, "Prompt for missing answers")
	return cmd
}

func newEnvSelectCmd(deps *Deps) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select an existing environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFlow(cmd, deps, "env-select", question.SelectEnvFlow(), question.Inputs{}, interactive)
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", true, "Prompt for missing answers")
	return cmd
}

func runFlow(cmd *cobra.Command, deps *Deps, event string, steps []question.Step, inputs question.Inputs, interactive bool) error {
	r, err := deps.newRunner(interactive)
	if err != nil {
		return err
	}
	if err := r.Run(cmd.Context(), steps, inputs); err != nil {
		deps.Reporter.SendError(event, err, nil)
		return err
	}
	deps.Reporter.SendEvent(event, nil)
	return writeAnswers(cmd.OutOrStdout(), inputs)
}
