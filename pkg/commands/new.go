package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teamsfx/teamsapp-cli/pkg/config"
	"github.com/teamsfx/teamsapp-cli/pkg/question"
)

type newOptions struct {
	folder      string
	appName     string
	sample      string
	answers     string
	schema      string
	interactive bool
}

// newNewCmd creates the new subcommand
func newNewCmd(deps *Deps) *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new Teams app",
		Long: `Walk through the new-project wizard and print the collected answers as YAML.

Answers can be supplied up front with flags or an --answers file; only the
remaining questions are asked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNew(cmd, deps, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.folder, "folder", "f", "", "Workspace folder for the new app")
	cmd.Flags().StringVarP(&opts.appName, "app-name", "n", "", "Application name")
	cmd.Flags().StringVarP(&opts.sample, "sample", "s", "", "Start from the sample with this id")
	cmd.Flags().StringVar(&opts.answers, "answers", "", "YAML file with pre-filled answers")
	cmd.Flags().StringVar(&opts.schema, "schema", "", "Question schema file to use instead of the built-in flow")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", true, "Prompt for missing answers")

	return cmd
}

func runNew(cmd *cobra.Command, deps *Deps, opts *newOptions) error {
	inputs := question.Inputs{}
	if opts.answers != "" {
		loaded, err := ReadAnswers(opts.answers)
		if err != nil {
			return err
		}
		inputs = loaded
	}
	if opts.sample != "" {
		if !deps.Flags.Enabled(config.FlagSamples) {
			return fmt.Errorf("samples are disabled (set %s=true to enable)", config.FlagEnvKey(config.FlagSamples))
		}
		inputs[question.CreateFromScratch] = question.ScratchOptionNo.ID
		inputs[question.Samples] = opts.sample
	}
	if opts.folder != "" {
		inputs[question.Folder] = opts.folder
	}
	if opts.appName != "" {
		inputs[question.AppName] = opts.appName
	}

	steps, err := createSteps(deps, opts.schema)
	if err != nil {
		return err
	}

	r, err := deps.newRunner(opts.interactive)
	if err != nil {
		return err
	}
	if err := r.Run(cmd.Context(), steps, inputs); err != nil {
		deps.Reporter.SendError("new", err, nil)
		return err
	}

	deps.Logger.Info("new project answers collected", "answers", len(inputs))
	deps.Reporter.SendEvent("new", map[string]string{
		string(question.CreateFromScratch): inputs.String(question.CreateFromScratch),
		string(question.Samples):           inputs.String(question.Samples),
	})
	return writeAnswers(cmd.OutOrStdout(), inputs)
}

// createSteps returns the new-project flow, from a schema file if given.
// With samples disabled the scratch question keeps only its first option.
func createSteps(deps *Deps, schemaPath string) ([]question.Step, error) {
	steps := question.CreateFlow()
	if schemaPath != "" {
		data, err := os.ReadFile(schemaPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema: %w", err)
		}
		s, err := question.LoadSchema(data, deps.Registry)
		if err != nil {
			return nil, err
		}
		steps = s.Questions
	}

	if !deps.Flags.Enabled(config.FlagSamples) {
		for i := range steps {
			if steps[i].Name == question.CreateFromScratch && len(steps[i].StaticOptions) > 1 {
				steps[i].StaticOptions = steps[i].StaticOptions[:1].Clone()
			}
		}
	}
	return steps, nil
}
