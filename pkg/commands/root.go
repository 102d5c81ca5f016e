// Package commands implements the teamsapp command tree.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/teamsfx/teamsapp-cli/pkg/config"
	"github.com/teamsfx/teamsapp-cli/pkg/logger"
	"github.com/teamsfx/teamsapp-cli/pkg/question"
	"github.com/teamsfx/teamsapp-cli/pkg/runner"
	"github.com/teamsfx/teamsapp-cli/pkg/telemetry"
	"github.com/teamsfx/teamsapp-cli/pkg/tui"
)

// PrompterFactory returns the prompter for a command run.
type PrompterFactory func(interactive bool) (runner.Prompter, error)

// Deps carries everything the commands need. Zero fields get defaults.
type Deps struct {
	Stdin  *os.File
	Stdout io.Writer
	Stderr io.Writer

	Config *config.Config
	// ConfigPath is where "config init" writes. Empty means config.GetConfigPath.
	ConfigPath string
	Flags      config.FeatureFlags

	Registry *question.Registry
	Logger   *logger.Logger
	Reporter telemetry.Reporter
	Version  string
	Prompter PrompterFactory
}

func (d *Deps) setDefaults() {
	if d.Stdin == nil {
		d.Stdin = os.Stdin
	}
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stderr == nil {
		d.Stderr = os.Stderr
	}
	if d.Config == nil {
		d.Config = config.NewConfig()
	}
	if d.Registry == nil {
		d.Registry = question.DefaultRegistry()
	}
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}
	if d.Reporter == nil {
		d.Reporter = telemetry.NopReporter{}
	}
	if d.Version == "" {
		d.Version = "dev"
	}
	if d.Prompter == nil {
		d.Prompter = d.defaultPrompter
	}
}

// defaultPrompter draws huh forms on stderr when interactive and answers
// from defaults only otherwise.
func (d *Deps) defaultPrompter(interactive bool) (runner.Prompter, error) {
	if !interactive {
		return runner.NewScriptedPrompter(), nil
	}
	p, err := tui.NewHuhPrompter(d.Stdin, d.Stderr)
	if err != nil {
		return nil, fmt.Errorf("%w (use --interactive=false with --answers to run without a terminal)", err)
	}
	return p, nil
}

func (d *Deps) newRunner(interactive bool) (*runner.Runner, error) {
	p, err := d.Prompter(interactive)
	if err != nil {
		return nil, err
	}
	opts := []runner.Option{
		runner.WithLogger(d.Logger),
		runner.WithReporter(d.Reporter),
	}
	if !interactive {
		opts = append(opts, runner.WithMaxAttempts(1))
	}
	return runner.New(p, d.Registry, opts...), nil
}

// NewRootCmd creates the root command, named after the invoked alias.
func NewRootCmd(bin string, deps Deps) *cobra.Command {
	deps.setDefaults()

	rootCmd := &cobra.Command{
		Use:   bin,
		Short: "Teams Toolkit CLI",
		Long: bin + ` scaffolds Microsoft Teams apps from the command line.

It supports:
  - Creating a new Teams app from scratch or from a sample
  - Adding and selecting project environments
  - Inspecting the question flows the wizard presents`,
		Version:       deps.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.SetIn(deps.Stdin)
	rootCmd.SetOut(deps.Stdout)
	rootCmd.SetErr(deps.Stderr)

	rootCmd.AddCommand(
		newNewCmd(&deps),
		newSamplesCmd(&deps),
		newQuestionsCmd(&deps),
		newConfigCmd(&deps),
		newVersionCmd(bin, &deps),
	)
	if deps.Flags.Enabled(config.FlagEnvCommands) {
		rootCmd.AddCommand(newEnvCmd(&deps))
	}

	return rootCmd
}

// newVersionCmd creates the version subcommand
func newVersionCmd(bin string, deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", bin, deps.Version)
			return err
		},
	}
}
