// Package cli is the process entry point shared by the teamsapp and
// teamsfx executables.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/teamsfx/teamsapp-cli/metadata"
	"github.com/teamsfx/teamsapp-cli/pkg/commands"
	"github.com/teamsfx/teamsapp-cli/pkg/config"
	"github.com/teamsfx/teamsapp-cli/pkg/logger"
	"github.com/teamsfx/teamsapp-cli/pkg/question"
	"github.com/teamsfx/teamsapp-cli/pkg/telemetry"
	"github.com/teamsfx/teamsapp-cli/pkg/tui"
)

// BinName is the alias the CLI was invoked as.
type BinName string

const (
	BinTeamsfx  BinName = "teamsfx"
	BinTeamsapp BinName = "teamsapp"
)

// DeprecationWarning is printed when the CLI is started as teamsfx.
const DeprecationWarning = "Warning: We are planning to deprecate 'teamsfx' as command signature and move to 'teamsapp' instead in the next major version of Teams Toolkit CLI."

// Telemetry event names.
const (
	EventStart   = "start"
	EventCommand = "command"
)

// ParseBinName maps an executable path to its alias. Anything other than
// teamsfx is treated as teamsapp.
func ParseBinName(argv0 string) BinName {
	base := argv0
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	base = strings.TrimSuffix(strings.ToLower(base), ".exe")
	if base == string(BinTeamsfx) {
		return BinTeamsfx
	}
	return BinTeamsapp
}

// Options configures Start. Nil fields get defaults.
type Options struct {
	Config   *config.Config
	Flags    config.FeatureFlags
	Metadata metadata.Package
	Logger   *logger.Logger
	// Reporter overrides the reporter built from Config.Telemetry.
	Reporter telemetry.Reporter
	Registry *question.Registry
	Prompter commands.PrompterFactory
	Stdin    *os.File
	Stdout   io.Writer
	Stderr   io.Writer
	Args     []string
}

// Start sets up telemetry, warns about the deprecated alias and runs the
// command tree with opts.Args.
func Start(ctx context.Context, bin BinName, opts Options) error {
	if opts.Config == nil {
		opts.Config = config.NewConfig()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = telemetry.New(opts.Config.Telemetry, opts.Metadata, opts.Logger)
	}
	defer func() {
		if err := reporter.Flush(); err != nil {
			opts.Logger.Debug("telemetry flush failed", "error", err)
		}
	}()

	if bin == BinTeamsfx {
		fmt.Fprintln(opts.Stderr, tui.Warning(DeprecationWarning))
		opts.Logger.Debug("deprecated alias used", "bin", string(bin))
	}
	reporter.AddSharedProperty(telemetry.PropBinName, string(bin))
	reporter.SendEvent(EventStart, nil)

	root := commands.NewRootCmd(string(bin), commands.Deps{
		Stdin:    opts.Stdin,
		Stdout:   opts.Stdout,
		Stderr:   opts.Stderr,
		Config:   opts.Config,
		Flags:    opts.Flags,
		Registry: opts.Registry,
		Logger:   opts.Logger.With("bin", string(bin)),
		Reporter: reporter,
		Version:  opts.Metadata.Version,
		Prompter: opts.Prompter,
	})
	root.SetArgs(opts.Args)

	if err := root.ExecuteContext(ctx); err != nil {
		reporter.SendError(EventCommand, err, nil)
		return err
	}
	return nil
}
