// Package main provides the teamsapp (and legacy teamsfx) executable.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/teamsfx/teamsapp-cli/metadata"
	"github.com/teamsfx/teamsapp-cli/pkg/cli"
	"github.com/teamsfx/teamsapp-cli/pkg/config"
	"github.com/teamsfx/teamsapp-cli/pkg/logger"
	"github.com/teamsfx/teamsapp-cli/pkg/tui"
)

// version is set via -ldflags during build
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		// Cobra handles error printing
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin *os.File, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, tui.Error(err.Error()))
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(stderr, tui.Error(err.Error()))
		return err
	}
	defer func() { _ = log.Sync() }()

	pkg, err := metadata.Load()
	if err != nil {
		return err
	}
	pkg = pkg.WithVersion(version)

	argv0 := ""
	if len(args) > 0 {
		argv0, args = args[0], args[1:]
	}

	return cli.Start(ctx, cli.ParseBinName(argv0), cli.Options{
		Config:   cfg,
		Flags:    config.NewFeatureFlags(cfg),
		Metadata: pkg,
		Logger:   log,
		Stdin:    stdin,
		Stdout:   stdout,
		Stderr:   stderr,
		Args:     args,
	})
}
