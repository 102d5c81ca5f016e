package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teamsfx/teamsapp-cli/pkg/config"
	"github.com/teamsfx/teamsapp-cli/pkg/tui"
)

// newConfigCmd creates the config command group
func newConfigCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and initialise CLI settings",
	}
	cmd.AddCommand(newConfigShowCmd(deps), newConfigInitCmd(deps), newConfigFlagsCmd(deps))
	return cmd
}

func newConfigShowCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(deps.Config)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigInitCmd(deps *Deps) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := deps.ConfigPath
			if path == "" {
				p, err := config.GetConfigPath()
				if err != nil {
					return fmt.Errorf("failed to get config path: %w", err)
				}
				path = p
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check config file: %w", err)
			}

			if err := config.NewConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.Success("Wrote "+path))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func newConfigFlagsCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "flags",
		Short: "List feature flags and their environment overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range deps.Flags.Names() {
				state := "off"
				if deps.Flags.Enabled(name) {
					state = "on"
				}
				fmt.Fprintf(out, "  - %s: %s (%s)\n", name, state, config.FlagEnvKey(name))
			}
			return nil
		},
	}
}
