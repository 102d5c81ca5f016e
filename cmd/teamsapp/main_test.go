package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/teamsfx/teamsapp-cli/pkg/cli"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TEAMSAPP_LOG_LEVEL", "error")
	t.Setenv("TEAMSAPP_TELEMETRY", "false")
	testChdir(t, t.TempDir())
}

func TestRunVersion(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"teamsapp", "version"}, os.Stdin, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "teamsapp version")
	assert.Empty(t, stderr.String())
}

func TestRunTeamsfxAlias(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"/usr/bin/teamsfx", "--help"}, os.Stdin, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stderr.String(), cli.DeprecationWarning)
	assert.Contains(t, stdout.String(), "teamsfx")
}

func TestRunNewNonInteractive(t *testing.T) {
	isolate(t)
	folder := t.TempDir()
	var stdout, stderr bytes.Buffer

	err := run(context.Background(),
		[]string{"teamsapp", "new", "--folder", folder, "--app-name", "HelloTeams", "--interactive=false"},
		os.Stdin, &stdout, &stderr)
	require.NoError(t, err)

	var answers map[string]string
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &answers))
	assert.Equal(t, "HelloTeams", answers["app-name"])
	assert.Equal(t, "yes", answers["scratch"])
	assert.Equal(t, folder, answers["folder"])
}

func TestRunEnvFlagFromDotEnv(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte("TEAMSFX_ENV_COMMANDS=true\n"), 0644))
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"teamsapp", "--help"}, os.Stdin, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "env")
	assert.Contains(t, stdout.String(), "Manage project environments")
}

func TestRunInvalidConfig(t *testing.T) {
	isolate(t)
	t.Setenv("TEAMSAPP_LOG_LEVEL", "chatty")
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"teamsapp", "version"}, os.Stdin, &stdout, &stderr)
	assert.Error(t, err)
	assert.Contains(t, stderr.String(), "chatty")
}
