package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teamsfx/teamsapp-cli/metadata"
	"github.com/teamsfx/teamsapp-cli/pkg/config"
	"github.com/teamsfx/teamsapp-cli/pkg/logger"
	"github.com/teamsfx/teamsapp-cli/pkg/runner"
	"github.com/teamsfx/teamsapp-cli/pkg/telemetry"
)

type recordingReporter struct {
	shared  map[string]string
	events  []string
	errors  []string
	flushed bool
}

func newRecordingReporter() *recordingReporter {
	return &recordingReporter{shared: map[string]string{}}
}

func (r *recordingReporter) AddSharedProperty(k, v string) { r.shared[k] = v }

func (r *recordingReporter) SendEvent(name string, _ map[string]string) {
	r.events = append(r.events, name)
}

func (r *recordingReporter) SendError(name string, _ error, _ map[string]string) {
	r.errors = append(r.errors, name)
}

func (r *recordingReporter) Flush() error {
	r.flushed = true
	return nil
}

func TestParseBinName(t *testing.T) {
	tests := []struct {
		argv0 string
		want  BinName
	}{
		{"teamsfx", BinTeamsfx},
		{"/usr/local/bin/teamsfx", BinTeamsfx},
		{`C:\tools\TeamsFx.exe`, BinTeamsfx},
		{"teamsapp", BinTeamsapp},
		{"/opt/teamsapp/bin/teamsapp", BinTeamsapp},
		{"something-else", BinTeamsapp},
		{"", BinTeamsapp},
	}

	for _, tt := range tests {
		t.Run(tt.argv0, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBinName(tt.argv0))
		})
	}
}

func TestStart_TeamsfxWarns(t *testing.T) {
	var stdout, stderr bytes.Buffer
	rep := newRecordingReporter()

	err := Start(context.Background(), BinTeamsfx, Options{
		Metadata: metadata.Package{Name: "cli", Version: "3.0.0"},
		Reporter: rep,
		Stdout:   &stdout,
		Stderr:   &stderr,
		Args:     []string{"version"},
	})
	require.NoError(t, err)

	assert.Contains(t, stderr.String(), DeprecationWarning)
	assert.Equal(t, "teamsfx version 3.0.0\n", stdout.String())
	assert.Equal(t, "teamsfx", rep.shared[telemetry.PropBinName])
	assert.Equal(t, []string{EventStart}, rep.events)
	assert.True(t, rep.flushed)
}

func TestStart_TeamsappIsQuiet(t *testing.T) {
	var stdout, stderr bytes.Buffer
	rep := newRecordingReporter()

	err := Start(context.Background(), BinTeamsapp, Options{
		Metadata: metadata.Package{Version: "3.0.0"},
		Reporter: rep,
		Stdout:   &stdout,
		Stderr:   &stderr,
		Args:     []string{"version"},
	})
	require.NoError(t, err)

	assert.NotContains(t, stderr.String(), "deprecate")
	assert.Equal(t, "teamsapp", rep.shared[telemetry.PropBinName])
}

func TestStart_CommandErrorIsReported(t *testing.T) {
	var stdout, stderr bytes.Buffer
	rep := newRecordingReporter()

	err := Start(context.Background(), BinTeamsapp, Options{
		Reporter: rep,
		Stdout:   &stdout,
		Stderr:   &stderr,
		Args:     []string{"does-not-exist"},
	})

	assert.Error(t, err)
	assert.Equal(t, []string{EventCommand}, rep.errors)
	assert.Contains(t, stderr.String(), "unknown command")
}

func TestStart_FeatureFlagsThreadedThrough(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Features[config.FlagEnvCommands] = true
	p := runner.NewScriptedPrompter("staging", "true", "true")
	var stdout bytes.Buffer

	err := Start(context.Background(), BinTeamsapp, Options{
		Config:   cfg,
		Flags:    config.NewFeatureFlags(cfg),
		Reporter: newRecordingReporter(),
		Prompter: func(bool) (runner.Prompter, error) { return p, nil },
		Stdout:   &stdout,
		Stderr:   &bytes.Buffer{},
		Args:     []string{"env", "add"},
	})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "env-name: staging")
}

func TestStart_TelemetryFromConfig(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cfg := config.NewConfig()

	err := Start(context.Background(), BinTeamsfx, Options{
		Config:   cfg,
		Metadata: metadata.Package{Version: "3.0.0"},
		Logger:   logger.NewWithCore(core),
		Stdout:   &bytes.Buffer{},
		Stderr:   &bytes.Buffer{},
		Args:     []string{"version"},
	})
	require.NoError(t, err)

	events := logs.FilterMessage(config.DefaultTelemetryPrefix + "/" + EventStart).All()
	require.Len(t, events, 1)
	fields := events[0].ContextMap()
	assert.Equal(t, "teamsfx", fields[telemetry.PropBinName])
	assert.Equal(t, "3.0.0", fields[telemetry.PropVersion])
}

func TestStart_TelemetryDisabled(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cfg := config.NewConfig()
	cfg.Telemetry.Enabled = false

	err := Start(context.Background(), BinTeamsapp, Options{
		Config: cfg,
		Logger: logger.NewWithCore(core),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
		Args:   []string{"version"},
	})
	require.NoError(t, err)
	assert.Zero(t, logs.FilterMessage(config.DefaultTelemetryPrefix+"/"+EventStart).Len())
}

func TestStart_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := runner.NewScriptedPrompter("yes")

	err := Start(ctx, BinTeamsapp, Options{
		Reporter: newRecordingReporter(),
		Prompter: func(bool) (runner.Prompter, error) { return p, nil },
		Stdout:   &bytes.Buffer{},
		Stderr:   &bytes.Buffer{},
		Args:     []string{"new"},
	})
	assert.True(t, errors.Is(err, runner.ErrAborted))
}

func TestDeprecationWarning_Wording(t *testing.T) {
	assert.Contains(t, DeprecationWarning, "deprecate 'teamsfx' as command signature")
	assert.NotContains(t, DeprecationWarning, "depreate")
	assert.NotContains(t, DeprecationWarning, "signagure")
}
