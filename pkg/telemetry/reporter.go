// Package telemetry records CLI usage events. There is no remote transport:
// events are written at info level, either to a dedicated JSON file
// (telemetry.output_path) or to the CLI log. The CLI log defaults to warn,
// so without an output path events are only kept once the log level is
// info or debug.
package telemetry

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teamsfx/teamsapp-cli/metadata"
	"github.com/teamsfx/teamsapp-cli/pkg/config"
	"github.com/teamsfx/teamsapp-cli/pkg/logger"
)

// Well-known property keys.
const (
	PropBinName   = "bin-name"
	PropSessionID = "session-id"
	PropVersion   = "cli-version"
	PropSuccess   = "success"
	PropErrorMsg  = "error-message"
)

// Reporter receives telemetry events.
type Reporter interface {
	// AddSharedProperty attaches a property to every subsequent event.
	AddSharedProperty(key, value string)
	SendEvent(name string, props map[string]string)
	SendError(name string, err error, props map[string]string)
	Flush() error
}

// New returns a LogReporter when telemetry is enabled and a NopReporter
// otherwise. When cfg.OutputPath is set, events go to that file as JSON
// regardless of the CLI log level; if it cannot be opened, log is used.
func New(cfg config.TelemetryConfig, pkg metadata.Package, log *logger.Logger) Reporter {
	if !cfg.Enabled {
		return NopReporter{}
	}
	if log == nil {
		log = logger.Nop()
	}
	sink := log
	if cfg.OutputPath != "" {
		fileLog, err := logger.New(config.LogConfig{Level: "info", Encoding: "json", OutputPath: cfg.OutputPath})
		if err != nil {
			log.Warn("telemetry output unavailable, using the CLI log", "path", cfg.OutputPath, "error", err)
		} else {
			sink = fileLog
		}
	}
	return NewLogReporter(cfg.Prefix, pkg, sink)
}

// LogReporter writes events through the logger at info level.
type LogReporter struct {
	prefix string
	log    *logger.Logger

	mu     sync.Mutex
	shared map[string]string
}

// NewLogReporter creates a reporter with a fresh session id.
func NewLogReporter(prefix string, pkg metadata.Package, log *logger.Logger) *LogReporter {
	if log == nil {
		log = logger.Nop()
	}
	if prefix == "" {
		prefix = config.DefaultTelemetryPrefix
	}
	return &LogReporter{
		prefix: prefix,
		log:    log,
		shared: map[string]string{
			PropSessionID: uuid.NewString(),
			PropVersion:   pkg.Version,
		},
	}
}

// AddSharedProperty implements Reporter.
func (r *LogReporter) AddSharedProperty(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shared[key] = value
}

// SharedProperties returns a copy of the shared properties.
func (r *LogReporter) SharedProperties() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.shared))
	for k, v := range r.shared {
		out[k] = v
	}
	return out
}

// EventName prefixes name with the reporter prefix.
func (r *LogReporter) EventName(name string) string {
	return r.prefix + "/" + name
}

// SendEvent implements Reporter.
func (r *LogReporter) SendEvent(name string, props map[string]string) {
	fields := r.fields(props)
	fields = append(fields, zap.String(PropSuccess, "yes"))
	r.log.Logger.Info(r.EventName(name), fields...)
}

// SendError implements Reporter.
func (r *LogReporter) SendError(name string, err error, props map[string]string) {
	fields := r.fields(props)
	fields = append(fields, zap.String(PropSuccess, "no"))
	if err != nil {
		fields = append(fields, zap.String(PropErrorMsg, err.Error()))
	}
	r.log.Logger.Info(r.EventName(name), fields...)
}

// Flush implements Reporter.
func (r *LogReporter) Flush() error {
	return r.log.Sync()
}

// fields merges shared and event properties, event properties winning.
func (r *LogReporter) fields(props map[string]string) []zap.Field {
	merged := r.SharedProperties()
	for k, v := range props {
		merged[k] = v
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(keys)+2)
	fields = append(fields, zap.String("event", "telemetry"))
	for _, k := range keys {
		fields = append(fields, zap.String(k, merged[k]))
	}
	return fields
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) AddSharedProperty(string, string)          {}
func (NopReporter) SendEvent(string, map[string]string)        {}
func (NopReporter) SendError(string, error, map[string]string) {}
func (NopReporter) Flush() error                               { return nil }
