// Package config loads teamsapp settings from ~/.config/teamsapp/config.yaml,
// an optional .env file and the process environment. The result is built
// once per process and passed explicitly to the entry point.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// EnvFlagPrefix prefixes feature flag overrides, e.g. TEAMSFX_SAMPLES=false.
	EnvFlagPrefix = "TEAMSFX_"
	// EnvLogLevel overrides Log.Level.
	EnvLogLevel = "TEAMSAPP_LOG_LEVEL"
	// EnvTelemetry disables telemetry when set to false.
	EnvTelemetry = "TEAMSAPP_TELEMETRY"
	// EnvTelemetryFile overrides Telemetry.OutputPath.
	EnvTelemetryFile = "TEAMSAPP_TELEMETRY_FILE"
)

// Config holds all user-tunable settings.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Features  map[string]bool `yaml:"features,omitempty"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	Encoding   string `yaml:"encoding"`    // json or console
	OutputPath string `yaml:"output_path"` // file path, stdout or stderr
}

// TelemetryConfig configures the telemetry reporter. With no OutputPath,
// events go to the CLI log at info level.
type TelemetryConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Prefix     string `yaml:"prefix"`
	OutputPath string `yaml:"output_path,omitempty"`
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	cfg := &Config{Telemetry: TelemetryConfig{Enabled: true}}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills every unset field.
func (c *Config) SetDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Encoding == "" {
		c.Log.Encoding = "console"
	}
	if c.Log.OutputPath == "" {
		c.Log.OutputPath = "stderr"
	}
	if c.Telemetry.Prefix == "" {
		c.Telemetry.Prefix = DefaultTelemetryPrefix
	}
	if c.Features == nil {
		c.Features = make(map[string]bool)
	}
	for name, enabled := range DefaultFeatures() {
		if _, ok := c.Features[name]; !ok {
			c.Features[name] = enabled
		}
	}
}

// DefaultTelemetryPrefix prefixes every telemetry event name.
const DefaultTelemetryPrefix = "teamsfx-cli"

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be debug, info, warn or error", c.Log.Level)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log encoding %q: must be json or console", c.Log.Encoding)
	}
	return nil
}

// Load reads the config from the default location, then applies .env and
// environment overrides. A missing config file yields defaults.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	dotenv, err := ReadDotEnv(EnvFileName)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(EnvLookup(dotenv)); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML config file over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.SetDefaults()
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := EnsureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ReadDotEnv returns the variables in a .env file. A missing file is not
// an error. The process environment is left untouched.
func ReadDotEnv(path string) (map[string]string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return vars, nil
}

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// EnvLookup resolves from the real environment first and falls back to
// the given .env values.
func EnvLookup(dotenv map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

// ApplyEnv applies overrides for the log level, telemetry and every
// TEAMSFX_<FLAG> variable known to the feature set.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup(EnvTelemetry); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvTelemetry, v, err)
		}
		c.Telemetry.Enabled = enabled
	}
	if v, ok := lookup(EnvTelemetryFile); ok && v != "" {
		c.Telemetry.OutputPath = v
	}

	if c.Features == nil {
		c.Features = make(map[string]bool)
	}
	for name := range c.Features {
		key := FlagEnvKey(name)
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		c.Features[name] = enabled
	}
	return nil
}

// FlagEnvKey maps a flag name such as "env-commands" to TEAMSFX_ENV_COMMANDS.
func FlagEnvKey(name string) string {
	return EnvFlagPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
