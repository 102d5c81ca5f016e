package config

import "sort"

// Feature flag names.
const (
	// FlagSamples offers "Start from a sample" in the new-project wizard.
	FlagSamples = "samples"
	// FlagEnvCommands exposes the env subcommands.
	FlagEnvCommands = "env-commands"
)

// DefaultFeatures returns the flag values used when nothing overrides them.
func DefaultFeatures() map[string]bool {
	return map[string]bool{
		FlagSamples:     true,
		FlagEnvCommands: false,
	}
}

// FeatureFlags is an immutable snapshot of the enabled features.
type FeatureFlags struct {
	enabled map[string]bool
}

// NewFeatureFlags snapshots the features in cfg.
func NewFeatureFlags(cfg *Config) FeatureFlags {
	enabled := make(map[string]bool, len(cfg.Features))
	for name, on := range cfg.Features {
		enabled[name] = on
	}
	return FeatureFlags{enabled: enabled}
}

// Enabled reports whether the named feature is on. Unknown flags are off.
func (f FeatureFlags) Enabled(name string) bool {
	return f.enabled[name]
}

// Names lists every known flag in sorted order.
func (f FeatureFlags) Names() []string {
	names := make([]string, 0, len(f.enabled))
	for name := range f.enabled {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
