package config

import (
	"fmt"

	"github.com/spf13/afero"
)

// Load builds the configuration from environment variables read through
// getenv, falling back to defaults for anything unset or empty. Files named
// by the configuration are resolved against fs.
func Load(fs afero.Fs, getenv func(string) string) (*Configuration, error) {
	out := defaultConfig()
	out.configFs = fs

	if color := getenv(EnvColor); color != "" {
		out.Color = color
	}
	out.EventLog = getenv(EnvEventLog)

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return out, nil
}
