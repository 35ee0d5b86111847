// Package config handles gostrap configuration loading and defaults.
package config

import "time"

// Defaults applied when neither file, environment, nor flags provide a value.
const (
	// DefaultTemplate is the skeleton used when --template is not specified.
	DefaultTemplate = "standard"

	// DefaultToolTimeout bounds each bootstrap tool invocation.
	DefaultToolTimeout = 2 * time.Minute
)

// LogSettings controls log output behavior.
type LogSettings struct {
	// Timestamps controls timestamp output; nil means the default (false).
	Timestamps *bool `mapstructure:"timestamps"`
}

// Config is the gostrap configuration, loaded from file and environment.
type Config struct {
	// ModulePrefix is prepended to the project name when deriving a module
	// path (e.g. "github.com/acme"). Empty means derive example.com/<name>.
	ModulePrefix string `mapstructure:"modulePrefix"`

	// Template is the default skeleton name.
	Template string `mapstructure:"template"`

	// SkipTools disables the best-effort bootstrap steps.
	SkipTools bool `mapstructure:"skipTools"`

	// ToolTimeout bounds each bootstrap tool invocation.
	ToolTimeout time.Duration `mapstructure:"toolTimeout"`

	// Log holds log output settings.
	Log LogSettings `mapstructure:"log"`
}

// WithDefaults returns a copy of the config with defaults applied.
func (c *Config) WithDefaults() *Config {
	out := *c

	if out.Template == "" {
		out.Template = DefaultTemplate
	}
	if out.ToolTimeout <= 0 {
		out.ToolTimeout = DefaultToolTimeout
	}

	return &out
}
