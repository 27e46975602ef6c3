// Package config defines core configuration types for gradlint.
// These types are pure data structures with no dependency on config loaders.
package config

// OutputFormat specifies the output format for check results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Config is the root configuration structure for gradlint.
type Config struct {
	// GradleBin is the gradle binary to invoke when no wrapper is used.
	GradleBin string `mapstructure:"gradle_bin" yaml:"gradle_bin"`

	// NoWrapper disables preferring the project's gradlew wrapper.
	NoWrapper bool `mapstructure:"no_wrapper" yaml:"no_wrapper"`

	// Tasks overrides the compile task per language identifier
	// (e.g. kotlin: compileDebugKotlin).
	Tasks map[string]string `mapstructure:"tasks" yaml:"tasks"`

	// ExtraArgs are appended to every build invocation.
	ExtraArgs []string `mapstructure:"extra_args" yaml:"extra_args"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Strict causes warnings to affect the exit code.
	Strict bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		GradleBin: "gradle",
		Tasks:     make(map[string]string),
		Format:    FormatText,
	}
}
