package config

import (
	"transcript/aggregator"
	"transcript/output"
	"transcript/source"
)

// Config holds all formatter configuration options
type Config struct {
	// Inputs are transcript files; positional CLI arguments replace them
	Inputs []string `yaml:"inputs"`
	Output string   `yaml:"output"` // file, directory for batches, or "-" for stdout

	// Formatting settings
	MinDuration  float64 `yaml:"min_duration"`  // seconds a group must reach before closing
	InputFormat  string  `yaml:"input_format"`  // "auto", "json", "vtt", "srt"
	OutputFormat string  `yaml:"output_format"` // "json", "markdown", "text"

	// Execution settings
	Workers int `yaml:"workers"` // 0 = auto-detect

	// Logging settings
	Log LogConfig `yaml:"log"`

	// Behavioral flags
	StrictMode bool `yaml:"strict_mode"` // Fail the batch on any file error
	Verbose    bool `yaml:"verbose"`     // Debug logging
	DryRun     bool `yaml:"dry_run"`     // Show config without formatting
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "text", "json"
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Inputs: nil,
		Output: "-", // stdout

		MinDuration:  aggregator.DefaultMinDuration,
		InputFormat:  string(source.FormatAuto),
		OutputFormat: string(output.FormatJSON),

		Workers: 0, // Auto-detect CPU count

		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},

		StrictMode: true,
		Verbose:    false,
		DryRun:     false,
	}
}

// Copy creates a deep copy of the config
func (c *Config) Copy() *Config {
	cp := *c
	cp.Inputs = append([]string(nil), c.Inputs...)
	return &cp
}

// EffectiveLogLevel returns the log level, raised to debug in verbose mode
func (c *Config) EffectiveLogLevel() string {
	if c.Verbose {
		return "debug"
	}
	return c.Log.Level
}

// LogLevelValues returns valid log levels
func LogLevelValues() []string {
	return []string{"debug", "info", "warn", "error"}
}

// LogFormatValues returns valid log formats
func LogFormatValues() []string {
	return []string{"text", "json"}
}

func contains(values []string, v string) bool {
	for _, valid := range values {
		if v == valid {
			return true
		}
	}
	return false
}
