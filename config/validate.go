package config

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"transcript/output"
	"transcript/source"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []string

	// Input files that are listed must exist
	for _, input := range c.Inputs {
		if input == "" {
			errs = append(errs, "input path cannot be empty")
			continue
		}
		info, err := os.Stat(input)
		if err != nil {
			errs = append(errs, fmt.Sprintf("input file does not exist: %s", input))
		} else if info.IsDir() {
			errs = append(errs, fmt.Sprintf("input is a directory: %s", input))
		}
	}

	// Output
	if c.Output == "" {
		errs = append(errs, "output is required (use - for stdout)")
	}
	if len(c.Inputs) > 1 && c.Output == "-" {
		errs = append(errs, "an output directory is required for multiple inputs")
	}

	// Formatting settings
	if math.IsNaN(c.MinDuration) || math.IsInf(c.MinDuration, 0) {
		errs = append(errs, "min_duration must be a finite number")
	} else if c.MinDuration < 0 {
		errs = append(errs, fmt.Sprintf("min_duration cannot be negative, got %.2f", c.MinDuration))
	}

	if !source.IsValidFormat(c.InputFormat) {
		errs = append(errs, fmt.Sprintf("input_format must be one of %v, got %q",
			source.FormatValues(), c.InputFormat))
	}
	if !output.IsValidFormat(c.OutputFormat) {
		errs = append(errs, fmt.Sprintf("output_format must be one of %v, got %q",
			output.FormatValues(), c.OutputFormat))
	}

	// Execution settings
	if c.Workers < 0 {
		errs = append(errs, fmt.Sprintf("workers cannot be negative, got %d", c.Workers))
	}
	if c.Workers > 256 {
		errs = append(errs, fmt.Sprintf("workers is too high, got %d (max 256)", c.Workers))
	}

	// Logging
	if !contains(LogLevelValues(), c.Log.Level) {
		errs = append(errs, fmt.Sprintf("log level must be one of %v, got %q", LogLevelValues(), c.Log.Level))
	}
	if !contains(LogFormatValues(), c.Log.Format) {
		errs = append(errs, fmt.Sprintf("log format must be one of %v, got %q", LogFormatValues(), c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// RequireInputs reports an error when no input file is configured
func (c *Config) RequireInputs() error {
	if len(c.Inputs) == 0 {
		return fmt.Errorf("at least one input file is required")
	}
	return nil
}

// PrintConfig writes the configuration in a human-readable format
func (c *Config) PrintConfig(w io.Writer) {
	p := func(format string, args ...any) { fmt.Fprintf(w, format, args...) }

	p("═══════════════════════════════════════════════════════════\n")
	p("                 TRANSCRIPT CONFIGURATION\n")
	p("═══════════════════════════════════════════════════════════\n")
	p("\n")
	p("Files:\n")
	if len(c.Inputs) == 0 {
		p("  Inputs:          (none)\n")
	}
	for i, input := range c.Inputs {
		p("  Input %-3d        %s\n", i+1, input)
	}
	p("  Output:          %s\n", c.Output)
	p("\n")
	p("Formatting:\n")
	p("  Min duration:    %.2f seconds\n", c.MinDuration)
	p("  Input format:    %s\n", c.InputFormat)
	p("  Output format:   %s\n", c.OutputFormat)
	p("\n")
	p("Execution:\n")
	p("  Workers:         %d\n", c.Workers)
	p("  Strict mode:     %v\n", c.StrictMode)
	p("  Dry run:         %v\n", c.DryRun)
	p("\n")
	p("Logging:\n")
	p("  Level:           %s\n", c.EffectiveLogLevel())
	p("  Format:          %s\n", c.Log.Format)
	p("═══════════════════════════════════════════════════════════\n")
}
