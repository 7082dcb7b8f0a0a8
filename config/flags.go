package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared by every command
const (
	FlagConfig       = "config"
	FlagEnvFile      = "env-file"
	FlagOutput       = "output"
	FlagMinDuration  = "min-duration"
	FlagInputFormat  = "input-format"
	FlagOutputFormat = "output-format"
	FlagWorkers      = "workers"
	FlagStrict       = "strict"
	FlagVerbose      = "verbose"
	FlagDryRun       = "dry-run"
	FlagLogLevel     = "log-level"
	FlagLogFormat    = "log-format"
)

// RegisterFlags defines the configuration flags on fs. Defaults shown in
// help come from DefaultConfig; only flags the user sets are merged.
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()

	fs.String(FlagConfig, "", "Path to YAML config file")
	fs.String(FlagEnvFile, "", "Path to .env file (default: ./.env when present)")

	fs.StringP(FlagOutput, "o", d.Output, "Output file, directory for batches, or - for stdout")
	fs.Float64P(FlagMinDuration, "d", d.MinDuration, "Minimum seconds of speech per group")
	fs.String(FlagInputFormat, d.InputFormat, "Input format: auto, json, vtt, srt")
	fs.StringP(FlagOutputFormat, "f", d.OutputFormat, "Output format: json, markdown, text")
	fs.IntP(FlagWorkers, "w", d.Workers, "Parallel workers for batches (0 = auto)")
	fs.Bool(FlagStrict, d.StrictMode, "Exit with an error if any file fails")
	fs.BoolP(FlagVerbose, "v", d.Verbose, "Enable debug logging")
	fs.Bool(FlagDryRun, d.DryRun, "Show configuration without formatting")
	fs.String(FlagLogLevel, d.Log.Level, "Log level: debug, info, warn, error")
	fs.String(FlagLogFormat, d.Log.Format, "Log format: text, json")
}

// MergeFromFlags merges explicitly set command line flags into the config.
// Flags the user did not set never override file or environment values.
func (c *Config) MergeFromFlags(fs *pflag.FlagSet) error {
	var err error

	merge := func(name string, apply func() error) {
		if err != nil {
			return
		}
		if f := fs.Lookup(name); f != nil && f.Changed {
			if applyErr := apply(); applyErr != nil {
				err = fmt.Errorf("invalid --%s: %w", name, applyErr)
			}
		}
	}

	merge(FlagOutput, func() (e error) { c.Output, e = fs.GetString(FlagOutput); return })
	merge(FlagMinDuration, func() (e error) { c.MinDuration, e = fs.GetFloat64(FlagMinDuration); return })
	merge(FlagInputFormat, func() (e error) { c.InputFormat, e = fs.GetString(FlagInputFormat); return })
	merge(FlagOutputFormat, func() (e error) { c.OutputFormat, e = fs.GetString(FlagOutputFormat); return })
	merge(FlagWorkers, func() (e error) { c.Workers, e = fs.GetInt(FlagWorkers); return })
	merge(FlagStrict, func() (e error) { c.StrictMode, e = fs.GetBool(FlagStrict); return })
	merge(FlagVerbose, func() (e error) { c.Verbose, e = fs.GetBool(FlagVerbose); return })
	merge(FlagDryRun, func() (e error) { c.DryRun, e = fs.GetBool(FlagDryRun); return })
	merge(FlagLogLevel, func() (e error) { c.Log.Level, e = fs.GetString(FlagLogLevel); return })
	merge(FlagLogFormat, func() (e error) { c.Log.Format, e = fs.GetString(FlagLogFormat); return })

	return err
}

// stringFlag returns the value of a string flag, or "" when fs lacks it
func stringFlag(fs *pflag.FlagSet, name string) string {
	if fs == nil || fs.Lookup(name) == nil {
		return ""
	}
	v, _ := fs.GetString(name)
	return v
}
