package config

import (
	"fmt"
	"runtime"

	"github.com/mudler/xlog"
	"github.com/spf13/pflag"
)

// LoadConfig loads configuration with priority:
// 1. Command line flags (highest)
// 2. TRANSCRIPT_* environment variables, including a .env file
// 3. Config file (--config or a standard location)
// 4. Defaults (lowest)
//
// Non-empty args replace the configured inputs.
func LoadConfig(fs *pflag.FlagSet, args []string) (*Config, error) {
	cfg := DefaultConfig()

	configPath := stringFlag(fs, FlagConfig)
	if configPath == "" {
		configPath = FindConfigFile()
	}

	if configPath != "" {
		fileCfg, err := LoadConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
		xlog.Debug("Loaded config file", "path", configPath)
	}

	if err := LoadEnvFile(stringFlag(fs, FlagEnvFile)); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if fs != nil {
		if err := cfg.MergeFromFlags(fs); err != nil {
			return nil, err
		}
	}

	if len(args) > 0 {
		cfg.Inputs = append([]string(nil), args...)
	}

	// Auto-detect workers if not specified
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ResolveWorkers returns the worker count for n inputs, never more
// workers than inputs.
func (c *Config) ResolveWorkers(n int) int {
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if n > 0 && workers > n {
		workers = n
	}
	return workers
}

// Summary returns a one-line description of the effective settings
func (c *Config) Summary() string {
	return fmt.Sprintf("inputs=%d min_duration=%.2fs input=%s output=%s workers=%d",
		len(c.Inputs), c.MinDuration, c.InputFormat, c.OutputFormat, c.Workers)
}
