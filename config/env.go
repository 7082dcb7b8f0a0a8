package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable the formatter reads
const EnvPrefix = "TRANSCRIPT_"

// DefaultEnvFile is loaded when present and no other env file is given
const DefaultEnvFile = ".env"

// LoadEnvFile loads variables from a dotenv file into the process
// environment. Variables that are already set are left untouched.
// A missing default file is not an error; a missing explicit one is.
func LoadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides config values with TRANSCRIPT_* environment variables
func (c *Config) ApplyEnv() error {
	var errs []string

	if v, ok := lookupEnv("INPUTS"); ok {
		c.Inputs = splitList(v)
	}
	if v, ok := lookupEnv("OUTPUT"); ok {
		c.Output = v
	}
	if v, ok := lookupEnv("MIN_DURATION"); ok {
		if f, err := strconv.ParseFloat(v, 64); err != nil {
			errs = append(errs, fmt.Sprintf("%sMIN_DURATION: %q is not a number", EnvPrefix, v))
		} else {
			c.MinDuration = f
		}
	}
	if v, ok := lookupEnv("INPUT_FORMAT"); ok {
		c.InputFormat = v
	}
	if v, ok := lookupEnv("OUTPUT_FORMAT"); ok {
		c.OutputFormat = v
	}
	if v, ok := lookupEnv("WORKERS"); ok {
		if n, err := strconv.Atoi(v); err != nil {
			errs = append(errs, fmt.Sprintf("%sWORKERS: %q is not an integer", EnvPrefix, v))
		} else {
			c.Workers = n
		}
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookupEnv("LOG_FORMAT"); ok {
		c.Log.Format = strings.ToLower(v)
	}

	bools := map[string]*bool{
		"STRICT_MODE": &c.StrictMode,
		"VERBOSE":     &c.Verbose,
		"DRY_RUN":     &c.DryRun,
	}
	for name, dst := range bools {
		v, ok := lookupEnv(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s%s: %q is not a boolean", EnvPrefix, name, v))
			continue
		}
		*dst = b
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid environment:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func lookupEnv(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
