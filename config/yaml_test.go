package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.yaml")

	yamlContent := `
inputs:
  - "talk.json"
  - "talk2.vtt"
output: "out"
min_duration: 30
input_format: "vtt"
output_format: "markdown"
workers: 4
log:
  level: "warn"
  format: "json"
strict_mode: false
dry_run: true
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfigFile(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify loaded values
	if len(cfg.Inputs) != 2 || cfg.Inputs[1] != "talk2.vtt" {
		t.Errorf("Expected two inputs, got %v", cfg.Inputs)
	}
	if cfg.Output != "out" {
		t.Errorf("Expected output 'out', got '%s'", cfg.Output)
	}
	if cfg.MinDuration != 30 {
		t.Errorf("Expected min duration 30, got %.2f", cfg.MinDuration)
	}
	if cfg.InputFormat != "vtt" {
		t.Errorf("Expected input format 'vtt', got '%s'", cfg.InputFormat)
	}
	if cfg.OutputFormat != "markdown" {
		t.Errorf("Expected output format 'markdown', got '%s'", cfg.OutputFormat)
	}
	if cfg.Workers != 4 {
		t.Errorf("Expected workers 4, got %d", cfg.Workers)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "json" {
		t.Errorf("Expected warn/json logging, got %s/%s", cfg.Log.Level, cfg.Log.Format)
	}
	if cfg.StrictMode {
		t.Error("Expected strict mode false")
	}
	if !cfg.DryRun {
		t.Error("Expected dry run true")
	}
}

func TestLoadConfigFile_PartialConfig(t *testing.T) {
	// Test that partial config merges with defaults
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	yamlContent := `
min_duration: 5.5
log:
  level: debug
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfigFile(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Specified values should be set
	if cfg.MinDuration != 5.5 {
		t.Errorf("Expected min duration 5.5, got %.2f", cfg.MinDuration)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected log level 'debug', got '%s'", cfg.Log.Level)
	}

	// Unspecified values should use defaults
	if cfg.OutputFormat != "json" {
		t.Errorf("Expected default output format 'json', got '%s'", cfg.OutputFormat)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Expected default log format 'text', got '%s'", cfg.Log.Format)
	}
	if !cfg.StrictMode {
		t.Error("Expected default strict mode true")
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadConfigFile(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	badPath := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(badPath, []byte("min_duration: [not, a, number"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	_, err := LoadConfigFile(badPath)
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestSaveConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "saved.yaml")

	cfg := DefaultConfig()
	cfg.MinDuration = 20
	cfg.OutputFormat = "text"
	cfg.Workers = 2

	if err := SaveConfigFile(cfg, configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := LoadConfigFile(configPath)
	if err != nil {
		t.Fatalf("Failed to load saved config: %v", err)
	}

	if loaded.MinDuration != 20 {
		t.Errorf("Expected min duration 20, got %.2f", loaded.MinDuration)
	}
	if loaded.OutputFormat != "text" {
		t.Errorf("Expected output format 'text', got '%s'", loaded.OutputFormat)
	}
	if loaded.Workers != 2 {
		t.Errorf("Expected workers 2, got %d", loaded.Workers)
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("HOME", tmpDir)

	if path := FindConfigFile(); path != "" && !strings.HasPrefix(path, "/etc/") {
		t.Errorf("Expected no config file, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "transcript.yml"), []byte("workers: 1\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if path := FindConfigFile(); path != "./transcript.yml" {
		t.Errorf("Expected ./transcript.yml, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "transcript.yaml"), []byte("workers: 1\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if path := FindConfigFile(); path != "./transcript.yaml" {
		t.Errorf("Expected ./transcript.yaml to win, got %s", path)
	}
}
