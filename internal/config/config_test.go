package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"galapagos/internal/biotope"
)

func TestDefault(t *testing.T) {
	config := Default()

	if config.Biotope.Width != 100 || config.Biotope.Height != 100 {
		t.Errorf("expected 100x100 biotope, got %dx%d", config.Biotope.Width, config.Biotope.Height)
	}
	if config.Run.Rounds != 100 {
		t.Errorf("expected 100 rounds, got %d", config.Run.Rounds)
	}
	if config.Logging.Level != "info" {
		t.Errorf("expected Logging.Level 'info', got '%s'", config.Logging.Level)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
biotope:
  width: 30
  height: 20
  seed: 99
  breeding_probability: 0.5
  kinds: [Cheater, Analyzer]

run:
  rounds: 250
  interval: 50ms

logging:
  level: debug

output:
  csv: stats.csv
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	config, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if config.Biotope.Width != 30 || config.Biotope.Height != 20 || config.Biotope.Seed != 99 {
		t.Errorf("biotope section not applied: %+v", config.Biotope)
	}
	if !slices.Equal(config.Biotope.Kinds, []string{"Cheater", "Analyzer"}) {
		t.Errorf("expected kinds [Cheater Analyzer], got %v", config.Biotope.Kinds)
	}
	if config.Biotope.MaxVitality != biotope.DefaultConfig().MaxVitality {
		t.Errorf("unset field lost its default: %d", config.Biotope.MaxVitality)
	}
	if config.Run.Rounds != 250 || config.Run.Interval != 50*time.Millisecond {
		t.Errorf("run section not applied: %+v", config.Run)
	}
	if config.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", config.Logging.Level)
	}
	if config.Output.CSV != "stats.csv" || config.Output.SQLite != "" {
		t.Errorf("output section not applied: %+v", config.Output)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("run: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := LoadFromFile(path); err == nil || !strings.Contains(err.Error(), "parsing") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GALAPAGOS_LOG_LEVEL", "trace")
	t.Setenv("GALAPAGOS_LOG_FORMAT", "console")
	t.Setenv("GALAPAGOS_SEED", "7")
	t.Setenv("GALAPAGOS_ROUNDS", "not-a-number")

	config, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config.Logging.Level != "trace" {
		t.Errorf("expected level trace, got %s", config.Logging.Level)
	}
	if config.Logging.Format != "console" {
		t.Errorf("expected format console, got %s", config.Logging.Format)
	}
	if config.Biotope.Seed != 7 {
		t.Errorf("expected seed 7, got %d", config.Biotope.Seed)
	}
	if config.Run.Rounds != Default().Run.Rounds {
		t.Errorf("invalid GALAPAGOS_ROUNDS should be ignored, got %d", config.Run.Rounds)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *RunConfig)
		wantErr bool
	}{
		{"default", func(c *RunConfig) {}, false},
		{"negative rounds", func(c *RunConfig) { c.Run.Rounds = -1 }, true},
		{"negative interval", func(c *RunConfig) { c.Run.Interval = -time.Second }, true},
		{"zero workers", func(c *RunConfig) { c.Sweep.Workers = 0 }, true},
		{"bad level", func(c *RunConfig) { c.Logging.Level = "loud" }, true},
		{"empty level", func(c *RunConfig) { c.Logging.Level = "" }, false},
		{"console format", func(c *RunConfig) { c.Logging.Format = "console" }, false},
		{"bad format", func(c *RunConfig) { c.Logging.Format = "xml" }, true},
		{"bad biotope", func(c *RunConfig) { c.Biotope.Kinds = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.mutate(config)
			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	config := Default()
	config.Biotope.Seed = 12
	data, err := config.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if loaded.Biotope.Seed != 12 || loaded.Run.Rounds != config.Run.Rounds {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}
