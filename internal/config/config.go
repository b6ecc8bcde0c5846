// Package config loads the YAML run configuration used by the headless CLI.
// Values come from defaults, then an optional file, then the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"galapagos/internal/biotope"
	"gopkg.in/yaml.v3"
)

// RunConfig contains every setting of a headless run.
type RunConfig struct {
	// Biotope is the seeding configuration.
	Biotope biotope.Config `yaml:"biotope"`

	// Run controls how many rounds are computed and how fast.
	Run RunSection `yaml:"run"`

	// Sweep controls multi-seed tournaments.
	Sweep SweepSection `yaml:"sweep"`

	// Logging contains settings for operational logging.
	Logging LoggingSection `yaml:"logging"`

	// Output names the statistics sinks. Empty paths disable a sink.
	Output OutputSection `yaml:"output"`
}

// RunSection configures the round driver.
type RunSection struct {
	// Rounds is the number of rounds to compute. Zero runs until interrupted.
	Rounds int `yaml:"rounds"`
	// Interval paces rounds; zero runs them back to back.
	Interval time.Duration `yaml:"interval"`
}

// SweepSection configures a tournament of independently seeded biotopes.
type SweepSection struct {
	Runs    int `yaml:"runs"`
	Workers int `yaml:"workers"`
}

// LoggingSection configures the slog logger.
type LoggingSection struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "trace" logs every single interaction.
	Level string `yaml:"level"`
	// Format selects the handler: "text" (default, logfmt-style) or
	// "console" (colored, for interactive terminals).
	Format string `yaml:"format"`
}

// OutputSection names where statistics go.
type OutputSection struct {
	CSV    string `yaml:"csv"`
	SQLite string `yaml:"sqlite"`

	// Video is an AVI file receiving one frame per round.
	Video      string `yaml:"video"`
	VideoScale int    `yaml:"video_scale"`
	VideoFPS   int    `yaml:"video_fps"`
}

// Default returns a RunConfig with sensible defaults.
func Default() *RunConfig {
	return &RunConfig{
		Biotope: biotope.DefaultConfig(),
		Run: RunSection{
			Rounds: 100,
		},
		Sweep: SweepSection{
			Runs:    8,
			Workers: 4,
		},
		Logging: LoggingSection{
			Level:  "info",
			Format: "text",
		},
		Output: OutputSection{
			VideoScale: 4,
			VideoFPS:   10,
		},
	}
}

// Load reads configuration in the order defaults -> path -> environment.
// An empty path skips the file.
func Load(path string) (*RunConfig, error) {
	config := Default()
	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}
	applyEnvOverrides(config)
	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file on top of the
// defaults.
func LoadFromFile(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return config, nil
}

// Marshal renders the configuration as YAML.
func (c *RunConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks that the configuration is valid.
func (c *RunConfig) Validate() error {
	if err := c.Biotope.Validate(); err != nil {
		return err
	}
	if c.Run.Rounds < 0 {
		return fmt.Errorf("rounds must be non-negative, got %d", c.Run.Rounds)
	}
	if c.Run.Interval < 0 {
		return fmt.Errorf("interval must be non-negative, got %v", c.Run.Interval)
	}
	if c.Sweep.Runs < 1 {
		return fmt.Errorf("sweep runs must be positive, got %d", c.Sweep.Runs)
	}
	if c.Sweep.Workers < 1 {
		return fmt.Errorf("sweep workers must be positive, got %d", c.Sweep.Workers)
	}

	if c.Output.Video != "" && (c.Output.VideoScale < 1 || c.Output.VideoFPS < 1) {
		return fmt.Errorf("video scale and fps must be positive, got %d and %d", c.Output.VideoScale, c.Output.VideoFPS)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true, "warn": true, "error": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, warn, error, or empty for default)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "text", "console":
	default:
		return fmt.Errorf("invalid log format: %s (valid: text, console)", c.Logging.Format)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *RunConfig) {
	if v := os.Getenv("GALAPAGOS_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("GALAPAGOS_LOG_FORMAT"); v != "" {
		config.Logging.Format = v
	}

	if v := os.Getenv("GALAPAGOS_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Biotope.Seed = n
		}
	}

	if v := os.Getenv("GALAPAGOS_ROUNDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Run.Rounds = n
		}
	}
}
