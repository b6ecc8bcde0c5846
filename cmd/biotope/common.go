package main

import (
	"log/slog"

	"galapagos/internal/config"
	"galapagos/internal/logging"

	"github.com/spf13/cobra"
)

// loadConfig reads the --config file and applies the command line overrides
// that were set explicitly.
func loadConfig(cmd *cobra.Command) (*config.RunConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format, _ = flags.GetString("log-format")
	}
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		cfg.Biotope.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Lookup("rounds") != nil && flags.Changed("rounds") {
		cfg.Run.Rounds, _ = flags.GetInt("rounds")
	}
	if flags.Lookup("interval") != nil && flags.Changed("interval") {
		cfg.Run.Interval, _ = flags.GetDuration("interval")
	}
	if flags.Lookup("csv") != nil && flags.Changed("csv") {
		cfg.Output.CSV, _ = flags.GetString("csv")
	}
	if flags.Lookup("sqlite") != nil && flags.Changed("sqlite") {
		cfg.Output.SQLite, _ = flags.GetString("sqlite")
	}
	if flags.Lookup("video") != nil && flags.Changed("video") {
		cfg.Output.Video, _ = flags.GetString("video")
	}
	if flags.Lookup("video-scale") != nil && flags.Changed("video-scale") {
		cfg.Output.VideoScale, _ = flags.GetInt("video-scale")
	}
	if flags.Lookup("runs") != nil && flags.Changed("runs") {
		cfg.Sweep.Runs, _ = flags.GetInt("runs")
	}
	if flags.Lookup("workers") != nil && flags.Changed("workers") {
		cfg.Sweep.Workers, _ = flags.GetInt("workers")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.RunConfig) *slog.Logger {
	return logging.New(cfg.Logging.Format, cfg.Logging.Level, cmd.ErrOrStderr())
}
