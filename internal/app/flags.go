package app

import (
	"flag"
	"time"

	"galapagos/internal/biotope"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Scale    int
	TPS      int
	HUDWidth int
	Interval time.Duration
	Batch    int

	LogLevel  string
	LogFormat string
	CSVPath   string

	Biotope biotope.Config
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scale:     6,
		TPS:       60,
		HUDWidth:  260,
		Interval:  100 * time.Millisecond,
		Batch:     10,
		LogLevel:  "info",
		LogFormat: "console",
		CSVPath:   "galapagos.csv",
		Biotope:   biotope.DefaultConfig(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "statistics panel width (0 hides it)")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between rounds")
	fs.IntVar(&c.Batch, "batch", c.Batch, "rounds computed by the C key")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: info, debug or trace")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: console or text")
	fs.StringVar(&c.CSVPath, "csv", c.CSVPath, "statistics file written while logging is on")

	b := &c.Biotope
	fs.IntVar(&b.Width, "w", b.Width, "grid width")
	fs.IntVar(&b.Height, "h", b.Height, "grid height")
	fs.Int64Var(&b.Seed, "seed", b.Seed, "seed for the biotope")
	fs.Float64Var(&b.BreedingProbability, "breeding", b.BreedingProbability, "breeding probability per round")
	fs.IntVar(&b.FinchesPerKind, "finches", b.FinchesPerKind, "initial finches per strategy")
	fs.IntVar(&b.InitialVitality, "vitality", b.InitialVitality, "initial vitality")
	fs.IntVar(&b.MaxVitality, "max-vitality", b.MaxVitality, "maximum vitality")
	fs.IntVar(&b.VitalityPerRound, "gain", b.VitalityPerRound, "vitality gained when cleaned")
	fs.IntVar(&b.MinMaxAge, "min-age", b.MinMaxAge, "lower bound of the maximum age")
	fs.IntVar(&b.MaxMaxAge, "max-age", b.MaxMaxAge, "upper bound of the maximum age")
	fs.Func("kinds", "comma separated strategies (default all)", func(s string) error {
		b.Kinds = biotope.FromMap(map[string]string{"kinds": s}).Kinds
		return nil
	})
}
