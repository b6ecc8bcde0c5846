package biotope

import (
	"fmt"
	"strconv"
	"strings"

	"galapagos/internal/strategy"
)

// Config holds the parameters a biotope is seeded with. They stay fixed for
// the lifetime of one run.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	// BreedingProbability is the chance per round that a finch with an empty
	// neighbor cell produces offspring.
	BreedingProbability float64 `yaml:"breeding_probability"`

	MaxVitality     int `yaml:"max_vitality"`
	InitialVitality int `yaml:"initial_vitality"`
	// VitalityPerRound is gained by a finch whenever it gets cleaned.
	VitalityPerRound int `yaml:"vitality_per_round"`
	// UpkeepPerRound is lost by every finch during the aging phase.
	UpkeepPerRound int `yaml:"upkeep_per_round"`
	// CleaningCost is paid by a finch each time it chooses to clean.
	CleaningCost int `yaml:"cleaning_cost"`

	// Each new finch draws its maximum age uniformly from [MinMaxAge, MaxMaxAge].
	MinMaxAge int `yaml:"min_max_age"`
	MaxMaxAge int `yaml:"max_max_age"`

	FinchesPerKind int      `yaml:"finches_per_kind"`
	Kinds          []string `yaml:"kinds"`
}

// DefaultConfig returns the standard configuration with every registered
// strategy enabled.
func DefaultConfig() Config {
	return Config{
		Width:               100,
		Height:              100,
		Seed:                1337,
		BreedingProbability: 0.33,
		MaxVitality:         10,
		InitialVitality:     5,
		VitalityPerRound:    3,
		MinMaxAge:           10,
		MaxMaxAge:           20,
		FinchesPerKind:      30,
		Kinds:               strategy.Names(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse are ignored; range checks are left to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	ints := map[string]*int{
		"w":                  &c.Width,
		"h":                  &c.Height,
		"max_vitality":       &c.MaxVitality,
		"initial_vitality":   &c.InitialVitality,
		"vitality_per_round": &c.VitalityPerRound,
		"upkeep_per_round":   &c.UpkeepPerRound,
		"cleaning_cost":      &c.CleaningCost,
		"min_max_age":        &c.MinMaxAge,
		"max_max_age":        &c.MaxMaxAge,
		"finches_per_kind":   &c.FinchesPerKind,
	}
	for key, dst := range ints {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["breeding_probability"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.BreedingProbability = parsed
		}
	}
	if v, ok := cfg["kinds"]; ok {
		var kinds []string
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				kinds = append(kinds, k)
			}
		}
		c.Kinds = kinds
	}
	return c
}

// Validate checks the configuration without touching any biotope state.
func (c Config) Validate() error {
	_, err := c.templates()
	return err
}

// EnabledKinds returns the configured kinds with duplicates removed, in
// configuration order.
func (c Config) EnabledKinds() []string {
	seen := make(map[string]bool, len(c.Kinds))
	out := make([]string, 0, len(c.Kinds))
	for _, k := range c.Kinds {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// templates validates c and returns one strategy prototype per enabled kind.
func (c Config) templates() ([]strategy.Strategy, error) {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
	}
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return nil, invalid("size %dx%d must be positive", c.Width, c.Height)
	case c.BreedingProbability < 0 || c.BreedingProbability > 1:
		return nil, invalid("breeding probability %g outside [0,1]", c.BreedingProbability)
	case c.MaxVitality <= 0:
		return nil, invalid("max vitality %d must be positive", c.MaxVitality)
	case c.InitialVitality > c.MaxVitality:
		return nil, invalid("initial vitality %d exceeds max vitality %d", c.InitialVitality, c.MaxVitality)
	case c.MinMaxAge < 1:
		return nil, invalid("min max age %d must be at least 1", c.MinMaxAge)
	case c.MinMaxAge > c.MaxMaxAge:
		return nil, invalid("min max age %d exceeds max max age %d", c.MinMaxAge, c.MaxMaxAge)
	case c.FinchesPerKind < 0:
		return nil, invalid("finches per kind %d is negative", c.FinchesPerKind)
	}
	kinds := c.EnabledKinds()
	if len(kinds) == 0 {
		return nil, invalid("no strategy kinds enabled")
	}
	out := make([]strategy.Strategy, 0, len(kinds))
	for _, k := range kinds {
		s, err := strategy.New(k)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
		out = append(out, s)
	}
	return out, nil
}
