package biotope

import (
	"slices"
	"testing"

	"galapagos/internal/strategy"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if !slices.Equal(cfg.Kinds, strategy.Names()) {
		t.Fatalf("default kinds = %v", cfg.Kinds)
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                    "40",
		"h":                    "30",
		"seed":                 "7",
		"breeding_probability": "0.5",
		"finches_per_kind":     "3",
		"kinds":                "Cheater, Analyzer,,",
		"max_vitality":         "oops",
	})
	if cfg.Width != 40 || cfg.Height != 30 || cfg.Seed != 7 {
		t.Fatalf("size/seed not applied: %+v", cfg)
	}
	if cfg.BreedingProbability != 0.5 || cfg.FinchesPerKind != 3 {
		t.Fatalf("params not applied: %+v", cfg)
	}
	if !slices.Equal(cfg.Kinds, []string{"Cheater", "Analyzer"}) {
		t.Fatalf("kinds = %v", cfg.Kinds)
	}
	if cfg.MaxVitality != DefaultConfig().MaxVitality {
		t.Fatalf("invalid value should be ignored, got %d", cfg.MaxVitality)
	}
}

func TestFromMapNil(t *testing.T) {
	if cfg := FromMap(nil); cfg.Width != DefaultConfig().Width {
		t.Fatalf("nil map should yield defaults")
	}
}
