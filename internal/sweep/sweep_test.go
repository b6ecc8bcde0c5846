package sweep

import (
	"context"
	"errors"
	"testing"

	"galapagos/internal/biotope"
)

func tinyConfig() biotope.Config {
	cfg := biotope.DefaultConfig()
	cfg.Width, cfg.Height = 16, 16
	cfg.FinchesPerKind = 4
	cfg.Kinds = []string{"Cheater", "Samaritan", "Analyzer"}
	return cfg
}

func TestRunSeedsEachRun(t *testing.T) {
	res, err := Run(context.Background(), tinyConfig(), Options{Runs: 5, Rounds: 3, Workers: 2}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Runs) != 5 {
		t.Fatalf("runs = %d, want 5", len(res.Runs))
	}
	for i, r := range res.Runs {
		if r.Seed != tinyConfig().Seed+int64(i) {
			t.Fatalf("run %d seed = %d", i, r.Seed)
		}
		if r.Rounds != 3 || r.Final.Round != 3 {
			t.Fatalf("run %d rounds = %d, stats round = %d", i, r.Rounds, r.Final.Round)
		}
	}
	if len(res.Kinds) != 3 {
		t.Fatalf("kinds = %d, want 3", len(res.Kinds))
	}
	for i := 1; i < len(res.Kinds); i++ {
		if res.Kinds[i].MeanPopulation > res.Kinds[i-1].MeanPopulation {
			t.Fatalf("kinds not ordered by mean population: %+v", res.Kinds)
		}
	}
}

func TestRunMatchesSequentialRun(t *testing.T) {
	parallel, err := Run(context.Background(), tinyConfig(), Options{Runs: 4, Rounds: 5, Workers: 4}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	serial, err := Run(context.Background(), tinyConfig(), Options{Runs: 4, Rounds: 5, Workers: 1}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i := range parallel.Runs {
		if parallel.Runs[i].Final.Population() != serial.Runs[i].Final.Population() {
			t.Fatalf("run %d differs between worker counts", i)
		}
	}
}

func TestRunZeroRoundsKeepsSeedPopulation(t *testing.T) {
	res, err := Run(context.Background(), tinyConfig(), Options{Runs: 2, Workers: 1}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, k := range res.Kinds {
		if k.MeanPopulation != 4 || k.Survival != 1 || k.Best != 4 {
			t.Fatalf("unexpected summary %+v", k)
		}
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := tinyConfig()
	cfg.Kinds = nil
	if _, err := Run(context.Background(), cfg, Options{Runs: 1}, nil); !errors.Is(err, biotope.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
	if _, err := Run(context.Background(), tinyConfig(), Options{Runs: 0}, nil); err == nil {
		t.Fatalf("expected error for zero runs")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, tinyConfig(), Options{Runs: 3, Rounds: 10, Workers: 1}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
