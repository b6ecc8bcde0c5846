// Package sweep runs a tournament: many independently seeded biotopes with the
// same configuration, computed in parallel, summarized per strategy kind.
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"galapagos/internal/biotope"
	"galapagos/internal/controller"
	"golang.org/x/sync/errgroup"
)

// Options controls the size of a sweep.
type Options struct {
	Runs    int
	Rounds  int
	Workers int
}

// RunResult is the final state of one biotope.
type RunResult struct {
	Seed   int64
	Rounds int
	Final  biotope.RoundStats
}

// KindResult aggregates one strategy kind over all runs.
type KindResult struct {
	Kind           string
	MeanPopulation float64
	// Survival is the fraction of runs in which the kind was still alive.
	Survival float64
	Best     int
}

// Result is the outcome of a sweep, kinds ordered by mean final population.
type Result struct {
	Runs    []RunResult
	Kinds   []KindResult
	Elapsed time.Duration
}

// Run seeds opts.Runs biotopes with base, using seeds base.Seed, base.Seed+1,
// and so on, and advances each by opts.Rounds rounds on at most opts.Workers
// goroutines. The first error cancels the remaining runs.
func Run(ctx context.Context, base biotope.Config, opts Options, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Runs < 1 {
		return Result{}, fmt.Errorf("sweep needs at least one run, got %d", opts.Runs)
	}
	if opts.Workers < 1 {
		opts.Workers = runtime.NumCPU()
	}
	if err := base.Validate(); err != nil {
		return Result{}, err
	}

	logger.Info("sweep started", "runs", opts.Runs, "workers", opts.Workers, "rounds", opts.Rounds)
	start := time.Now()

	runs := make([]RunResult, opts.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range runs {
		cfg := base
		cfg.Seed = base.Seed + int64(i)
		g.Go(func() error {
			res, err := runOne(ctx, cfg, opts.Rounds)
			if err != nil {
				return fmt.Errorf("seed %d: %w", cfg.Seed, err)
			}
			runs[i] = res
			logger.Debug("sweep run finished", "seed", cfg.Seed, "population", res.Final.Population())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{
		Runs:    runs,
		Kinds:   summarize(base.EnabledKinds(), runs),
		Elapsed: time.Since(start),
	}
	logger.Info("sweep finished", "elapsed", res.Elapsed.Round(time.Millisecond))
	return res, nil
}

func runOne(ctx context.Context, cfg biotope.Config, rounds int) (RunResult, error) {
	b := biotope.New(nil)
	if err := b.Seed(cfg); err != nil {
		return RunResult{}, err
	}
	if rounds > 0 {
		if _, err := controller.New(b, nil).RunRounds(ctx, rounds); err != nil {
			return RunResult{}, err
		}
	}
	return RunResult{Seed: cfg.Seed, Rounds: b.Round(), Final: b.Stats()}, nil
}

func summarize(kinds []string, runs []RunResult) []KindResult {
	out := make([]KindResult, 0, len(kinds))
	for _, kind := range kinds {
		kr := KindResult{Kind: kind}
		total, alive := 0, 0
		for _, r := range runs {
			pop := r.Final.Kinds[kind].Population
			total += pop
			if pop > 0 {
				alive++
			}
			if pop > kr.Best {
				kr.Best = pop
			}
		}
		kr.MeanPopulation = float64(total) / float64(len(runs))
		kr.Survival = float64(alive) / float64(len(runs))
		out = append(out, kr)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MeanPopulation > out[j].MeanPopulation })
	return out
}
