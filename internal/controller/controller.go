// Package controller drives a simulation from outside: a fixed number of
// rounds, or rounds at an interval until the caller stops it.
package controller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"galapagos/internal/core"
)

// Controller runs rounds of a simulation. Cancellation is only observed
// between rounds; a round in progress always completes.
type Controller struct {
	sim    core.Sim
	logger *slog.Logger
	done   int
}

// New wraps sim. A nil logger discards output.
func New(sim core.Sim, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{sim: sim, logger: logger}
}

// Rounds returns the number of rounds this controller has completed.
func (c *Controller) Rounds() int { return c.done }

// RunRounds computes n rounds back to back. It returns the number completed,
// which is less than n only on error or cancellation; cancellation is
// reported as the context error.
func (c *Controller) RunRounds(ctx context.Context, n int) (int, error) {
	return c.RunPaced(ctx, n, 0)
}

// Run computes rounds every interval until ctx is cancelled. Cancellation is
// not reported as an error.
func (c *Controller) Run(ctx context.Context, interval time.Duration) (int, error) {
	return c.RunPaced(ctx, 0, interval)
}

// RunPaced computes up to n rounds, one per interval. n <= 0 means no limit
// and interval <= 0 means no pause between rounds.
func (c *Controller) RunPaced(ctx context.Context, n int, interval time.Duration) (int, error) {
	var tick <-chan time.Time
	if interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
		tick = t.C
	}

	c.logger.Debug("run started", "sim", c.sim.Name(), "rounds", n, "interval", interval)
	completed := 0
	for n <= 0 || completed < n {
		if ctx.Err() != nil {
			return completed, c.stopped(ctx, n, completed)
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return completed, c.stopped(ctx, n, completed)
			case <-tick:
			}
		}

		if err := c.sim.Step(); err != nil {
			return completed, fmt.Errorf("round %d: %w", c.done+1, err)
		}
		completed++
		c.done++
	}
	c.logger.Debug("run finished", "sim", c.sim.Name(), "rounds", completed)
	return completed, nil
}

// stopped logs a cancellation. A bounded run cut short reports the context
// error; an unbounded run treats cancellation as the normal way to end.
func (c *Controller) stopped(ctx context.Context, n, completed int) error {
	c.logger.Debug("run stopped", "sim", c.sim.Name(), "rounds", completed, "cause", context.Cause(ctx))
	if n > 0 {
		return ctx.Err()
	}
	return nil
}
