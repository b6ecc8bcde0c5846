// Package biotope runs the finch population on a torus grid: seeding,
// the three-phase round and observer notification.
package biotope

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"galapagos/internal/core"
	"galapagos/internal/finch"
	"galapagos/internal/strategy"
	pkgcore "galapagos/pkg/core"
)

var (
	// ErrInsufficientSpace reports a seed that needs more cells than the grid has.
	ErrInsufficientSpace = errors.New("insufficient space")
	// ErrInvalidConfiguration reports a configuration rejected by Validate.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrNotSeeded reports a round requested before the first Seed.
	ErrNotSeeded = errors.New("biotope not seeded")
)

const levelTrace = slog.LevelDebug - 4

// Biotope is the simulation engine. It is not safe for concurrent use; drive
// it from a single goroutine.
type Biotope struct {
	cfg    Config
	grid   *core.Grid[finch.Finch]
	rng    *pkgcore.RNG
	logger *slog.Logger

	round  int
	nextID strategy.OpponentID
	stats  RoundStats

	observers   map[Subscription]Observer
	nextObserve Subscription
	notifying   bool
}

// New returns an unseeded biotope. A nil logger discards all output.
func New(logger *slog.Logger) *Biotope {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Biotope{
		logger:    logger,
		observers: map[Subscription]Observer{},
	}
}

// Name identifies the simulation.
func (b *Biotope) Name() string { return "galapagos" }

// Size returns the grid dimensions, or the zero size before seeding.
func (b *Biotope) Size() core.Size {
	if b.grid == nil {
		return core.Size{}
	}
	return b.grid.Size()
}

// Seeded reports whether Seed has succeeded at least once.
func (b *Biotope) Seeded() bool { return b.grid != nil }

// Config returns the configuration of the current run.
func (b *Biotope) Config() Config { return b.cfg }

// Round returns the number of rounds completed since the last Seed.
func (b *Biotope) Round() int { return b.round }

// Stats returns a copy of the statistics of the last notification.
func (b *Biotope) Stats() RoundStats { return b.stats.Clone() }

// Population returns the number of living finches.
func (b *Biotope) Population() int {
	if b.grid == nil {
		return 0
	}
	return b.grid.Occupied()
}

// Seed replaces the population with a fresh one built from cfg. On error the
// previous state is left untouched.
func (b *Biotope) Seed(cfg Config) error {
	templates, err := cfg.templates()
	if err != nil {
		return err
	}
	need := cfg.FinchesPerKind * len(templates)
	if cells := cfg.Width * cfg.Height; need > cells {
		return fmt.Errorf("%w: %d finches for %d cells", ErrInsufficientSpace, need, cells)
	}

	rng := pkgcore.NewRNG(cfg.Seed)
	grid := core.NewGrid[finch.Finch](cfg.Width, cfg.Height)
	stats := RoundStats{Kinds: make(map[string]KindStats, len(templates))}
	var nextID strategy.OpponentID

	perm := rng.Perm(cfg.Width * cfg.Height)
	for i, tmpl := range templates {
		kind := tmpl.Name()
		for j := 0; j < cfg.FinchesPerKind; j++ {
			idx := perm[i*cfg.FinchesPerKind+j]
			nextID++
			f := finch.New(nextID, cfg.InitialVitality, cfg.MaxVitality,
				rng.IntRange(cfg.MinMaxAge, cfg.MaxMaxAge), tmpl.Clone())
			if err := grid.Set(idx%cfg.Width, idx/cfg.Width, f); err != nil {
				return err
			}
		}
		stats.update(kind, func(k *KindStats) { k.Population = cfg.FinchesPerKind })
	}

	b.cfg = cfg
	b.cfg.Kinds = cfg.EnabledKinds()
	b.grid = grid
	b.rng = rng
	b.round = 0
	b.nextID = nextID
	b.stats = stats

	b.logger.Info("biotope seeded",
		"width", cfg.Width,
		"height", cfg.Height,
		"kinds", b.cfg.Kinds,
		"population", grid.Occupied(),
		"seed", cfg.Seed,
	)
	b.notify()
	return nil
}

// Reseed seeds again with the current configuration and a different seed.
func (b *Biotope) Reseed(seed int64) error {
	if b.grid == nil {
		return ErrNotSeeded
	}
	cfg := b.cfg
	cfg.Seed = seed
	return b.Seed(cfg)
}

// Step advances one round. It satisfies core.Sim.
func (b *Biotope) Step() error { return b.AdvanceRound() }

// AdvanceRound runs the interaction, aging and reproduction phases and then
// notifies observers exactly once.
func (b *Biotope) AdvanceRound() error {
	if b.grid == nil {
		return ErrNotSeeded
	}
	stats := newRoundStats(b.round+1, b.stats)

	b.interact(&stats)
	b.age(&stats)
	b.breed(&stats)

	b.grid.ForEach(func(c *core.Cell[finch.Finch]) {
		if f := c.Occupant(); f != nil {
			stats.update(f.Kind(), func(k *KindStats) { k.Population++ })
		}
	})
	b.round++
	b.stats = stats

	b.logger.Debug("round complete",
		"round", b.round,
		"population", stats.Population(),
		"born", stats.Born(),
		"died", stats.Deaths(),
		"interactions", stats.Interactions,
	)
	b.notify()
	return nil
}

// interact pairs every finch with at most one partner per round.
func (b *Biotope) interact(stats *RoundStats) {
	interacted := make([]bool, b.grid.Size().Cells())
	for _, c := range b.grid.Shuffled(b.rng) {
		self := c.Occupant()
		if self == nil || interacted[b.grid.IndexOf(c)] {
			continue
		}
		var partner *core.Cell[finch.Finch]
		for _, n := range b.grid.OccupiedAround(c, b.rng) {
			if !interacted[b.grid.IndexOf(n)] {
				partner = n
				break
			}
		}
		if partner == nil {
			continue
		}
		other := partner.Occupant()

		mine := self.Decide(other.ID())
		theirs := other.Decide(self.ID())
		self.Respond(other.ID(), theirs)
		other.Respond(self.ID(), mine)

		b.settle(self, mine, theirs)
		b.settle(other, theirs, mine)

		interacted[b.grid.IndexOf(c)] = true
		interacted[b.grid.IndexOf(partner)] = true
		stats.Interactions++

		if b.logger.Enabled(context.Background(), levelTrace) {
			b.logger.Log(context.Background(), levelTrace, "interaction",
				"a", self.ID(), "a_kind", self.Kind(), "a_action", mine,
				"b", other.ID(), "b_kind", other.Kind(), "b_action", theirs,
			)
		}
	}
}

// settle applies the vitality effects of one exchange to f.
func (b *Biotope) settle(f *finch.Finch, given, received strategy.Action) {
	if given == strategy.Clean && b.cfg.CleaningCost != 0 {
		f.ChangeVitality(-b.cfg.CleaningCost)
	}
	if received == strategy.Clean {
		f.ChangeVitality(b.cfg.VitalityPerRound)
	}
}

// age makes every finch older and removes the dead.
func (b *Biotope) age(stats *RoundStats) {
	b.grid.ForEach(func(c *core.Cell[finch.Finch]) {
		f := c.Occupant()
		if f == nil {
			return
		}
		if b.cfg.UpkeepPerRound != 0 {
			f.ChangeVitality(-b.cfg.UpkeepPerRound)
		}
		f.MakeOlder()
		switch f.Status() {
		case finch.DeadVitality:
			stats.update(f.Kind(), func(k *KindStats) { k.DiedOfVitality++ })
			b.grid.Put(c, nil)
		case finch.DeadAge:
			stats.update(f.Kind(), func(k *KindStats) { k.DiedOfAge++ })
			b.grid.Put(c, nil)
		}
	})
}

// breed gives every finch alive at the start of the phase one chance to
// place a child in an empty neighbor cell.
func (b *Biotope) breed(stats *RoundStats) {
	var parents []*core.Cell[finch.Finch]
	for _, c := range b.grid.Shuffled(b.rng) {
		if !c.Empty() {
			parents = append(parents, c)
		}
	}
	for _, c := range parents {
		free := b.grid.EmptyAround(c, b.rng)
		if len(free) == 0 || !b.rng.Chance(b.cfg.BreedingProbability) {
			continue
		}
		parent := c.Occupant()
		b.grid.Put(free[0], b.spawn(parent.Strategy()))
		stats.update(parent.Kind(), func(k *KindStats) { k.Born++ })
	}
}

// spawn creates a newborn finch with a fresh copy of tmpl.
func (b *Biotope) spawn(tmpl strategy.Strategy) *finch.Finch {
	b.nextID++
	return finch.New(b.nextID, b.cfg.InitialVitality, b.cfg.MaxVitality,
		b.rng.IntRange(b.cfg.MinMaxAge, b.cfg.MaxMaxAge), tmpl.Clone())
}

// PlaceFinch puts a fresh finch using a clone of tmpl at (x, y). It reports
// false, changing nothing, when the biotope is unseeded, the cell is occupied
// or the coordinates are out of bounds.
func (b *Biotope) PlaceFinch(x, y int, tmpl strategy.Strategy) bool {
	if b.grid == nil || tmpl == nil {
		return false
	}
	c, err := b.grid.At(x, y)
	if err != nil || !c.Empty() {
		return false
	}
	f := b.spawn(tmpl)
	b.grid.Put(c, f)
	b.stats.update(f.Kind(), func(k *KindStats) { k.Population++ })
	b.logger.Debug("finch placed", "x", x, "y", y, "kind", f.Kind())
	b.notify()
	return true
}

// PlaceKind is PlaceFinch for a registered strategy name.
func (b *Biotope) PlaceKind(x, y int, kind string) (bool, error) {
	tmpl, err := strategy.New(kind)
	if err != nil {
		return false, err
	}
	return b.PlaceFinch(x, y, tmpl), nil
}

// FinchAt returns the finch at (x, y), or nil for an empty cell.
func (b *Biotope) FinchAt(x, y int) (*finch.Finch, error) {
	if b.grid == nil {
		return nil, ErrNotSeeded
	}
	c, err := b.grid.At(x, y)
	if err != nil {
		return nil, err
	}
	return c.Occupant(), nil
}
