// Package finch models a single simulated bird: its vitality, its age and
// the decision strategy it owns.
package finch

import "galapagos/internal/strategy"

// Status reports whether a finch is alive and, if not, what killed it.
type Status uint8

const (
	// Alive finches take part in the next round.
	Alive Status = iota
	// DeadVitality finches ran out of vitality (too many ticks).
	DeadVitality
	// DeadAge finches reached their maximum age.
	DeadAge
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Alive:
		return "alive"
	case DeadVitality:
		return "dead_vitality"
	case DeadAge:
		return "dead_age"
	default:
		return "unknown"
	}
}

// Finch is a single agent. It owns its strategy; no two finches share one.
type Finch struct {
	id          strategy.OpponentID
	vitality    int
	maxVitality int
	age         int
	maxAge      int
	behavior    strategy.Strategy
}

// New makes a finch aged zero. Vitality above maxVitality is clamped.
func New(id strategy.OpponentID, vitality, maxVitality, maxAge int, behavior strategy.Strategy) *Finch {
	if vitality > maxVitality {
		vitality = maxVitality
	}
	return &Finch{
		id:          id,
		vitality:    vitality,
		maxVitality: maxVitality,
		maxAge:      maxAge,
		behavior:    behavior,
	}
}

// ID is the handle other finches remember this one by.
func (f *Finch) ID() strategy.OpponentID { return f.id }

// Vitality returns the current vitality.
func (f *Finch) Vitality() int { return f.vitality }

// MaxVitality returns the vitality ceiling.
func (f *Finch) MaxVitality() int { return f.maxVitality }

// Age returns the number of rounds survived.
func (f *Finch) Age() int { return f.age }

// MaxAge returns the age at which the finch dies.
func (f *Finch) MaxAge() int { return f.maxAge }

// Strategy returns the owned strategy.
func (f *Finch) Strategy() strategy.Strategy { return f.behavior }

// Kind returns the name of the owned strategy.
func (f *Finch) Kind() string { return f.behavior.Name() }

// Status derives the life state. Running out of vitality takes precedence
// over old age.
func (f *Finch) Status() Status {
	if f.vitality <= 0 {
		return DeadVitality
	}
	if f.age >= f.maxAge {
		return DeadAge
	}
	return Alive
}

// ChangeVitality adds d, capping at the maximum. There is no floor.
func (f *Finch) ChangeVitality(d int) {
	f.vitality += d
	if f.vitality > f.maxVitality {
		f.vitality = f.maxVitality
	}
}

// MakeOlder ages the finch by one round.
func (f *Finch) MakeOlder() { f.age++ }

// Decide asks the owned strategy what to do to other.
func (f *Finch) Decide(other strategy.OpponentID) strategy.Action {
	return f.behavior.Decide(other)
}

// Respond tells the owned strategy what other did to this finch.
func (f *Finch) Respond(other strategy.OpponentID, action strategy.Action) {
	f.behavior.Respond(other, action)
}
