// Package strategy defines how a finch decides whether to clean a neighbor
// and the registry of named decision policies.
package strategy

import (
	"errors"
	"fmt"
	"slices"
)

// Action is what a finch does to the finch it meets.
type Action uint8

const (
	// Ignore leaves the other finch uncleaned.
	Ignore Action = iota
	// Clean removes the other finch's ticks.
	Clean
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Ignore:
		return "ignore"
	case Clean:
		return "clean"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// Flip returns the opposite action.
func (a Action) Flip() Action {
	if a == Clean {
		return Ignore
	}
	return Clean
}

// OpponentID is a stable handle identifying a finch for the duration of one
// simulation run. Strategies remember opponents by handle, never by pointer.
type OpponentID uint64

// Strategy is the decision policy owned by a single finch.
type Strategy interface {
	// Decide returns the action toward opponent.
	Decide(opponent OpponentID) Action
	// Respond reports the action opponent took toward the owner.
	Respond(opponent OpponentID, action Action)
	// Clone returns an independent instance with no memory.
	Clone() Strategy
	// Name is the stable kind identifier used for classification and display.
	Name() string
}

// Describer is implemented by strategies offering a human readable summary.
type Describer interface {
	Description() string
}

// ErrUnknownKind reports a lookup of a strategy name nobody registered.
var ErrUnknownKind = errors.New("unknown strategy kind")

// Factory constructs a fresh strategy instance.
type Factory func() Strategy

var registry = map[string]Factory{}

// Register adds a strategy factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	registry[name] = f
}

// New returns a fresh instance of the named strategy.
func New(name string) (Strategy, error) {
	f, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownKind)
	}
	return f(), nil
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := registry[name]
	return f, ok
}

// Names lists the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Describe returns the description of a strategy, or an empty string.
func Describe(s Strategy) string {
	if d, ok := s.(Describer); ok {
		return d.Description()
	}
	return ""
}
