package strategy

// Interaction pairs the action a finch took with the reaction it received in
// the same meeting.
type Interaction struct {
	Action   Action
	Reaction Action
}

// Memory keeps the per-opponent interaction history of a single finch.
// Histories are never evicted; opponent handles are scoped to one run.
type Memory struct {
	pending map[OpponentID]Action
	history map[OpponentID][]Interaction
}

// NewMemory returns an empty memory.
func NewMemory() *Memory {
	return &Memory{
		pending: map[OpponentID]Action{},
		history: map[OpponentID][]Interaction{},
	}
}

// RecordAction remembers the action just chosen toward opponent until the
// matching reaction arrives.
func (m *Memory) RecordAction(opponent OpponentID, action Action) {
	m.pending[opponent] = action
}

// RecordReaction stores the reaction of opponent. When an action toward the
// opponent is pending, the pair is appended to the interaction history;
// otherwise the reaction is dropped.
func (m *Memory) RecordReaction(opponent OpponentID, reaction Action) {
	action, ok := m.pending[opponent]
	if !ok {
		return
	}
	delete(m.pending, opponent)
	m.history[opponent] = append(m.history[opponent], Interaction{Action: action, Reaction: reaction})
}

// Recall returns the interaction history with opponent, oldest first.
func (m *Memory) Recall(opponent OpponentID) []Interaction {
	return m.history[opponent]
}

// Opponents returns the number of distinct opponents with a history.
func (m *Memory) Opponents() int {
	return len(m.history)
}

// Tally counts the actions one opponent has taken toward the owner.
type Tally struct {
	Cleans  int
	Ignores int
	Last    Action
}

// Seen reports whether the opponent was ever met.
func (t Tally) Seen() bool { return t.Cleans+t.Ignores > 0 }

// Tallies keeps one fixed-size Tally per opponent.
type Tallies map[OpponentID]Tally

// Record counts reaction as the latest action of opponent.
func (ts Tallies) Record(opponent OpponentID, reaction Action) {
	t := ts[opponent]
	if reaction == Clean {
		t.Cleans++
	} else {
		t.Ignores++
	}
	t.Last = reaction
	ts[opponent] = t
}
