package strategy

// Cheater never cleans.
type Cheater struct{}

func (Cheater) Decide(OpponentID) Action   { return Ignore }
func (Cheater) Respond(OpponentID, Action) {}
func (Cheater) Clone() Strategy            { return Cheater{} }
func (Cheater) Name() string               { return "Cheater" }
func (Cheater) Description() string        { return "Never cleans another finch." }

// Samaritan always cleans.
type Samaritan struct{}

func (Samaritan) Decide(OpponentID) Action   { return Clean }
func (Samaritan) Respond(OpponentID, Action) {}
func (Samaritan) Clone() Strategy            { return Samaritan{} }
func (Samaritan) Name() string               { return "Samaritan" }
func (Samaritan) Description() string        { return "Always cleans the finch it meets." }

// FlipFlopper alternates between ignoring and cleaning regardless of who it
// meets. The zero value starts with Ignore.
type FlipFlopper struct {
	next Action
}

// NewFlipFlopper returns a FlipFlopper whose first decision is Ignore.
func NewFlipFlopper() *FlipFlopper { return &FlipFlopper{next: Ignore} }

// Decide returns the current action and flips for the next meeting.
func (f *FlipFlopper) Decide(OpponentID) Action {
	a := f.next
	f.next = a.Flip()
	return a
}

func (f *FlipFlopper) Respond(OpponentID, Action) {}
func (f *FlipFlopper) Clone() Strategy            { return NewFlipFlopper() }
func (f *FlipFlopper) Name() string               { return "FlipFlopper" }
func (f *FlipFlopper) Description() string {
	return "Alternates between cleaning and ignoring regardless of the opponent."
}

func init() {
	Register("Cheater", func() Strategy { return Cheater{} })
	Register("Samaritan", func() Strategy { return Samaritan{} })
	Register("FlipFlopper", func() Strategy { return NewFlipFlopper() })
}
