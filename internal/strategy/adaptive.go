package strategy

// Payoff weights the Analyzer assigns to each remembered outcome.
const (
	CleanedGotCleaned = 1
	CleanedGotIgnored = -2
	IgnoredGotCleaned = 3
	IgnoredGotIgnored = -1
)

// Predictor expects an opponent to repeat whatever it has done most often to
// this finch and answers in kind. Without a majority it cleans.
type Predictor struct {
	seen Tallies
}

// NewPredictor returns a Predictor that has met nobody.
func NewPredictor() *Predictor { return &Predictor{seen: Tallies{}} }

// Predict returns the action opponent is expected to take next.
func (p *Predictor) Predict(opponent OpponentID) Action {
	if t := p.seen[opponent]; t.Ignores > t.Cleans {
		return Ignore
	}
	return Clean
}

// Decide answers the predicted action in kind.
func (p *Predictor) Decide(opponent OpponentID) Action {
	return p.Predict(opponent)
}

// Respond counts the opponent's action.
func (p *Predictor) Respond(opponent OpponentID, action Action) {
	p.seen.Record(opponent, action)
}

func (p *Predictor) Clone() Strategy { return NewPredictor() }
func (p *Predictor) Name() string    { return "Predictor" }
func (p *Predictor) Description() string {
	return "Matches the action an opponent has most often shown it."
}

// Analyzer estimates the payoff of cleaning and of ignoring from its full
// history with an opponent and picks the better one. Ties and unknown
// opponents defer to a Predictor, which is consulted on every decision.
type Analyzer struct {
	memory   *Memory
	fallback Strategy
}

// NewAnalyzer returns an Analyzer with empty memory and a fresh Predictor.
func NewAnalyzer() *Analyzer {
	return &Analyzer{memory: NewMemory(), fallback: NewPredictor()}
}

// Score sums the payoff weights of history per action taken.
func Score(history []Interaction) (cleanScore, ignoreScore int) {
	for _, in := range history {
		switch in.Action {
		case Clean:
			if in.Reaction == Clean {
				cleanScore += CleanedGotCleaned
			} else {
				cleanScore += CleanedGotIgnored
			}
		case Ignore:
			if in.Reaction == Clean {
				ignoreScore += IgnoredGotCleaned
			} else {
				ignoreScore += IgnoredGotIgnored
			}
		}
	}
	return cleanScore, ignoreScore
}

// Decide picks the action with the higher score, or the fallback's choice on
// a tie or an empty history, and remembers it until the reaction arrives.
func (a *Analyzer) Decide(opponent OpponentID) Action {
	choice := a.fallback.Decide(opponent)
	if history := a.memory.Recall(opponent); len(history) > 0 {
		cleanScore, ignoreScore := Score(history)
		switch {
		case cleanScore > ignoreScore:
			choice = Clean
		case ignoreScore > cleanScore:
			choice = Ignore
		}
	}
	a.memory.RecordAction(opponent, choice)
	return choice
}

// Respond completes the pending interaction and informs the fallback.
func (a *Analyzer) Respond(opponent OpponentID, action Action) {
	a.memory.RecordReaction(opponent, action)
	a.fallback.Respond(opponent, action)
}

func (a *Analyzer) Clone() Strategy { return NewAnalyzer() }
func (a *Analyzer) Name() string    { return "Analyzer" }
func (a *Analyzer) Description() string {
	return "Picks the action that has paid off best against a given finch."
}

// TitForTat cleans a stranger and afterwards repeats the opponent's last
// action toward it.
type TitForTat struct {
	seen Tallies
}

// NewTitForTat returns a TitForTat that has met nobody.
func NewTitForTat() *TitForTat { return &TitForTat{seen: Tallies{}} }

// Decide cleans a stranger and mirrors anyone else.
func (t *TitForTat) Decide(opponent OpponentID) Action {
	if s := t.seen[opponent]; s.Seen() {
		return s.Last
	}
	return Clean
}

// Respond remembers the opponent's latest action.
func (t *TitForTat) Respond(opponent OpponentID, action Action) {
	t.seen.Record(opponent, action)
}

func (t *TitForTat) Clone() Strategy { return NewTitForTat() }
func (t *TitForTat) Name() string    { return "TitForTat" }
func (t *TitForTat) Description() string {
	return "Cleans strangers, then returns whatever it last received."
}

// Grudger cleans every opponent until that opponent ignores it once.
type Grudger struct {
	grudges map[OpponentID]bool
}

// NewGrudger returns a Grudger holding no grudges.
func NewGrudger() *Grudger { return &Grudger{grudges: map[OpponentID]bool{}} }

// Decide ignores opponents it holds a grudge against.
func (g *Grudger) Decide(opponent OpponentID) Action {
	if g.grudges[opponent] {
		return Ignore
	}
	return Clean
}

// Respond starts a grudge when ignored.
func (g *Grudger) Respond(opponent OpponentID, action Action) {
	if action == Ignore {
		g.grudges[opponent] = true
	}
}

func (g *Grudger) Clone() Strategy { return NewGrudger() }
func (g *Grudger) Name() string    { return "Grudger" }
func (g *Grudger) Description() string {
	return "Cleans until ignored once, then never cleans that finch again."
}

func init() {
	Register("Predictor", func() Strategy { return NewPredictor() })
	Register("Analyzer", func() Strategy { return NewAnalyzer() })
	Register("TitForTat", func() Strategy { return NewTitForTat() })
	Register("Grudger", func() Strategy { return NewGrudger() })
}
