package strategy

import "testing"

func TestMemoryPairsActionWithReaction(t *testing.T) {
	m := NewMemory()
	m.RecordAction(4, Clean)
	m.RecordReaction(4, Ignore)
	m.RecordAction(4, Ignore)
	m.RecordReaction(4, Ignore)

	got := m.Recall(4)
	want := []Interaction{{Clean, Ignore}, {Ignore, Ignore}}
	if len(got) != len(want) {
		t.Fatalf("Recall len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Recall[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMemoryDropsReactionWithoutAction(t *testing.T) {
	m := NewMemory()
	m.RecordReaction(2, Clean)
	if len(m.Recall(2)) != 0 {
		t.Fatal("a reaction without a pending action must not create history")
	}
	if m.Opponents() != 0 {
		t.Fatalf("Opponents = %d, want 0", m.Opponents())
	}
}

func TestAnalyzerKeepsOnlyPairedHistory(t *testing.T) {
	a := NewAnalyzer()
	for i := 0; i < 50; i++ {
		a.Decide(5)
		a.Respond(5, Ignore)
	}
	// Reactions without a matching decision are not stored.
	a.Respond(6, Clean)
	if got := len(a.memory.Recall(5)); got != 50 {
		t.Fatalf("history len = %d, want 50", got)
	}
	if a.memory.Opponents() != 1 {
		t.Fatalf("Opponents = %d, want 1", a.memory.Opponents())
	}
	// The fallback only counts.
	p := a.fallback.(*Predictor)
	if tally := p.seen[5]; tally.Ignores != 50 || tally.Cleans != 0 || tally.Last != Ignore {
		t.Fatalf("tally = %+v", tally)
	}
}

func TestTalliesRecord(t *testing.T) {
	ts := Tallies{}
	if ts[1].Seen() {
		t.Fatal("empty tally reports seen")
	}
	ts.Record(1, Clean)
	ts.Record(1, Ignore)
	ts.Record(1, Clean)
	want := Tally{Cleans: 2, Ignores: 1, Last: Clean}
	if ts[1] != want {
		t.Fatalf("tally = %+v, want %+v", ts[1], want)
	}
}
