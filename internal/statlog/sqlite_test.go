package statlog

import (
	"path/filepath"
	"testing"

	"galapagos/internal/biotope"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRecordAndHistory(t *testing.T) {
	s := openStore(t)
	b, cfg := seededBiotope(t)

	rec, err := s.NewRecorder(cfg)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	b.Subscribe(rec.Observer())
	if err := b.Seed(cfg); err != nil {
		t.Fatalf("seed: %v", err)
	}
	for i := 0; i < 4; i++ {
		if err := b.AdvanceRound(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	if err := rec.Err(); err != nil {
		t.Fatalf("recorder: %v", err)
	}

	rows, err := s.History(rec.Run(), "Cheater")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(rows))
	}
	for i, r := range rows {
		if r.Round != i || r.Kind != "Cheater" {
			t.Fatalf("row %d = %+v", i, r)
		}
	}
	if rows[0].Population != 5 {
		t.Fatalf("seed population = %d, want 5", rows[0].Population)
	}
	if got := b.Stats().Kinds["Cheater"].Population; rows[4].Population != got {
		t.Fatalf("last population = %d, want %d", rows[4].Population, got)
	}

	all, err := s.History(rec.Run(), "")
	if err != nil {
		t.Fatalf("History all: %v", err)
	}
	if len(all) != 10 {
		t.Fatalf("all rows = %d, want 10", len(all))
	}

	last, err := s.LastRound(rec.Run())
	if err != nil || last != 4 {
		t.Fatalf("LastRound = %d, %v", last, err)
	}
}

func TestStoreRuns(t *testing.T) {
	s := openStore(t)
	cfg := biotope.DefaultConfig()
	first, err := s.BeginRun(cfg)
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	cfg.Seed = 9
	second, err := s.BeginRun(cfg)
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if first == second {
		t.Fatalf("run ids collide")
	}
	runs, err := s.Runs()
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 2 || runs[1].Seed != 9 || runs[1].ID != second {
		t.Fatalf("runs = %+v", runs)
	}
	if last, err := s.LastRound(second); err != nil || last != -1 {
		t.Fatalf("LastRound of empty run = %d, %v", last, err)
	}
}

func TestStoreRecordReplacesRound(t *testing.T) {
	s := openStore(t)
	run, err := s.BeginRun(biotope.DefaultConfig())
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	stats := biotope.RoundStats{Round: 1, Kinds: map[string]biotope.KindStats{"Grudger": {Population: 3}}}
	if err := s.Record(run, stats); err != nil {
		t.Fatalf("Record: %v", err)
	}
	stats.Kinds["Grudger"] = biotope.KindStats{Population: 8}
	if err := s.Record(run, stats); err != nil {
		t.Fatalf("Record: %v", err)
	}
	rows, err := s.History(run, "Grudger")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(rows) != 1 || rows[0].Population != 8 {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.BeginRun(biotope.DefaultConfig()); err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	runs, err := s.Runs()
	if err != nil || len(runs) != 1 {
		t.Fatalf("runs after reopen = %v, %v", runs, err)
	}
}
