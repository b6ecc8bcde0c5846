package statlog

import (
	"fmt"
	"strings"
	"time"

	"galapagos/internal/biotope"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver
)

// Store keeps the statistics of many runs in one SQLite database.
type Store struct {
	conn *sqlx.DB
}

// RunID identifies one seeded run inside a Store.
type RunID int64

// RunRow describes a recorded run.
type RunRow struct {
	ID        RunID  `db:"id"`
	StartedAt string `db:"started_at"`
	Seed      int64  `db:"seed"`
	Width     int    `db:"width"`
	Height    int    `db:"height"`
	Kinds     string `db:"kinds"`
}

// HistoryRow is the state of one kind after one round.
type HistoryRow struct {
	Round          int    `db:"round"`
	Kind           string `db:"kind"`
	Population     int    `db:"population"`
	Born           int    `db:"born"`
	DiedOfAge      int    `db:"died_age"`
	DiedOfVitality int    `db:"died_vitality"`
	Interactions   int    `db:"interactions"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	conn.SetMaxOpenConns(1)

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TEXT NOT NULL,
		seed INTEGER NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		kinds TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS rounds (
		run_id INTEGER NOT NULL REFERENCES runs(id),
		round INTEGER NOT NULL,
		kind TEXT NOT NULL,
		population INTEGER NOT NULL,
		born INTEGER NOT NULL,
		died_age INTEGER NOT NULL,
		died_vitality INTEGER NOT NULL,
		interactions INTEGER NOT NULL,
		PRIMARY KEY (run_id, round, kind)
	);

	CREATE INDEX IF NOT EXISTS idx_rounds_kind ON rounds(run_id, kind);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// BeginRun registers a new run seeded with cfg.
func (s *Store) BeginRun(cfg biotope.Config) (RunID, error) {
	res, err := s.conn.Exec(
		`INSERT INTO runs (started_at, seed, width, height, kinds) VALUES (?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), cfg.Seed, cfg.Width, cfg.Height,
		strings.Join(cfg.EnabledKinds(), ","),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return RunID(id), nil
}

// Record stores stats for every kind it contains. Recording the same round
// twice replaces the earlier rows.
func (s *Store) Record(run RunID, stats biotope.RoundStats) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT OR REPLACE INTO rounds
		(run_id, round, kind, population, born, died_age, died_vitality, interactions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, kind := range stats.Names() {
		k := stats.Kinds[kind]
		if _, err := stmt.Exec(run, stats.Round, kind, k.Population, k.Born,
			k.DiedOfAge, k.DiedOfVitality, stats.Interactions); err != nil {
			return fmt.Errorf("insert round %d %s: %w", stats.Round, kind, err)
		}
	}
	return tx.Commit()
}

// Runs lists recorded runs, oldest first.
func (s *Store) Runs() ([]RunRow, error) {
	var rows []RunRow
	err := s.conn.Select(&rows,
		`SELECT id, started_at, seed, width, height, kinds FROM runs ORDER BY id`)
	return rows, err
}

// History returns the rows of one run in round order. An empty kind returns
// every kind.
func (s *Store) History(run RunID, kind string) ([]HistoryRow, error) {
	var rows []HistoryRow
	query := `SELECT round, kind, population, born, died_age, died_vitality, interactions
		FROM rounds WHERE run_id = ?`
	args := []any{run}
	if kind != "" {
		query += ` AND kind = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY round, kind`
	err := s.conn.Select(&rows, query, args...)
	return rows, err
}

// LastRound returns the highest round recorded for run, or -1 if none.
func (s *Store) LastRound(run RunID) (int, error) {
	var last *int
	if err := s.conn.Get(&last, `SELECT MAX(round) FROM rounds WHERE run_id = ?`, run); err != nil {
		return 0, err
	}
	if last == nil {
		return -1, nil
	}
	return *last, nil
}

// Recorder adapts a Store run to the biotope observer interface and keeps the
// first error, since observers cannot return one.
type Recorder struct {
	store *Store
	run   RunID
	err   error
}

// NewRecorder starts a run for cfg and returns its observer adapter.
func (s *Store) NewRecorder(cfg biotope.Config) (*Recorder, error) {
	run, err := s.BeginRun(cfg)
	if err != nil {
		return nil, err
	}
	return &Recorder{store: s, run: run}, nil
}

// Run returns the run the recorder writes to.
func (r *Recorder) Run() RunID { return r.run }

// Err returns the first error met while recording.
func (r *Recorder) Err() error { return r.err }

// Observer returns the callback to subscribe.
func (r *Recorder) Observer() biotope.Observer {
	return func(v *biotope.View) {
		if r.err != nil {
			return
		}
		r.err = r.store.Record(r.run, v.Stats())
	}
}
