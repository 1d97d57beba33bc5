// Package store persists simulation runs in SQLite (pure Go driver, no
// CGo). One row per run: geometry, seed, a parameter summary and the
// resulting estimate, so past runs stay reproducible from the table alone.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at INTEGER NOT NULL,            -- unix seconds, UTC
    kind       TEXT    NOT NULL,
    paths      INTEGER NOT NULL,
    steps      INTEGER NOT NULL,
    seed       INTEGER NOT NULL,            -- uint64 stored via int64 cast
    params     TEXT    NOT NULL DEFAULT '',
    estimate   REAL    NOT NULL,
    elapsed_ms REAL    NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_at   ON runs(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_runs_kind ON runs(kind);
`

// Run kinds as recorded in the kind column.
const (
	KindSimulate = "simulate"
	KindEuropean = "european"
	KindBasket   = "basket"
)

// Run is one recorded simulation or pricing run.
type Run struct {
	ID        int64
	CreatedAt time.Time
	Kind      string
	Paths     int
	Steps     int
	Seed      uint64
	Params    string // human-readable parameter summary, e.g. "S=300 K=250"
	Estimate  float64
	Elapsed   time.Duration
}

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store.Open: open %q: %w", path, err)
	}
	// SQLite is single-writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store.Open: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one run and returns its row id. A zero CreatedAt is
// stamped with the current UTC time.
func (s *Store) Record(ctx context.Context, r Run) (int64, error) {
	at := r.CreatedAt
	if at.IsZero() {
		at = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (created_at, kind, paths, steps, seed, params, estimate, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		at.Unix(), r.Kind, r.Paths, r.Steps, int64(r.Seed), r.Params,
		r.Estimate, float64(r.Elapsed)/float64(time.Millisecond),
	)
	if err != nil {
		return 0, fmt.Errorf("store.Record: insert run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store.Record: last insert id: %w", err)
	}
	return id, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, kind, paths, steps, seed, params, estimate, elapsed_ms
		 FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store.Recent: query: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r         Run
			createdAt int64
			seed      int64
			elapsedMs float64
		)
		if err := rows.Scan(&r.ID, &createdAt, &r.Kind, &r.Paths, &r.Steps,
			&seed, &r.Params, &r.Estimate, &elapsedMs); err != nil {
			return nil, fmt.Errorf("store.Recent: scan: %w", err)
		}
		r.CreatedAt = time.Unix(createdAt, 0).UTC()
		r.Seed = uint64(seed)
		r.Elapsed = time.Duration(elapsedMs * float64(time.Millisecond))
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store.Recent: rows: %w", err)
	}
	return out, nil
}
