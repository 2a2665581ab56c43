// Package storage keeps the session's run log in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk; the log ends with the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the database connection for the run log.
type Store struct {
	db *sql.DB
}

// Run is one life of the creature, from spawn to death.
type Run struct {
	ID       int64
	GameID   string
	Score    int
	Duration time.Duration // simulated time alive
	EndedAt  time.Time
}

// OpenMemory creates an empty in-memory run log.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database; keep exactly one
	// alive for the lifetime of the store.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the log.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. A zero EndedAt is set to now.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Score < 0 {
		return 0, fmt.Errorf("storage: negative score %d", r.Score)
	}
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (game_id, score, duration_ms, ended_at) VALUES (?, ?, ?, ?)",
		r.GameID, r.Score, r.Duration.Milliseconds(), r.EndedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns returns the best runs for a game, highest score first; ties go
// to the earlier run. A non-positive limit means 10.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, game_id, score, duration_ms, ended_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RecentRuns returns the latest runs for a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, game_id, score, duration_ms, ended_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) query(q string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMs, endedAt int64
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &durationMs, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.EndedAt = time.UnixMilli(endedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Best returns the highest score recorded for a game, or 0.
func (s *Store) Best(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Count returns the number of runs recorded for a game.
func (s *Store) Count(gameID string) (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE game_id = ?", gameID).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}
