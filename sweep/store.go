package sweep

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists sweep runs in a SQLite database: one row per run plus
// one row per grid cell, keyed by the run UUID. Safe for concurrent use.
type Store struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewStore returns an unopened store for the database at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Init opens the database and creates the schema if needed. Idempotent.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return fmt.Errorf("sqlite path is required: %w", ErrStoreClosed)
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// SaveRun upserts a complete sweep run: the run row and all of its cells
// in one transaction.
func (s *Store) SaveRun(ctx context.Context, res *Result) error {
	if res == nil || len(res.Cells) == 0 {
		return ErrEmptyResult
	}
	db, err := s.getDB()
	if err != nil {
		return err
	}

	cfg, err := json.Marshal(res.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (run_id, started, elapsed_ms, config,
			baseline_retention, baseline_growth, baseline_combined)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id) DO UPDATE SET
			started = excluded.started,
			elapsed_ms = excluded.elapsed_ms,
			config = excluded.config,
			baseline_retention = excluded.baseline_retention,
			baseline_growth = excluded.baseline_growth,
			baseline_combined = excluded.baseline_combined
	`, res.RunID, res.Started.UTC().Format(time.RFC3339Nano), res.Elapsed.Milliseconds(),
		cfg, res.Baseline.Retention, res.Baseline.Growth, res.Baseline.Combined)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cells WHERE run_id = ?`, res.RunID); err != nil {
		return err
	}
	for i, c := range res.Cells {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO cells (run_id, idx, alpha_l, alpha_r,
				residence, hitting, retention, growth, combined, ratio, unstable)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, res.RunID, i, c.AlphaL, c.AlphaR,
			c.Residence, c.Hitting, c.Retention, c.Growth, c.Combined, c.Ratio, c.Unstable)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetRun loads a persisted run by its UUID. The boolean reports whether
// the run exists.
func (s *Store) GetRun(ctx context.Context, runID string) (*Result, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, false, err
	}

	var (
		started   string
		elapsedMS int64
		cfgRaw    []byte
		res       Result
	)
	err = db.QueryRowContext(ctx, `
		SELECT started, elapsed_ms, config,
			baseline_retention, baseline_growth, baseline_combined
		FROM runs WHERE run_id = ?
	`, runID).Scan(&started, &elapsedMS, &cfgRaw,
		&res.Baseline.Retention, &res.Baseline.Growth, &res.Baseline.Combined)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	res.RunID = runID
	res.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	if res.Started, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return nil, false, fmt.Errorf("decode run %s: %w", runID, err)
	}
	if err := json.Unmarshal(cfgRaw, &res.Config); err != nil {
		return nil, false, fmt.Errorf("decode run %s: %w", runID, err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT alpha_l, alpha_r, residence, hitting,
			retention, growth, combined, ratio, unstable
		FROM cells WHERE run_id = ? ORDER BY idx
	`, runID)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	for rows.Next() {
		var c Cell
		if err := rows.Scan(&c.AlphaL, &c.AlphaR, &c.Residence, &c.Hitting,
			&c.Retention, &c.Growth, &c.Combined, &c.Ratio, &c.Unstable); err != nil {
			return nil, false, err
		}
		res.Cells = append(res.Cells, c)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	return &res, true, nil
}

// ListRuns returns the stored run UUIDs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]string, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT run_id FROM runs ORDER BY started DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close releases the database handle. Safe to call more than once.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrStoreClosed
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			started TEXT NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			config BLOB NOT NULL,
			baseline_retention REAL NOT NULL,
			baseline_growth REAL NOT NULL,
			baseline_combined REAL NOT NULL
		);
		CREATE TABLE IF NOT EXISTS cells (
			run_id TEXT NOT NULL,
			idx INTEGER NOT NULL,
			alpha_l REAL NOT NULL,
			alpha_r REAL NOT NULL,
			residence REAL NOT NULL,
			hitting REAL NOT NULL,
			retention REAL NOT NULL,
			growth REAL NOT NULL,
			combined REAL NOT NULL,
			ratio REAL NOT NULL,
			unstable INTEGER NOT NULL,
			PRIMARY KEY (run_id, idx)
		);
	`)
	return err
}
