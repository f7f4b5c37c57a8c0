// internal/runstore/store.go

// Package runstore keeps a local history of evaluation runs in SQLite:
// one row per run plus per-rule match counts, for later inspection.
package runstore

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"prip/pkg/api"
)

// DefaultListLimit bounds history listings unless the caller asks otherwise.
const DefaultListLimit = 20

// Run is one recorded evaluation.
type Run struct {
	ID        string `db:"run_id"`
	Structure string `db:"structure"`
	Model     int    `db:"model"`
	Chain     string `db:"chain"`
	Residues  int    `db:"residues"`
	Pairs     int    `db:"pairs"`
	Matches   int    `db:"matches"`
	CreatedAt string `db:"created_at"`
}

// V1 converts the record to the stable wire schema for history listings.
func (r Run) V1() api.RunV1 {
	return api.RunV1{
		ID:        r.ID,
		Structure: r.Structure,
		Model:     r.Model,
		Chain:     r.Chain,
		Residues:  r.Residues,
		Pairs:     r.Pairs,
		Matches:   r.Matches,
		CreatedAt: r.CreatedAt,
	}
}

// RuleCount is one rule's match total within a run.
type RuleCount struct {
	Position int    `db:"position"`
	Name     string `db:"name"`
	Matches  int    `db:"matches"`
}

// Store wraps a pooled sqlx.DB connection to the history database.
type Store struct {
	db *sqlx.DB
}

// Open creates or opens the history database at path and migrates its
// schema. The file and its directory must already be writable.
func Open(path string) (*Store, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve history path: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)", abs, 5000)
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database resources.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	for i, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("execute schema statement %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}

var schemaStatements = []string{
	`PRAGMA journal_mode = WAL;`,
	`PRAGMA foreign_keys = ON;`,
	`CREATE TABLE IF NOT EXISTS runs (
		run_id     TEXT PRIMARY KEY,
		structure  TEXT NOT NULL,
		model      INTEGER NOT NULL,
		chain      TEXT NOT NULL,
		residues   INTEGER NOT NULL,
		pairs      INTEGER NOT NULL,
		matches    INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);`,
	`CREATE TABLE IF NOT EXISTS run_rules (
		run_id   TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name     TEXT NOT NULL,
		matches  INTEGER NOT NULL,
		PRIMARY KEY (run_id, position)
	);`,
}

// RecordRun stores one finished evaluation and its per-rule counts,
// returning the generated run id. Run.ID and Run.CreatedAt are assigned
// here; values set by the caller are ignored.
func (s *Store) RecordRun(ctx context.Context, run Run, counts []RuleCount) (string, error) {
	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return "", fmt.Errorf("begin record: %w", err)
	}
	if _, err := tx.NamedExecContext(ctx,
		`INSERT INTO runs (run_id, structure, model, chain, residues, pairs, matches, created_at)
		 VALUES (:run_id, :structure, :model, :chain, :residues, :pairs, :matches, :created_at)`,
		run,
	); err != nil {
		_ = tx.Rollback()
		return "", fmt.Errorf("insert run: %w", err)
	}
	for _, c := range counts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_rules (run_id, position, name, matches) VALUES (?, ?, ?, ?)`,
			run.ID, c.Position, c.Name, c.Matches,
		); err != nil {
			_ = tx.Rollback()
			return "", fmt.Errorf("insert rule count: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit record: %w", err)
	}
	return run.ID, nil
}

// ListRuns returns recorded runs, newest first. limit <= 0 applies
// DefaultListLimit.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	var runs []Run
	if err := s.db.SelectContext(ctx, &runs,
		`SELECT * FROM runs ORDER BY created_at DESC, run_id LIMIT ?`, limit,
	); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// RuleCounts returns the per-rule match totals of one run in rule order.
func (s *Store) RuleCounts(ctx context.Context, runID string) ([]RuleCount, error) {
	var counts []RuleCount
	if err := s.db.SelectContext(ctx, &counts,
		`SELECT position, name, matches FROM run_rules WHERE run_id = ? ORDER BY position`, runID,
	); err != nil {
		return nil, fmt.Errorf("rule counts: %w", err)
	}
	return counts, nil
}
