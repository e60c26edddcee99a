// Package storage persists solve attempts.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"svw.info/cube/internal/domain"
)

const schemaV1 = `
CREATE TABLE IF NOT EXISTS attempts (
	id          TEXT PRIMARY KEY,
	created_at  INTEGER NOT NULL,
	status      TEXT NOT NULL,
	stage       TEXT NOT NULL DEFAULT '',
	state       TEXT NOT NULL DEFAULT '',
	facelets    TEXT NOT NULL DEFAULT '',
	solution    TEXT NOT NULL DEFAULT '',
	move_count  INTEGER NOT NULL DEFAULT 0,
	error_kind  TEXT NOT NULL DEFAULT '',
	error       TEXT NOT NULL DEFAULT '',
	duration_ns INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_attempts_created ON attempts(created_at);
`

// SQLite keeps attempts in a single table.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and migrates it.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, domain.WrapCubeError(domain.ErrStore, "create database dir", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, domain.WrapCubeError(domain.ErrStore, "open database", err)
	}
	// WAL allows concurrent readers but a single writer.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(context.Background(), schemaV1); err != nil {
		db.Close()
		return nil, domain.WrapCubeError(domain.ErrStore, "migrate schema", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Record(ctx context.Context, a *domain.Attempt) error {
	if a == nil || a.ID == "" {
		return domain.WrapCubeError(domain.ErrStore, "invalid attempt: missing ID", nil)
	}
	const q = `INSERT INTO attempts (id, created_at, status, stage, state, facelets, solution, move_count, error_kind, error, duration_ns)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q,
		a.ID,
		a.CreatedAt,
		string(a.Status),
		string(a.Stage),
		a.State,
		a.Facelets,
		a.Solution,
		a.MoveCount,
		a.ErrorKind,
		a.Error,
		int64(a.Duration),
	)
	if err != nil {
		return domain.WrapCubeError(domain.ErrStore, "record attempt", err)
	}
	return nil
}

const selectCols = `SELECT id, created_at, status, stage, state, facelets, solution, move_count, error_kind, error, duration_ns FROM attempts`

type scanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row scanner) (domain.Attempt, error) {
	var a domain.Attempt
	var status, stage string
	var dur int64
	err := row.Scan(&a.ID, &a.CreatedAt, &status, &stage, &a.State, &a.Facelets,
		&a.Solution, &a.MoveCount, &a.ErrorKind, &a.Error, &dur)
	a.Status = domain.Status(status)
	a.Stage = domain.Stage(stage)
	a.Duration = time.Duration(dur)
	return a, err
}

func (s *SQLite) Get(ctx context.Context, id string) (*domain.Attempt, error) {
	a, err := scanAttempt(s.db.QueryRowContext(ctx, selectCols+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, domain.WrapCubeError(domain.ErrStore, "get attempt", err)
	}
	return &a, nil
}

// List returns the newest attempts first. limit <= 0 means no limit.
func (s *SQLite) List(ctx context.Context, limit int) ([]domain.Attempt, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, selectCols+` ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, domain.WrapCubeError(domain.ErrStore, "list attempts", err)
	}
	defer rows.Close()

	var out []domain.Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, domain.WrapCubeError(domain.ErrStore, "scan attempt", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
