// internal/store/sqlite.go
//
// SQLite implementation of the Store interface.
// Responsibilities:
//   - Opening an in-memory SQLite database pinned to one connection.
//   - Applying migrations from the embedded sql/*.sql (recorded in _migrations).
//   - Recording solved rounds and aggregating them per difficulty.
//
// Note: ":memory:" databases are private to a connection, so the pool is
// capped at one open connection.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hitandblow/internal/game"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a fresh in-memory database and applies migrations.
func OpenSQLite(ctx context.Context) (Store, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := migrate(ctx, db, migrationsFS); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

// migrate applies *.sql files from fsys in lexical order.
//
//   - Uses a _migrations table to track applied files.
//   - Each file runs in its own transaction together with its record row.
func migrate(ctx context.Context, db *sql.DB, fsys fs.FS) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(fsys, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Debug().Str("migration", f).Msg("applied")
	}
	return nil
}

// Record inserts one solved round.
func (s *sqliteStore) Record(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO rounds (difficulty, attempts, finished_at)
        VALUES (?, ?, ?)`,
		string(r.Difficulty), r.Attempts, r.FinishedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert round: %w", err)
	}
	return nil
}

// Summary groups rounds by difficulty.
func (s *sqliteStore) Summary(ctx context.Context) ([]Stat, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT difficulty, COUNT(1), MIN(attempts)
        FROM rounds
        GROUP BY difficulty`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	by := make(map[game.Difficulty]Stat)
	for rows.Next() {
		var (
			d    string
			stat Stat
		)
		if err := rows.Scan(&d, &stat.Rounds, &stat.BestAttempts); err != nil {
			return nil, err
		}
		stat.Difficulty = game.Difficulty(d)
		by[stat.Difficulty] = stat
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orderStats(by), nil
}

// Close closes the database; its contents are discarded.
func (s *sqliteStore) Close() error { return s.db.Close() }
