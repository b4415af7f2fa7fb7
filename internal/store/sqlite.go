// internal/store/sqlite.go
//
// SQLite-backed Store.
//   - Always an in-memory database: results never outlive the process.
//   - A single connection, since every new :memory: connection is a new database.
//   - Migrations come from assets/migrations and are recorded in _migrations.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/codebreaker/assets"
	"github.com/robalobadob/codebreaker/internal/game"
)

const memoryDSN = "file::memory:?_foreign_keys=on"

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens an in-memory SQLite store and applies migrations.
func OpenSQLite(ctx context.Context) (Store, error) {
	db, err := sql.Open("sqlite3", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

// migrate applies embedded migrations in lexical order, each inside its own
// transaction, skipping those already recorded in _migrations.
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}
	migrations, err := assets.Migrations()
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}

	for _, m := range migrations {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, m.Name).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", m.Name).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.Name, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, m.Name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.Name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.Name, err)
		}
		log.Debug().Str("migration", m.Name).Msg("applied")
	}
	return nil
}

// Save inserts a result; an existing session_id is ignored.
func (s *sqliteStore) Save(ctx context.Context, r Result) error {
	if err := checkResult(r); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO results
            (session_id, difficulty, outcome, guesses, elapsed_ms, finished_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Difficulty, r.Outcome.String(), r.Guesses,
		r.Elapsed.Milliseconds(), r.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert result %s: %w", r.SessionID, err)
	}
	return nil
}

// Stats folds outcomes in insertion order.
func (s *sqliteStore) Stats(ctx context.Context) (Stats, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT outcome FROM results ORDER BY rowid ASC`)
	if err != nil {
		return Stats{}, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var outcomes []game.Outcome
	for rows.Next() {
		var o string
		if err := rows.Scan(&o); err != nil {
			return Stats{}, err
		}
		outcomes = append(outcomes, parseOutcome(o))
	}
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}
	return summarize(outcomes), nil
}

// Recent returns the newest results first; default limit is 20.
func (s *sqliteStore) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = defaultRecent
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT session_id, difficulty, outcome, guesses, elapsed_ms, finished_at
        FROM results
        ORDER BY rowid DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	out := make([]Result, 0, limit)
	for rows.Next() {
		var (
			r        Result
			outcome  string
			ms       int64
			finished string
		)
		if err := rows.Scan(&r.SessionID, &r.Difficulty, &outcome, &r.Guesses, &ms, &finished); err != nil {
			return nil, err
		}
		r.Outcome = parseOutcome(outcome)
		r.Elapsed = time.Duration(ms) * time.Millisecond
		r.FinishedAt, _ = time.Parse(time.RFC3339Nano, finished)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Close() error { return s.db.Close() }

func parseOutcome(s string) game.Outcome {
	switch s {
	case "won":
		return game.Won
	case "lost":
		return game.Lost
	default:
		return game.InProgress
	}
}
