package idcache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS progress_ids (
    question_id TEXT PRIMARY KEY,
    progress_id TEXT NOT NULL,
    updated_at  TEXT NOT NULL
)`

// SQLiteStore keeps the id map in a single-table SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite initializes or connects to the cache database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Load returns every persisted mapping.
func (s *SQLiteStore) Load(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT question_id, progress_id FROM progress_ids`)
	if err != nil {
		return nil, fmt.Errorf("query id cache: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]string)
	for rows.Next() {
		var questionID, progressID string
		if err := rows.Scan(&questionID, &progressID); err != nil {
			return nil, fmt.Errorf("scan id cache row: %w", err)
		}
		entries[questionID] = progressID
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate id cache rows: %w", err)
	}
	return entries, nil
}

// Merge upserts the given entries in one transaction.
func (s *SQLiteStore) Merge(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin merge: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO progress_ids (question_id, progress_id, updated_at)
        VALUES (?, ?, ?)
        ON CONFLICT(question_id) DO UPDATE SET
            progress_id = excluded.progress_id,
            updated_at  = excluded.updated_at`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for questionID, progressID := range entries {
		if questionID == "" || progressID == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, questionID, progressID, now); err != nil {
			return fmt.Errorf("upsert %s: %w", questionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit merge: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
