// Package storage persists categorized transactions and resolved merchants
// between CLI runs. The classification core never touches it; callers own
// all persistence.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements persistence on a local SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (and if needed creates) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath must not be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db, dbPath: dbPath}
	if err := store.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS transactions (
		id            TEXT PRIMARY KEY,
		date          TIMESTAMP NOT NULL,
		description   TEXT NOT NULL,
		amount        REAL NOT NULL,
		type          TEXT NOT NULL,
		mode          TEXT NOT NULL DEFAULT '',
		merchant_name TEXT NOT NULL DEFAULT '',
		mcc           TEXT NOT NULL DEFAULT '',
		category      TEXT NOT NULL,
		sub_category  TEXT NOT NULL DEFAULT '',
		confidence    REAL NOT NULL,
		tags          TEXT NOT NULL DEFAULT '[]',
		is_recurring  INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
	CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category);

	CREATE TABLE IF NOT EXISTS merchants (
		name         TEXT PRIMARY KEY,
		category     TEXT NOT NULL,
		last_updated TIMESTAMP NOT NULL
	);`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
