// Package sqlite provides a SQLite-backed implementation of the storage.ChargeStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/cobrancas/internal/storage"
)

// busyTimeoutMs is how long a connection waits on a locked database file
// before failing with SQLITE_BUSY.
const busyTimeoutMs = 5000

// Ensure Store implements storage.ChargeStore
var _ storage.ChargeStore = (*Store)(nil)

// Store implements storage.ChargeStore using SQLite.
//
// Every operation acquires its own connection and transaction from the
// handle and releases both before returning.
type Store struct {
	db *sql.DB
}

// NewStore wraps an already opened database handle.
// The schema is expected to exist; see EnsureSchema.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens the database file at dbPath, creating parent directories as
// needed, and ensures the schema exists.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Connections are closed as soon as an operation releases them.
	db.SetMaxIdleConns(0)

	if err := EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return NewStore(db), nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func dsn(dbPath string) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", dbPath, busyTimeoutMs)
}

// withTx runs fn inside a transaction on a dedicated connection. The
// transaction is committed when fn succeeds and rolled back otherwise; the
// connection is released on every path.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
