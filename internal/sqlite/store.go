// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sqlite implements the embedded persistence core for the
// Anichest catalog: schema and additive migration, the query layer
// (one-shot reads and push-based subscriptions), and the command layer
// with its cascade and upsert semantics. The store is designed for a
// single local process with one logical writer.
package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/anichest/anichest/pkg/types"
)

// DatabaseFile is the fixed name of the store file inside the data
// directory.
const DatabaseFile = "anichest.db"

// Store is a handle to the catalog database. Create with Open, release
// with Close. All operations are safe for concurrent use; writes are
// serialized by the single underlying connection.
type Store struct {
	mu   sync.RWMutex
	db   *sqlx.DB
	hub  *hub
	path string
}

// Open opens (creating if absent) the catalog database under
// cfg.DataDir, applies pending migrations, and seeds the sample catalog
// when cfg.Seed is set and the anime table is empty.
//
// When a migration cannot be applied and cfg.DestructiveFallback is
// set, the store file is deleted and rebuilt from scratch. This drops
// all data and exists only as a last resort for irrecoverable schema
// states.
func Open(cfg types.Config) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(dataDir, DatabaseFile)
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		db.Close()
		if !cfg.DestructiveFallback {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		if rmErr := os.Remove(path); rmErr != nil {
			return nil, fmt.Errorf("rebuild store: %w", rmErr)
		}
		db, err = openDB(path)
		if err != nil {
			return nil, err
		}
		if err := migrate(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate rebuilt store: %w", err)
		}
	}

	s := &Store{db: db, hub: newHub(), path: path}

	if cfg.Seed {
		if err := s.seedSampleCatalog(context.Background()); err != nil {
			db.Close()
			return nil, fmt.Errorf("seed sample catalog: %w", err)
		}
	}

	return s, nil
}

// openDB opens the SQLite file with foreign keys enforced and WAL
// journaling. A single connection serializes writes and avoids
// SQLITE_BUSY under concurrent subscription re-queries.
func openDB(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)",
		path,
	)
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// Path returns the location of the store file.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database handle. Close is idempotent; operations
// after Close return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	s.db = nil
	return nil
}

// conn returns the live database handle or ErrStoreClosed.
func (s *Store) conn() (*sqlx.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

// runInTx runs fn within a database transaction. If fn returns an
// error, the transaction is rolled back; otherwise it is committed.
func (s *Store) runInTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback transaction: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// newID generates a UUID v7 surrogate key, falling back to v4 if v7
// generation fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
