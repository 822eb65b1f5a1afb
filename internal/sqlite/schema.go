// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema DDL. Both dependent tables carry a unique index on anime_id
// (at most one status/wishlist row per title) and cascade-delete with
// their parent anime row.
const (
	createAnime = `CREATE TABLE anime (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    total_episodes INTEGER NOT NULL DEFAULT 0,
    genre TEXT NOT NULL DEFAULT '',
    year INTEGER NOT NULL DEFAULT 0,
    description TEXT NOT NULL DEFAULT ''
);`

	createAnimeStatus = `CREATE TABLE anime_status (
    id TEXT PRIMARY KEY,
    anime_id TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'UNWATCHED',
    rating INTEGER NOT NULL DEFAULT 0 CHECK (rating BETWEEN 0 AND 5),
    review TEXT NOT NULL DEFAULT '',
    watched_episodes INTEGER NOT NULL DEFAULT 0 CHECK (watched_episodes >= 0),
    start_date TEXT NOT NULL DEFAULT '',
    finish_date TEXT NOT NULL DEFAULT '',
    updated_at INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (anime_id) REFERENCES anime(id) ON DELETE CASCADE
);`

	createWishlist = `CREATE TABLE wishlist (
    id TEXT PRIMARY KEY,
    anime_id TEXT NOT NULL,
    priority TEXT NOT NULL DEFAULT 'MEDIUM',
    added_at INTEGER NOT NULL DEFAULT 0,
    notes TEXT NOT NULL DEFAULT '',
    FOREIGN KEY (anime_id) REFERENCES anime(id) ON DELETE CASCADE
);`

	idxStatusAnime   = `CREATE UNIQUE INDEX idx_anime_status_anime ON anime_status(anime_id);`
	idxWishlistAnime = `CREATE UNIQUE INDEX idx_wishlist_anime ON wishlist(anime_id);`
	idxAnimeTitle    = `CREATE INDEX idx_anime_title ON anime(title);`
)

// migration is one additive schema step. Steps are applied in order by
// comparing against PRAGMA user_version, inside a transaction each, so
// existing data survives upgrades.
type migration struct {
	version int
	stmts   []string
}

var migrations = []migration{
	{
		version: 1,
		stmts: []string{
			createAnime,
			createAnimeStatus,
			createWishlist,
			idxStatusAnime,
			idxWishlistAnime,
			idxAnimeTitle,
		},
	},
}

// migrate applies all pending migrations.
func migrate(db *sqlx.DB) error {
	var version int
	if err := db.Get(&version, "PRAGMA user_version"); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= version {
			continue
		}

		tx, err := db.Beginx()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.version, err)
		}
		for _, stmt := range m.stmts {
			if _, err := tx.Exec(stmt); err != nil {
				tx.Rollback()
				return fmt.Errorf("apply migration %d: %w", m.version, err)
			}
		}
		// user_version does not accept bound parameters.
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
			tx.Rollback()
			return fmt.Errorf("bump schema version to %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.version, err)
		}
		version = m.version
	}

	return nil
}
