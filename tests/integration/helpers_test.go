// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package integration provides shared test helpers for integration tests.
package integration

import (
	"context"
	"testing"

	"github.com/anichest/anichest/internal/catalog"
	"github.com/anichest/anichest/internal/sqlite"
	"github.com/anichest/anichest/pkg/types"
)

// setupCatalog opens a store in an isolated temp directory and wraps it
// in the facade. Each test gets its own database for isolation.
func setupCatalog(t *testing.T, seed bool) (*catalog.Catalog, *sqlite.Store) {
	t.Helper()
	dir := t.TempDir()
	store, err := sqlite.Open(types.Config{DataDir: dir, Seed: seed})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return catalog.New(store), store
}

// mustRegister registers a title and returns its ID.
func mustRegister(t *testing.T, c *catalog.Catalog, a types.Anime) string {
	t.Helper()
	id, err := c.RegisterAnime(context.Background(), a)
	if err != nil {
		t.Fatalf("RegisterAnime(%q): %v", a.Title, err)
	}
	return id
}

// mustSetStatus sets a watch status or fails the test.
func mustSetStatus(t *testing.T, c *catalog.Catalog, st types.AnimeStatus) {
	t.Helper()
	if err := c.SetWatchStatus(context.Background(), st); err != nil {
		t.Fatalf("SetWatchStatus(%s): %v", st.AnimeID, err)
	}
}

// mustCounts reads the aggregate counters.
func mustCounts(t *testing.T, c *catalog.Catalog) types.Counts {
	t.Helper()
	counts, err := c.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	return counts
}
