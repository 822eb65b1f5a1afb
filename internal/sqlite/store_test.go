// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Unit tests for store lifecycle: open, migrate, destructive rebuild,
// close.
package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anichest/anichest/pkg/types"
)

// newTestStore opens a store in an isolated temp directory, without the
// sample catalog.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(types.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// mustInsertAnime inserts a title and returns its generated ID.
func mustInsertAnime(t *testing.T, s *Store, a types.Anime) string {
	t.Helper()

	id, err := s.InsertAnime(context.Background(), &a)
	require.NoError(t, err)
	return id
}

func TestOpenCreatesDatabaseFile(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(types.Config{DataDir: dir})
	require.NoError(t, err)
	defer s.Close()

	assert.FileExists(t, filepath.Join(dir, DatabaseFile))
	assert.Equal(t, filepath.Join(dir, DatabaseFile), s.Path())
}

func TestOpenCreatesMissingDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := Open(types.Config{DataDir: dir})
	require.NoError(t, err)
	defer s.Close()

	assert.DirExists(t, dir)
}

func TestReopenPreservesData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(types.Config{DataDir: dir})
	require.NoError(t, err)
	id := mustInsertAnime(t, s, types.Anime{Title: "Mushishi"})
	require.NoError(t, s.Close())

	s, err = Open(types.Config{DataDir: dir})
	require.NoError(t, err)
	defer s.Close()

	a, err := s.AnimeByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Mushishi", a.Title)
}

func TestCloseIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func TestOperationsAfterCloseReturnStoreClosed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Close())

	_, err := s.AllAnime(ctx)
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	_, err = s.InsertAnime(ctx, &types.Anime{Title: "Monster"})
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	_, err = s.Counts(ctx)
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}

// corruptSchema plants a conflicting anime table with user_version
// still at zero, so migration 1 cannot apply.
func corruptSchema(t *testing.T, dir string) {
	t.Helper()

	db, err := openDB(filepath.Join(dir, DatabaseFile))
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE anime (wrong TEXT)")
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestOpenFailsOnUnmigratableSchema(t *testing.T) {
	dir := t.TempDir()
	corruptSchema(t, dir)

	_, err := Open(types.Config{DataDir: dir})
	assert.Error(t, err)
}

func TestDestructiveFallbackRebuildsStore(t *testing.T) {
	dir := t.TempDir()
	corruptSchema(t, dir)

	s, err := Open(types.Config{DataDir: dir, DestructiveFallback: true})
	require.NoError(t, err)
	defer s.Close()

	list, err := s.AllAnime(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	// The rebuilt file is a fresh database at the same path.
	info, err := os.Stat(filepath.Join(dir, DatabaseFile))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestMigrateIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	for i := 0; i < 3; i++ {
		s, err := Open(types.Config{DataDir: dir})
		require.NoError(t, err)
		require.NoError(t, s.Close())
	}
}
