// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Unit tests for facade-level validation and error translation.
package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anichest/anichest/internal/sqlite"
	"github.com/anichest/anichest/pkg/types"
)

// fixedNow is the clock injected into test catalogs.
var fixedNow = time.Date(2026, 3, 14, 10, 30, 0, 0, time.Local)

// newTestCatalog opens a catalog over an isolated store with a fixed
// clock.
func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	store, err := sqlite.Open(types.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	c := New(store)
	c.now = func() time.Time { return fixedNow }
	return c
}

// mustRegister registers a title and returns its ID.
func mustRegister(t *testing.T, c *Catalog, title string) string {
	t.Helper()

	id, err := c.RegisterAnime(context.Background(), types.Anime{Title: title})
	require.NoError(t, err)
	return id
}

func TestRegisterAnime(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	id, err := c.RegisterAnime(ctx, types.Anime{Title: "  Texhnolyze  ", Year: 2003})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// The title is stored in trimmed form.
	a, err := c.AnimeByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Texhnolyze", a.Title)
}

func TestRegisterAnimeRejectsBlankTitle(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		title string
	}{
		{name: "empty", title: ""},
		{name: "spaces only", title: "   "},
		{name: "tabs and newlines", title: "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.RegisterAnime(ctx, types.Anime{Title: tt.title})
			assert.ErrorIs(t, err, types.ErrInvalidTitle)
		})
	}
}

func TestRegisterAnimeRejectsDuplicateTitle(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	mustRegister(t, c, "Serial Experiments Lain")

	_, err := c.RegisterAnime(ctx, types.Anime{Title: "Serial Experiments Lain"})
	require.ErrorIs(t, err, types.ErrDuplicateTitle)
	// The message names the conflicting title.
	assert.Contains(t, err.Error(), `"Serial Experiments Lain"`)

	// Trimming applies before the duplicate check.
	_, err = c.RegisterAnime(ctx, types.Anime{Title: "  Serial Experiments Lain  "})
	assert.ErrorIs(t, err, types.ErrDuplicateTitle)
}

func TestUpdateAnimeMissingRow(t *testing.T) {
	c := newTestCatalog(t)

	err := c.UpdateAnime(context.Background(), types.Anime{ID: "0198aaaa-0000-7000-8000-000000000000", Title: "Ghost"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestStorageFailureWrappedAsErrStorage(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	id := mustRegister(t, c, "Kaiba")

	// Rating 11 violates the storage CHECK constraint; the facade hides
	// the driver error behind ErrStorage.
	err := c.SetWatchStatus(ctx, types.AnimeStatus{
		AnimeID: id,
		Status:  types.StatusCompleted,
		Rating:  11,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrStorage)
}

func TestSentinelErrorsCrossFacadeUnchanged(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	_, err := c.AnimeByID(ctx, "0198bbbb-0000-7000-8000-000000000000")
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.NotErrorIs(t, err, types.ErrStorage)

	_, err = c.AnimeByStatus(ctx, "PAUSED")
	assert.ErrorIs(t, err, types.ErrInvalidStatus)
	assert.NotErrorIs(t, err, types.ErrStorage)
}

func TestDeleteAnimeRemovesDependents(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	id := mustRegister(t, c, "Gurren Lagann")
	require.NoError(t, c.SetWatchStatus(ctx, types.AnimeStatus{
		AnimeID: id,
		Status:  types.StatusWatching,
	}))
	require.NoError(t, c.AddToWishlist(ctx, id, types.PriorityHigh, ""))

	require.NoError(t, c.DeleteAnime(ctx, id))

	_, err := c.AnimeByID(ctx, id)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = c.StatusByAnimeID(ctx, id)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = c.WishlistItemByAnimeID(ctx, id)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
