// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Unit tests for wishlist facade operations.
package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anichest/anichest/pkg/types"
)

func TestAddToWishlist(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	id := mustRegister(t, c, "Keep Your Hands Off Eizouken!")
	require.NoError(t, c.AddToWishlist(ctx, id, types.PriorityHigh, "art style"))

	item, err := c.WishlistItemByAnimeID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, types.PriorityHigh, item.Priority)
	assert.Equal(t, "art style", item.Notes)
	assert.Equal(t, fixedNow.UnixMilli(), item.AddedAt)
}

func TestAddToWishlistReplacesExistingEntry(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	id := mustRegister(t, c, "Girls' Last Tour")
	require.NoError(t, c.AddToWishlist(ctx, id, types.PriorityLow, ""))
	require.NoError(t, c.AddToWishlist(ctx, id, types.PriorityHigh, "moved up"))

	item, err := c.WishlistItemByAnimeID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, types.PriorityHigh, item.Priority)
	assert.Equal(t, "moved up", item.Notes)

	list, err := c.WishlistWithAnime(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRegisterToWishlist(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	id, err := c.RegisterToWishlist(ctx, types.Anime{
		Title: "Delicious in Dungeon",
		Year:  2024,
	}, types.PriorityMedium, "")
	require.NoError(t, err)

	a, err := c.AnimeByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Delicious in Dungeon", a.Title)

	item, err := c.WishlistItemByAnimeID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, types.PriorityMedium, item.Priority)
}

func TestRegisterToWishlistRejectsDuplicateTitle(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	mustRegister(t, c, "Heavenly Delusion")

	_, err := c.RegisterToWishlist(ctx, types.Anime{Title: "Heavenly Delusion"}, types.PriorityLow, "")
	assert.ErrorIs(t, err, types.ErrDuplicateTitle)

	list, err := c.WishlistWithAnime(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRemoveFromWishlist(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	id := mustRegister(t, c, "Skip and Loafer")
	require.NoError(t, c.AddToWishlist(ctx, id, types.PriorityMedium, ""))
	require.NoError(t, c.RemoveFromWishlist(ctx, id))

	_, err := c.WishlistItemByAnimeID(ctx, id)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// The title stays cataloged.
	_, err = c.AnimeByID(ctx, id)
	assert.NoError(t, err)
}

func TestUnwatchedWishlist(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	todo := mustRegister(t, c, "To Watch")
	require.NoError(t, c.AddToWishlist(ctx, todo, types.PriorityHigh, ""))

	done := mustRegister(t, c, "Watched Already")
	require.NoError(t, c.AddToWishlist(ctx, done, types.PriorityHigh, ""))
	require.NoError(t, c.SetWatchStatus(ctx, types.AnimeStatus{
		AnimeID: done,
		Status:  types.StatusCompleted,
	}))

	list, err := c.UnwatchedWishlistWithAnime(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "To Watch", list[0].Anime.Title)
}
