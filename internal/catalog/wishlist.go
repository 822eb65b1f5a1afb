// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"context"

	"github.com/anichest/anichest/pkg/types"
)

// AddToWishlist marks an existing title to watch later. A second add
// for the same title replaces the entry (new priority, notes, and
// added-at time).
func (c *Catalog) AddToWishlist(ctx context.Context, animeID string, priority types.Priority, notes string) error {
	item := types.WishlistItem{
		AnimeID:  animeID,
		Priority: priority,
		AddedAt:  c.now().UnixMilli(),
		Notes:    notes,
	}
	return translate(c.store.UpsertWishlistItem(ctx, &item))
}

// RegisterToWishlist is the combined register-and-wishlist flow: a
// validated insert followed by a wishlist add. The two steps commit
// independently; no storage-transaction atomicity is required here.
func (c *Catalog) RegisterToWishlist(ctx context.Context, a types.Anime, priority types.Priority, notes string) (string, error) {
	id, err := c.RegisterAnime(ctx, a)
	if err != nil {
		return "", err
	}
	if err := c.AddToWishlist(ctx, id, priority, notes); err != nil {
		return "", err
	}
	return id, nil
}

// RemoveFromWishlist drops a title's wishlist entry, if any.
func (c *Catalog) RemoveFromWishlist(ctx context.Context, animeID string) error {
	return translate(c.store.DeleteWishlistItemByAnimeID(ctx, animeID))
}

// WishlistWithAnime returns the wishlist joined to its titles, highest
// priority first.
func (c *Catalog) WishlistWithAnime(ctx context.Context) ([]types.AnimeWithWishlist, error) {
	list, err := c.store.WishlistWithAnime(ctx)
	return list, translate(err)
}

// UnwatchedWishlistWithAnime returns the wishlist entries still to
// watch (no status row, or an UNWATCHED one).
func (c *Catalog) UnwatchedWishlistWithAnime(ctx context.Context) ([]types.AnimeWithWishlistAndStatus, error) {
	list, err := c.store.UnwatchedWishlistWithAnime(ctx)
	return list, translate(err)
}

// WishlistItemByAnimeID returns a title's wishlist entry, or
// ErrNotFound.
func (c *Catalog) WishlistItemByAnimeID(ctx context.Context, animeID string) (*types.WishlistItem, error) {
	item, err := c.store.WishlistItemByAnimeID(ctx, animeID)
	return item, translate(err)
}
