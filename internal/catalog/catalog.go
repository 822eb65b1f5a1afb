// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package catalog is the access facade over the persistence core. It
// is the only layer that enforces application-level invariants (title
// validation, duplicate checks), applies the status date policy, and
// translates storage failures into the standard error set. Layers above
// it never see raw driver errors.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anichest/anichest/internal/sqlite"
	"github.com/anichest/anichest/pkg/types"
)

// Catalog coordinates store operations on behalf of the UI layer.
type Catalog struct {
	store *sqlite.Store
	now   func() time.Time // overridable in tests
}

// New creates a facade over the given store.
func New(store *sqlite.Store) *Catalog {
	return &Catalog{store: store, now: time.Now}
}

// passthrough lists the errors that cross the facade unchanged; any
// other failure is a storage-level one and gets wrapped as ErrStorage.
var passthrough = []error{
	types.ErrNotFound,
	types.ErrInvalidID,
	types.ErrInvalidTitle,
	types.ErrDuplicateTitle,
	types.ErrInvalidStatus,
	types.ErrInvalidPriority,
	types.ErrStoreClosed,
	context.Canceled,
	context.DeadlineExceeded,
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range passthrough {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", types.ErrStorage, err)
}

// RegisterAnime validates and inserts a new title:
// an empty trimmed title fails with ErrInvalidTitle, an already
// cataloged one with ErrDuplicateTitle naming the conflicting value.
// Otherwise the title is inserted in trimmed form and its new ID
// returned.
//
// The existence check and the insert are not wrapped in a transaction;
// that is sound only under the single-local-writer assumption this
// system is scoped to.
func (c *Catalog) RegisterAnime(ctx context.Context, a types.Anime) (string, error) {
	title := a.TrimmedTitle()
	if title == "" {
		return "", types.ErrInvalidTitle
	}

	exists, err := c.store.ExistsByTitle(ctx, title)
	if err != nil {
		return "", translate(err)
	}
	if exists {
		return "", fmt.Errorf("%w: %q", types.ErrDuplicateTitle, title)
	}

	a.Title = title
	id, err := c.store.InsertAnime(ctx, &a)
	if err != nil {
		return "", translate(err)
	}
	return id, nil
}

// UpdateAnime replaces the stored row for a.ID.
func (c *Catalog) UpdateAnime(ctx context.Context, a types.Anime) error {
	return translate(c.store.UpdateAnime(ctx, a))
}

// DeleteAnime removes a title and, by cascade, its status and wishlist
// rows.
func (c *Catalog) DeleteAnime(ctx context.Context, id string) error {
	return translate(c.store.DeleteAnimeByID(ctx, id))
}

// AllAnime returns the catalog ordered by title.
func (c *Catalog) AllAnime(ctx context.Context) ([]types.Anime, error) {
	list, err := c.store.AllAnime(ctx)
	return list, translate(err)
}

// AnimeByID returns one title, or ErrNotFound.
func (c *Catalog) AnimeByID(ctx context.Context, id string) (*types.Anime, error) {
	a, err := c.store.AnimeByID(ctx, id)
	return a, translate(err)
}

// SearchByTitle returns titles matching the query substring.
func (c *Catalog) SearchByTitle(ctx context.Context, query string) ([]types.Anime, error) {
	list, err := c.store.SearchByTitle(ctx, query)
	return list, translate(err)
}

// AllAnimeWithStatus returns the catalog joined to watch statuses.
func (c *Catalog) AllAnimeWithStatus(ctx context.Context) ([]types.AnimeWithStatus, error) {
	list, err := c.store.AllAnimeWithStatus(ctx)
	return list, translate(err)
}

// AnimeByStatus returns titles in the given watch state; titles without
// a status row count as UNWATCHED.
func (c *Catalog) AnimeByStatus(ctx context.Context, status types.WatchStatus) ([]types.AnimeWithStatus, error) {
	list, err := c.store.AnimeByStatus(ctx, status)
	return list, translate(err)
}

// Counts returns the aggregate counters.
func (c *Catalog) Counts(ctx context.Context) (types.Counts, error) {
	counts, err := c.store.Counts(ctx)
	return counts, translate(err)
}

// WatchAllAnimeWithStatus subscribes to the catalog-with-status view.
func (c *Catalog) WatchAllAnimeWithStatus(ctx context.Context) (<-chan []types.AnimeWithStatus, error) {
	ch, err := c.store.WatchAllAnimeWithStatus(ctx)
	return ch, translate(err)
}

// WatchCounts subscribes to the aggregate counters.
func (c *Catalog) WatchCounts(ctx context.Context) (<-chan types.Counts, error) {
	ch, err := c.store.WatchCounts(ctx)
	return ch, translate(err)
}
