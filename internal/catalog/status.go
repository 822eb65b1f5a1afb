// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"errors"

	"github.com/anichest/anichest/pkg/types"
)

const dateLayout = "2006-01-02"

// applyStatusDates derives start/finish dates from a state transition.
// Entering WATCHING sets the start date (if unset) and clears the
// finish date; entering COMPLETED sets the finish date to today (and
// the start date if still unset). Other states, and writes that do not
// change the state, leave dates untouched.
func applyStatusDates(prev *types.AnimeStatus, next *types.AnimeStatus, today string) {
	transitioned := prev == nil || prev.Status != next.Status
	if !transitioned {
		return
	}

	switch next.Status {
	case types.StatusWatching:
		if next.StartDate == "" {
			next.StartDate = today
		}
		next.FinishDate = ""
	case types.StatusCompleted:
		if next.StartDate == "" {
			next.StartDate = today
		}
		next.FinishDate = today
	}
}

// SetWatchStatus upserts the watch status for st.AnimeID, applying the
// date policy against the currently stored state and stamping
// UpdatedAt.
func (c *Catalog) SetWatchStatus(ctx context.Context, st types.AnimeStatus) error {
	prev, err := c.store.StatusByAnimeID(ctx, st.AnimeID)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return translate(err)
	}

	now := c.now()
	applyStatusDates(prev, &st, now.Format(dateLayout))
	st.UpdatedAt = now.UnixMilli()

	return translate(c.store.UpsertStatus(ctx, &st))
}

// UpdateAnimeAndStatus updates a title and upserts its watch status as
// one atomic storage transaction, with the same date policy as
// SetWatchStatus. This is the sole cross-entity write.
func (c *Catalog) UpdateAnimeAndStatus(ctx context.Context, a types.Anime, st types.AnimeStatus) error {
	st.AnimeID = a.ID
	prev, err := c.store.StatusByAnimeID(ctx, st.AnimeID)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return translate(err)
	}

	now := c.now()
	applyStatusDates(prev, &st, now.Format(dateLayout))
	st.UpdatedAt = now.UnixMilli()

	return translate(c.store.UpdateAnimeAndStatus(ctx, a, &st))
}

// StatusByAnimeID returns a title's watch status, or ErrNotFound.
func (c *Catalog) StatusByAnimeID(ctx context.Context, animeID string) (*types.AnimeStatus, error) {
	st, err := c.store.StatusByAnimeID(ctx, animeID)
	return st, translate(err)
}

// ClearWatchStatus removes a title's status row, returning it to the
// implicit UNWATCHED state.
func (c *Catalog) ClearWatchStatus(ctx context.Context, animeID string) error {
	return translate(c.store.DeleteStatusByAnimeID(ctx, animeID))
}
