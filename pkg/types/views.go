// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// AnimeWithStatus joins a title to its optional watch status.
// Status is nil when no status row exists, which the query layer treats
// as equivalent to Unwatched.
type AnimeWithStatus struct {
	Anime  Anime
	Status *AnimeStatus
}

// EffectiveStatus returns the watch status, with a missing status row
// reading as Unwatched.
func (a AnimeWithStatus) EffectiveStatus() WatchStatus {
	if a.Status == nil {
		return StatusUnwatched
	}
	return a.Status.Status
}

// AnimeWithWishlist joins a title to its wishlist entry (inner join:
// the entry is always present).
type AnimeWithWishlist struct {
	Anime Anime
	Item  WishlistItem
}

// AnimeWithWishlistAndStatus joins a title to its wishlist entry and
// optional watch status. Used for the unwatched-wishlist view, where a
// nil or Unwatched status means "still to watch".
type AnimeWithWishlistAndStatus struct {
	Anime  Anime
	Item   WishlistItem
	Status *AnimeStatus
}

// Counts aggregates the scalar counters shown on the home screen.
// Unwatched counts titles whose status row is absent or UNWATCHED,
// matching the by-status query semantics.
type Counts struct {
	Anime     int `db:"anime"`
	Watching  int `db:"watching"`
	Completed int `db:"completed"`
	Unwatched int `db:"unwatched"`
	Dropped   int `db:"dropped"`
	Wishlist  int `db:"wishlist"`
}
