// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/anichest/anichest/pkg/types"
)

// animeWishlistRow is one INNER JOIN row of anime against wishlist.
type animeWishlistRow struct {
	types.Anime
	WID       string         `db:"w_id"`
	WPriority types.Priority `db:"w_priority"`
	WAddedAt  int64          `db:"w_added_at"`
	WNotes    string         `db:"w_notes"`
}

func (r animeWishlistRow) item() types.WishlistItem {
	return types.WishlistItem{
		ID:       r.WID,
		AnimeID:  r.Anime.ID,
		Priority: r.WPriority,
		AddedAt:  r.WAddedAt,
		Notes:    r.WNotes,
	}
}

// animeWishlistStatusRow adds the optional status half for the
// three-way unwatched-wishlist view.
type animeWishlistStatusRow struct {
	animeWishlistRow
	statusRow
}

// Wishlist ordering: priority HIGH > MEDIUM > LOW, then most recently
// added first. Priorities are stored by name, so a CASE expression maps
// them onto their rank.
const wishlistOrder = `
	ORDER BY CASE w.priority
	    WHEN 'HIGH' THEN 3
	    WHEN 'MEDIUM' THEN 2
	    WHEN 'LOW' THEN 1
	    ELSE 0
	END DESC, w.added_at DESC`

const wishlistSelect = `
	SELECT a.id, a.title, a.total_episodes, a.genre, a.year, a.description,
	       w.id AS w_id, w.priority AS w_priority, w.added_at AS w_added_at,
	       w.notes AS w_notes
	FROM anime a
	INNER JOIN wishlist w ON w.anime_id = a.id`

// WishlistWithAnime returns every wishlist entry joined to its title,
// ordered by priority descending then added time descending.
func (s *Store) WishlistWithAnime(ctx context.Context) ([]types.AnimeWithWishlist, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var rows []animeWishlistRow
	if err := db.SelectContext(ctx, &rows, wishlistSelect+wishlistOrder); err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}

	out := make([]types.AnimeWithWishlist, 0, len(rows))
	for _, r := range rows {
		out = append(out, types.AnimeWithWishlist{Anime: r.Anime, Item: r.item()})
	}
	return out, nil
}

// UnwatchedWishlistWithAnime returns wishlist entries whose title has
// no status row or an UNWATCHED one, in wishlist order. These are the
// titles still to watch.
func (s *Store) UnwatchedWishlistWithAnime(ctx context.Context) ([]types.AnimeWithWishlistAndStatus, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var rows []animeWishlistStatusRow
	err = db.SelectContext(ctx, &rows, `
	SELECT a.id, a.title, a.total_episodes, a.genre, a.year, a.description,
	       w.id AS w_id, w.priority AS w_priority, w.added_at AS w_added_at,
	       w.notes AS w_notes,
	       s.id AS s_id, s.status AS s_status, s.rating AS s_rating,
	       s.review AS s_review, s.watched_episodes AS s_watched_episodes,
	       s.start_date AS s_start_date, s.finish_date AS s_finish_date,
	       s.updated_at AS s_updated_at
	FROM anime a
	INNER JOIN wishlist w ON w.anime_id = a.id
	LEFT JOIN anime_status s ON s.anime_id = a.id
	WHERE s.status IS NULL OR s.status = 'UNWATCHED'`+wishlistOrder)
	if err != nil {
		return nil, fmt.Errorf("list unwatched wishlist: %w", err)
	}

	out := make([]types.AnimeWithWishlistAndStatus, 0, len(rows))
	for _, r := range rows {
		status, err := r.toStatus(r.Anime.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, types.AnimeWithWishlistAndStatus{
			Anime:  r.Anime,
			Item:   r.item(),
			Status: status,
		})
	}
	return out, nil
}

// WishlistItemByAnimeID returns the wishlist entry for a title, or
// ErrNotFound.
func (s *Store) WishlistItemByAnimeID(ctx context.Context, animeID string) (*types.WishlistItem, error) {
	if animeID == "" {
		return nil, types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var item types.WishlistItem
	err = db.GetContext(ctx, &item,
		"SELECT id, anime_id, priority, added_at, notes FROM wishlist WHERE anime_id = ?", animeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get wishlist item for anime %s: %w", animeID, err)
	}
	return &item, nil
}

// UpsertWishlistItem inserts the wishlist entry for item.AnimeID, or
// replaces the existing one. Exactly one row per title survives.
func (s *Store) UpsertWishlistItem(ctx context.Context, item *types.WishlistItem) error {
	if item.AnimeID == "" {
		return types.ErrInvalidID
	}
	if !item.Priority.Valid() {
		return fmt.Errorf("%w: %q", types.ErrInvalidPriority, string(item.Priority))
	}
	if item.ID == "" {
		item.ID = newID()
	}
	if item.AddedAt == 0 {
		item.AddedAt = time.Now().UnixMilli()
	}
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.NamedExecContext(ctx, `
		INSERT INTO wishlist (id, anime_id, priority, added_at, notes)
		VALUES (:id, :anime_id, :priority, :added_at, :notes)
		ON CONFLICT(anime_id) DO UPDATE SET
		    priority = excluded.priority,
		    added_at = excluded.added_at,
		    notes = excluded.notes`, item)
	if err != nil {
		return fmt.Errorf("upsert wishlist item: %w", err)
	}

	s.hub.notify(tableWishlist)
	return nil
}

// UpdateWishlistItem updates the row identified by item.ID in place.
// Returns ErrNotFound when no row has that ID.
func (s *Store) UpdateWishlistItem(ctx context.Context, item types.WishlistItem) error {
	if item.ID == "" {
		return types.ErrInvalidID
	}
	if !item.Priority.Valid() {
		return fmt.Errorf("%w: %q", types.ErrInvalidPriority, string(item.Priority))
	}
	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.NamedExecContext(ctx, `
		UPDATE wishlist
		SET priority = :priority, added_at = :added_at, notes = :notes
		WHERE id = :id`, item)
	if err != nil {
		return fmt.Errorf("update wishlist item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return types.ErrNotFound
	}

	s.hub.notify(tableWishlist)
	return nil
}

// DeleteWishlistItem removes the given wishlist entry by ID.
func (s *Store) DeleteWishlistItem(ctx context.Context, item types.WishlistItem) error {
	if item.ID == "" {
		return types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, "DELETE FROM wishlist WHERE id = ?", item.ID)
	if err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.hub.notify(tableWishlist)
	}
	return nil
}

// DeleteWishlistItemByAnimeID removes a title's wishlist entry, if any.
func (s *Store) DeleteWishlistItemByAnimeID(ctx context.Context, animeID string) error {
	if animeID == "" {
		return types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, "DELETE FROM wishlist WHERE anime_id = ?", animeID)
	if err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.hub.notify(tableWishlist)
	}
	return nil
}
