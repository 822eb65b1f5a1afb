// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anichest/anichest/pkg/types"
)

const animeColumns = "id, title, total_episodes, genre, year, description"

// InsertAnime adds a title and returns its generated surrogate ID.
// An existing ID is kept; a primary-key conflict replaces the row,
// matching the command layer's replace-on-conflict contract.
func (s *Store) InsertAnime(ctx context.Context, a *types.Anime) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	if a.ID == "" {
		a.ID = newID()
	}
	_, err = db.NamedExecContext(ctx, `
		INSERT OR REPLACE INTO anime (id, title, total_episodes, genre, year, description)
		VALUES (:id, :title, :total_episodes, :genre, :year, :description)`, a)
	if err != nil {
		return "", fmt.Errorf("insert anime: %w", err)
	}

	s.hub.notify(tableAnime)
	return a.ID, nil
}

const updateAnimeSQL = `
	UPDATE anime
	SET title = :title, total_episodes = :total_episodes, genre = :genre,
	    year = :year, description = :description
	WHERE id = :id`

// UpdateAnime replaces the full row identified by a.ID.
// Returns ErrNotFound when no row has that ID.
func (s *Store) UpdateAnime(ctx context.Context, a types.Anime) error {
	if a.ID == "" {
		return types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.NamedExecContext(ctx, updateAnimeSQL, a)
	if err != nil {
		return fmt.Errorf("update anime: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return types.ErrNotFound
	}

	s.hub.notify(tableAnime)
	return nil
}

// DeleteAnime removes the given title. See DeleteAnimeByID.
func (s *Store) DeleteAnime(ctx context.Context, a types.Anime) error {
	return s.DeleteAnimeByID(ctx, a.ID)
}

// DeleteAnimeByID removes a title. Dependent status and wishlist rows
// are removed in the same statement by the cascade foreign keys.
// Deleting an absent ID is a no-op.
func (s *Store) DeleteAnimeByID(ctx context.Context, id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, "DELETE FROM anime WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete anime: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.hub.notify(tableAnime, tableStatus, tableWishlist)
	}
	return nil
}

// AllAnime returns every title ordered by title ascending.
func (s *Store) AllAnime(ctx context.Context) ([]types.Anime, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var list []types.Anime
	err = db.SelectContext(ctx, &list,
		"SELECT "+animeColumns+" FROM anime ORDER BY title ASC")
	if err != nil {
		return nil, fmt.Errorf("list anime: %w", err)
	}
	return list, nil
}

// AnimeByID returns one title, or ErrNotFound when absent.
func (s *Store) AnimeByID(ctx context.Context, id string) (*types.Anime, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var a types.Anime
	err = db.GetContext(ctx, &a,
		"SELECT "+animeColumns+" FROM anime WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get anime %s: %w", id, err)
	}
	return &a, nil
}

// SearchByTitle returns titles containing the query as a
// case-insensitive substring, ordered by title ascending.
func (s *Store) SearchByTitle(ctx context.Context, query string) ([]types.Anime, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var list []types.Anime
	err = db.SelectContext(ctx, &list, `
		SELECT `+animeColumns+` FROM anime
		WHERE instr(lower(title), lower(?)) > 0
		ORDER BY title ASC`, query)
	if err != nil {
		return nil, fmt.Errorf("search anime: %w", err)
	}
	return list, nil
}

// ExistsByTitle reports whether a title is already cataloged, by exact
// case-sensitive match. Callers pass the trimmed form.
func (s *Store) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	db, err := s.conn()
	if err != nil {
		return false, err
	}

	var exists bool
	err = db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM anime WHERE title = ?)", title)
	if err != nil {
		return false, fmt.Errorf("check title existence: %w", err)
	}
	return exists, nil
}
