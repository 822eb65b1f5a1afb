// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/anichest/anichest/pkg/types"
)

// statusRow carries the nullable status half of a LEFT JOIN row.
type statusRow struct {
	SID              sql.NullString `db:"s_id"`
	SStatus          sql.NullString `db:"s_status"`
	SRating          sql.NullInt64  `db:"s_rating"`
	SReview          sql.NullString `db:"s_review"`
	SWatchedEpisodes sql.NullInt64  `db:"s_watched_episodes"`
	SStartDate       sql.NullString `db:"s_start_date"`
	SFinishDate      sql.NullString `db:"s_finish_date"`
	SUpdatedAt       sql.NullInt64  `db:"s_updated_at"`
}

// toStatus converts the nullable half into an optional AnimeStatus.
// Returns nil when no status row was joined. An unrecognized stored
// status name is a hard decode error.
func (r statusRow) toStatus(animeID string) (*types.AnimeStatus, error) {
	if !r.SID.Valid {
		return nil, nil
	}
	status, err := types.ParseWatchStatus(r.SStatus.String)
	if err != nil {
		return nil, fmt.Errorf("decode status for anime %s: %w", animeID, err)
	}
	return &types.AnimeStatus{
		ID:              r.SID.String,
		AnimeID:         animeID,
		Status:          status,
		Rating:          int(r.SRating.Int64),
		Review:          r.SReview.String,
		WatchedEpisodes: int(r.SWatchedEpisodes.Int64),
		StartDate:       r.SStartDate.String,
		FinishDate:      r.SFinishDate.String,
		UpdatedAt:       r.SUpdatedAt.Int64,
	}, nil
}

// animeStatusRow is one LEFT JOIN row of anime against anime_status.
type animeStatusRow struct {
	types.Anime
	statusRow
}

const animeStatusSelect = `
	SELECT a.id, a.title, a.total_episodes, a.genre, a.year, a.description,
	       s.id AS s_id, s.status AS s_status, s.rating AS s_rating,
	       s.review AS s_review, s.watched_episodes AS s_watched_episodes,
	       s.start_date AS s_start_date, s.finish_date AS s_finish_date,
	       s.updated_at AS s_updated_at
	FROM anime a
	LEFT JOIN anime_status s ON s.anime_id = a.id`

func toAnimeWithStatus(rows []animeStatusRow) ([]types.AnimeWithStatus, error) {
	out := make([]types.AnimeWithStatus, 0, len(rows))
	for _, r := range rows {
		status, err := r.toStatus(r.Anime.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, types.AnimeWithStatus{Anime: r.Anime, Status: status})
	}
	return out, nil
}

// AllAnimeWithStatus returns every title left-joined to its optional
// status row, ordered by title ascending.
func (s *Store) AllAnimeWithStatus(ctx context.Context) ([]types.AnimeWithStatus, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var rows []animeStatusRow
	err = db.SelectContext(ctx, &rows, animeStatusSelect+" ORDER BY a.title ASC")
	if err != nil {
		return nil, fmt.Errorf("list anime with status: %w", err)
	}
	return toAnimeWithStatus(rows)
}

// AnimeByStatus returns titles whose status equals the given value.
// A title with no status row at all counts as UNWATCHED.
func (s *Store) AnimeByStatus(ctx context.Context, status types.WatchStatus) ([]types.AnimeWithStatus, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidStatus, string(status))
	}
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var rows []animeStatusRow
	err = db.SelectContext(ctx, &rows, animeStatusSelect+`
		WHERE s.status = ? OR (s.status IS NULL AND ? = 'UNWATCHED')
		ORDER BY a.title ASC`, status, status)
	if err != nil {
		return nil, fmt.Errorf("list anime by status: %w", err)
	}
	return toAnimeWithStatus(rows)
}

const statusColumns = "id, anime_id, status, rating, review, watched_episodes, start_date, finish_date, updated_at"

// StatusByAnimeID returns the status row for a title, or ErrNotFound.
func (s *Store) StatusByAnimeID(ctx context.Context, animeID string) (*types.AnimeStatus, error) {
	if animeID == "" {
		return nil, types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var st types.AnimeStatus
	err = db.GetContext(ctx, &st,
		"SELECT "+statusColumns+" FROM anime_status WHERE anime_id = ?", animeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get status for anime %s: %w", animeID, err)
	}
	return &st, nil
}

const upsertStatusSQL = `
	INSERT INTO anime_status (id, anime_id, status, rating, review,
	                          watched_episodes, start_date, finish_date, updated_at)
	VALUES (:id, :anime_id, :status, :rating, :review,
	        :watched_episodes, :start_date, :finish_date, :updated_at)
	ON CONFLICT(anime_id) DO UPDATE SET
	    status = excluded.status,
	    rating = excluded.rating,
	    review = excluded.review,
	    watched_episodes = excluded.watched_episodes,
	    start_date = excluded.start_date,
	    finish_date = excluded.finish_date,
	    updated_at = excluded.updated_at`

// prepareStatus fills generated fields before a status write.
func prepareStatus(st *types.AnimeStatus) error {
	if st.AnimeID == "" {
		return types.ErrInvalidID
	}
	if !st.Status.Valid() {
		return fmt.Errorf("%w: %q", types.ErrInvalidStatus, string(st.Status))
	}
	if st.ID == "" {
		st.ID = newID()
	}
	if st.UpdatedAt == 0 {
		st.UpdatedAt = time.Now().UnixMilli()
	}
	return nil
}

// UpsertStatus inserts the status row for st.AnimeID, or replaces the
// existing one. Exactly one row per title survives; the surviving row
// keeps its original surrogate ID, which callers must not rely on.
func (s *Store) UpsertStatus(ctx context.Context, st *types.AnimeStatus) error {
	if err := prepareStatus(st); err != nil {
		return err
	}
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.NamedExecContext(ctx, upsertStatusSQL, st); err != nil {
		return fmt.Errorf("upsert status: %w", err)
	}

	s.hub.notify(tableStatus)
	return nil
}

// UpdateStatus updates the row identified by st.ID in place.
// Returns ErrNotFound when no row has that ID.
func (s *Store) UpdateStatus(ctx context.Context, st types.AnimeStatus) error {
	if st.ID == "" {
		return types.ErrInvalidID
	}
	if !st.Status.Valid() {
		return fmt.Errorf("%w: %q", types.ErrInvalidStatus, string(st.Status))
	}
	if st.UpdatedAt == 0 {
		st.UpdatedAt = time.Now().UnixMilli()
	}
	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.NamedExecContext(ctx, `
		UPDATE anime_status
		SET status = :status, rating = :rating, review = :review,
		    watched_episodes = :watched_episodes, start_date = :start_date,
		    finish_date = :finish_date, updated_at = :updated_at
		WHERE id = :id`, st)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return types.ErrNotFound
	}

	s.hub.notify(tableStatus)
	return nil
}

// DeleteStatus removes the given status row by ID.
func (s *Store) DeleteStatus(ctx context.Context, st types.AnimeStatus) error {
	if st.ID == "" {
		return types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, "DELETE FROM anime_status WHERE id = ?", st.ID)
	if err != nil {
		return fmt.Errorf("delete status: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.hub.notify(tableStatus)
	}
	return nil
}

// DeleteStatusByAnimeID removes a title's status row, if any.
func (s *Store) DeleteStatusByAnimeID(ctx context.Context, animeID string) error {
	if animeID == "" {
		return types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, "DELETE FROM anime_status WHERE anime_id = ?", animeID)
	if err != nil {
		return fmt.Errorf("delete status: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.hub.notify(tableStatus)
	}
	return nil
}

// UpdateAnimeAndStatus updates the anime row and upserts its status row
// inside a single transaction. Either both writes commit or neither
// does; a failure partway leaves the store exactly as it was.
func (s *Store) UpdateAnimeAndStatus(ctx context.Context, a types.Anime, st *types.AnimeStatus) error {
	if a.ID == "" {
		return types.ErrInvalidID
	}
	st.AnimeID = a.ID
	if err := prepareStatus(st); err != nil {
		return err
	}

	err := s.runInTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx, updateAnimeSQL, a)
		if err != nil {
			return fmt.Errorf("update anime: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return types.ErrNotFound
		}
		if _, err := tx.NamedExecContext(ctx, upsertStatusSQL, st); err != nil {
			return fmt.Errorf("upsert status: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.hub.notify(tableAnime, tableStatus)
	return nil
}
