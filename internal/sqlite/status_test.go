// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Unit tests for watch status commands, the status join views, and the
// combined anime+status transaction.
package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anichest/anichest/pkg/types"
)

func TestUpsertStatusCreatesRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := mustInsertAnime(t, s, types.Anime{Title: "Haikyuu!!"})
	st := types.AnimeStatus{
		AnimeID:         id,
		Status:          types.StatusWatching,
		WatchedEpisodes: 7,
	}
	require.NoError(t, s.UpsertStatus(ctx, &st))
	require.NotEmpty(t, st.ID)
	assert.NotZero(t, st.UpdatedAt)

	got, err := s.StatusByAnimeID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, types.StatusWatching, got.Status)
	assert.Equal(t, 7, got.WatchedEpisodes)
}

func TestUpsertStatusKeepsOneRowPerTitle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := mustInsertAnime(t, s, types.Anime{Title: "Vinland Saga"})

	first := types.AnimeStatus{AnimeID: id, Status: types.StatusWatching}
	require.NoError(t, s.UpsertStatus(ctx, &first))

	second := types.AnimeStatus{AnimeID: id, Status: types.StatusCompleted, Rating: 4}
	require.NoError(t, s.UpsertStatus(ctx, &second))

	got, err := s.StatusByAnimeID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, types.StatusCompleted, got.Status)
	assert.Equal(t, 4, got.Rating)
	// The surviving row keeps its original surrogate ID.
	assert.Equal(t, first.ID, got.ID)

	db, err := s.conn()
	require.NoError(t, err)
	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM anime_status WHERE anime_id = ?", id))
	assert.Equal(t, 1, count)
}

func TestUpsertStatusRejectsInvalidInput(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.UpsertStatus(ctx, &types.AnimeStatus{Status: types.StatusWatching})
	assert.ErrorIs(t, err, types.ErrInvalidID)

	id := mustInsertAnime(t, s, types.Anime{Title: "Dorohedoro"})
	err = s.UpsertStatus(ctx, &types.AnimeStatus{AnimeID: id, Status: "PAUSED"})
	assert.ErrorIs(t, err, types.ErrInvalidStatus)
}

func TestStatusByAnimeIDMissing(t *testing.T) {
	s := newTestStore(t)

	id := mustInsertAnime(t, s, types.Anime{Title: "Mob Psycho 100"})
	_, err := s.StatusByAnimeID(context.Background(), id)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestAnimeByStatusTreatsMissingRowAsUnwatched(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// One title with no status row, one with an explicit UNWATCHED row,
	// one actually being watched.
	mustInsertAnime(t, s, types.Anime{Title: "A: no row"})
	explicitID := mustInsertAnime(t, s, types.Anime{Title: "B: explicit"})
	require.NoError(t, s.UpsertStatus(ctx, &types.AnimeStatus{
		AnimeID: explicitID,
		Status:  types.StatusUnwatched,
	}))
	watchingID := mustInsertAnime(t, s, types.Anime{Title: "C: watching"})
	require.NoError(t, s.UpsertStatus(ctx, &types.AnimeStatus{
		AnimeID: watchingID,
		Status:  types.StatusWatching,
	}))

	unwatched, err := s.AnimeByStatus(ctx, types.StatusUnwatched)
	require.NoError(t, err)
	require.Len(t, unwatched, 2)
	assert.Equal(t, "A: no row", unwatched[0].Anime.Title)
	assert.Equal(t, "B: explicit", unwatched[1].Anime.Title)

	watching, err := s.AnimeByStatus(ctx, types.StatusWatching)
	require.NoError(t, err)
	require.Len(t, watching, 1)
	assert.Equal(t, "C: watching", watching[0].Anime.Title)
}

func TestAnimeByStatusRejectsUnknownStatus(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AnimeByStatus(context.Background(), "PAUSED")
	assert.ErrorIs(t, err, types.ErrInvalidStatus)
}

func TestAllAnimeWithStatusStrictDecode(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := mustInsertAnime(t, s, types.Anime{Title: "Berserk"})
	require.NoError(t, s.UpsertStatus(ctx, &types.AnimeStatus{
		AnimeID: id,
		Status:  types.StatusWatching,
	}))

	// Corrupt the stored value behind the store's back: reads must fail
	// loudly rather than default.
	db, err := s.conn()
	require.NoError(t, err)
	_, err = db.Exec("UPDATE anime_status SET status = 'PAUSED' WHERE anime_id = ?", id)
	require.NoError(t, err)

	_, err = s.AllAnimeWithStatus(ctx)
	assert.ErrorIs(t, err, types.ErrInvalidStatus)
}

func TestDeleteStatusByAnimeID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := mustInsertAnime(t, s, types.Anime{Title: "Chainsaw Man"})
	require.NoError(t, s.UpsertStatus(ctx, &types.AnimeStatus{
		AnimeID: id,
		Status:  types.StatusDropped,
	}))

	require.NoError(t, s.DeleteStatusByAnimeID(ctx, id))
	_, err := s.StatusByAnimeID(ctx, id)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// The title itself survives.
	_, err = s.AnimeByID(ctx, id)
	assert.NoError(t, err)
}

func TestUpdateAnimeAndStatusCommitsBoth(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := mustInsertAnime(t, s, types.Anime{Title: "Made in Abyss", TotalEpisodes: 13})

	err := s.UpdateAnimeAndStatus(ctx,
		types.Anime{ID: id, Title: "Made in Abyss", TotalEpisodes: 25},
		&types.AnimeStatus{Status: types.StatusCompleted, Rating: 5},
	)
	require.NoError(t, err)

	a, err := s.AnimeByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 25, a.TotalEpisodes)

	st, err := s.StatusByAnimeID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, types.StatusCompleted, st.Status)
	assert.Equal(t, 5, st.Rating)
}

func TestUpdateAnimeAndStatusRollsBackOnStatusFailure(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := mustInsertAnime(t, s, types.Anime{Title: "Original"})

	// Rating 99 violates the anime_status CHECK constraint, so the
	// status write fails after the anime update has applied. Neither
	// write may survive.
	err := s.UpdateAnimeAndStatus(ctx,
		types.Anime{ID: id, Title: "Changed"},
		&types.AnimeStatus{Status: types.StatusCompleted, Rating: 99},
	)
	require.Error(t, err)

	a, getErr := s.AnimeByID(ctx, id)
	require.NoError(t, getErr)
	assert.Equal(t, "Original", a.Title)

	_, stErr := s.StatusByAnimeID(ctx, id)
	assert.ErrorIs(t, stErr, types.ErrNotFound)
}

func TestUpdateAnimeAndStatusMissingAnime(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateAnimeAndStatus(context.Background(),
		types.Anime{ID: newID(), Title: "Ghost"},
		&types.AnimeStatus{Status: types.StatusWatching},
	)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
