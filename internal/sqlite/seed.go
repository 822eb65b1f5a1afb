// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package sqlite

import (
	"context"
	"fmt"

	"github.com/anichest/anichest/pkg/types"
)

// sampleEntry pairs a sample title with its optional watch status.
type sampleEntry struct {
	anime  types.Anime
	status *types.AnimeStatus
}

// sampleCatalog is inserted on first run so the UI is non-empty. The
// statuses are varied on purpose: one title has an explicit UNWATCHED
// row and one has no status row at all, which the query layer must
// treat the same way.
var sampleCatalog = []sampleEntry{
	{
		anime: types.Anime{
			Title:         "Demon Slayer: Kimetsu no Yaiba",
			TotalEpisodes: 26,
			Genre:         "Action,Historical",
			Year:          2019,
			Description:   "A boy joins the demon slayer corps after his family is killed and his sister turned.",
		},
		status: &types.AnimeStatus{
			Status:     types.StatusCompleted,
			Rating:     5,
			Review:     "Stunning animation.",
			StartDate:  "2024-01-06",
			FinishDate: "2024-02-18",
		},
	},
	{
		anime: types.Anime{
			Title:         "Jujutsu Kaisen",
			TotalEpisodes: 24,
			Genre:         "Action,Supernatural",
			Year:          2020,
			Description:   "High schoolers fight curses as sorcerers in training.",
		},
		status: &types.AnimeStatus{
			Status:          types.StatusWatching,
			WatchedEpisodes: 9,
			StartDate:       "2024-04-07",
		},
	},
	{
		anime: types.Anime{
			Title:         "SPY x FAMILY",
			TotalEpisodes: 12,
			Genre:         "Comedy,Action",
			Year:          2022,
			Description:   "A spy, an assassin, and a telepath pose as an ordinary family.",
		},
		status: &types.AnimeStatus{
			Status: types.StatusUnwatched,
		},
	},
	{
		anime: types.Anime{
			Title:         "Attack on Titan",
			TotalEpisodes: 25,
			Genre:         "Action,Drama",
			Year:          2013,
			Description:   "Humanity fights man-eating titans from behind walled cities.",
		},
		status: &types.AnimeStatus{
			Status:          types.StatusDropped,
			WatchedEpisodes: 8,
			StartDate:       "2023-11-12",
		},
	},
	{
		// No status row: exercises the absence-as-unwatched path.
		anime: types.Anime{
			Title:         "Frieren: Beyond Journey's End",
			TotalEpisodes: 28,
			Genre:         "Fantasy,Adventure",
			Year:          2023,
			Description:   "An elf mage retraces her old party's journey long after the hero's death.",
		},
	},
}

// seedSampleCatalog inserts the sample titles. Idempotent: it runs only
// when the anime table is currently empty, so a second invocation adds
// nothing.
func (s *Store) seedSampleCatalog(ctx context.Context) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM anime"); err != nil {
		return fmt.Errorf("count anime: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, entry := range sampleCatalog {
		anime := entry.anime
		id, err := s.InsertAnime(ctx, &anime)
		if err != nil {
			return fmt.Errorf("insert sample %q: %w", anime.Title, err)
		}
		if entry.status == nil {
			continue
		}
		status := *entry.status
		status.AnimeID = id
		if err := s.UpsertStatus(ctx, &status); err != nil {
			return fmt.Errorf("insert sample status for %q: %w", anime.Title, err)
		}
	}

	return nil
}
