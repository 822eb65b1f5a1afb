// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Update command edits a cataloged title, optionally together with its
// watch status in a single transaction.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anichest/anichest/pkg/types"
)

var (
	updateTitle    string
	updateEpisodes int
	updateGenre    string
	updateYear     int
	updateDesc     string
	updateStatus   string
	updateRating   int
	updateWatched  int
	updateReview   string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a cataloged title",
	Long: `Update edits the fields of a cataloged title. Only the flags given
change; everything else keeps its current value. When any of --status,
--rating, --watched or --review is set, the title and its watch status
are written in one transaction.

Example:
  anichest update 0198... --episodes 24 --status completed --rating 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := cat.AnimeByID(ctx, args[0])
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("title") {
			a.Title = updateTitle
		}
		if cmd.Flags().Changed("episodes") {
			a.TotalEpisodes = updateEpisodes
		}
		if cmd.Flags().Changed("genre") {
			a.Genre = updateGenre
		}
		if cmd.Flags().Changed("year") {
			a.Year = updateYear
		}
		if cmd.Flags().Changed("desc") {
			a.Description = updateDesc
		}

		if !statusFlagsChanged(cmd) {
			if err := cat.UpdateAnime(ctx, *a); err != nil {
				return err
			}
			fmt.Println("updated")
			return nil
		}

		st, err := cat.StatusByAnimeID(ctx, a.ID)
		if err != nil && !errors.Is(err, types.ErrNotFound) {
			return err
		}
		if st == nil {
			st = &types.AnimeStatus{AnimeID: a.ID, Status: types.StatusUnwatched}
		}
		if cmd.Flags().Changed("status") {
			status, parseErr := types.ParseWatchStatus(strings.ToUpper(updateStatus))
			if parseErr != nil {
				return parseErr
			}
			st.Status = status
		}
		if cmd.Flags().Changed("rating") {
			st.Rating = updateRating
		}
		if cmd.Flags().Changed("watched") {
			st.WatchedEpisodes = updateWatched
		}
		if cmd.Flags().Changed("review") {
			st.Review = updateReview
		}

		if err := cat.UpdateAnimeAndStatus(ctx, *a, *st); err != nil {
			return err
		}
		fmt.Println("updated")
		return nil
	},
}

func statusFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"status", "rating", "watched", "review"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	updateCmd.Flags().IntVar(&updateEpisodes, "episodes", 0, "total episode count")
	updateCmd.Flags().StringVar(&updateGenre, "genre", "", "comma-separated genre tags")
	updateCmd.Flags().IntVar(&updateYear, "year", 0, "first airing year")
	updateCmd.Flags().StringVar(&updateDesc, "desc", "", "description")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "watch status (unwatched, watching, completed, dropped)")
	updateCmd.Flags().IntVar(&updateRating, "rating", 0, "rating 1-5 (0 clears)")
	updateCmd.Flags().IntVar(&updateWatched, "watched", 0, "watched episode count")
	updateCmd.Flags().StringVar(&updateReview, "review", "", "review text")
}
