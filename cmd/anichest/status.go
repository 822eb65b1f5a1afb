// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Status command sets or clears a title's watch status.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anichest/anichest/pkg/types"
)

var (
	statusRating  int
	statusWatched int
	statusReview  string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Manage watch status",
}

var statusSetCmd = &cobra.Command{
	Use:   "set <id> <status>",
	Short: "Set the watch status of a title",
	Long: `Set records the watch status of a title, merging over any existing
status row. Moving into watching stamps the start date; moving into
completed stamps the finish date.

Example:
  anichest status set 0198... watching --watched 4
  anichest status set 0198... completed --rating 5 --review "Great ride"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := cat.AnimeByID(ctx, args[0])
		if err != nil {
			return err
		}
		status, err := types.ParseWatchStatus(strings.ToUpper(args[1]))
		if err != nil {
			return err
		}

		st, err := cat.StatusByAnimeID(ctx, a.ID)
		if err != nil && !errors.Is(err, types.ErrNotFound) {
			return err
		}
		if st == nil {
			st = &types.AnimeStatus{AnimeID: a.ID}
		}
		st.Status = status
		if cmd.Flags().Changed("rating") {
			st.Rating = statusRating
		}
		if cmd.Flags().Changed("watched") {
			st.WatchedEpisodes = statusWatched
		}
		if cmd.Flags().Changed("review") {
			st.Review = statusReview
		}

		if err := cat.SetWatchStatus(ctx, *st); err != nil {
			return err
		}
		fmt.Printf("%s  %s\n", a.Title, statusBadge(status))
		return nil
	},
}

var statusClearCmd = &cobra.Command{
	Use:   "clear <id>",
	Short: "Clear the watch status of a title",
	Long: `Clear removes a title's status row. The title then reads as
unwatched again, with no rating, review or progress.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cat.ClearWatchStatus(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("cleared")
		return nil
	},
}

func init() {
	statusSetCmd.Flags().IntVar(&statusRating, "rating", 0, "rating 1-5 (0 clears)")
	statusSetCmd.Flags().IntVar(&statusWatched, "watched", 0, "watched episode count")
	statusSetCmd.Flags().StringVar(&statusReview, "review", "", "review text")

	statusCmd.AddCommand(statusSetCmd)
	statusCmd.AddCommand(statusClearCmd)
}
