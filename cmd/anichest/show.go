// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Show command prints the full record for one title.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anichest/anichest/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show details for a cataloged title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := cat.AnimeByID(ctx, args[0])
		if err != nil {
			return err
		}
		st, err := cat.StatusByAnimeID(ctx, a.ID)
		if err != nil && !errors.Is(err, types.ErrNotFound) {
			return err
		}
		item, err := cat.WishlistItemByAnimeID(ctx, a.ID)
		if err != nil && !errors.Is(err, types.ErrNotFound) {
			return err
		}

		if flagJSON {
			return printJSON(struct {
				Anime    types.Anime         `json:"anime"`
				Status   *types.AnimeStatus  `json:"status,omitempty"`
				Wishlist *types.WishlistItem `json:"wishlist,omitempty"`
			}{*a, st, item})
		}

		fmt.Printf("%s\n", a.Title)
		fmt.Printf("  ID:       %s\n", a.ID)
		if a.Year > 0 {
			fmt.Printf("  Year:     %d\n", a.Year)
		}
		if a.Genre != "" {
			fmt.Printf("  Genre:    %s\n", a.Genre)
		}
		if a.TotalEpisodes > 0 {
			fmt.Printf("  Episodes: %d\n", a.TotalEpisodes)
		}
		if a.Description != "" {
			fmt.Printf("  About:    %s\n", a.Description)
		}

		if st == nil {
			fmt.Printf("  Status:   %s\n", statusBadge(types.StatusUnwatched))
		} else {
			fmt.Printf("  Status:   %s\n", statusBadge(st.Status))
			if st.WatchedEpisodes > 0 {
				fmt.Printf("  Watched:  %d episodes\n", st.WatchedEpisodes)
			}
			fmt.Printf("  Rating:   %s\n", ratingStars(st.Rating))
			if st.StartDate != "" {
				fmt.Printf("  Started:  %s\n", st.StartDate)
			}
			if st.FinishDate != "" {
				fmt.Printf("  Finished: %s\n", st.FinishDate)
			}
			if st.Review != "" {
				fmt.Printf("  Review:   %s\n", st.Review)
			}
		}

		if item != nil {
			fmt.Printf("  Wishlist: %s\n", priorityBadge(item.Priority))
			if item.Notes != "" {
				fmt.Printf("  Notes:    %s\n", item.Notes)
			}
		}
		return nil
	},
}
