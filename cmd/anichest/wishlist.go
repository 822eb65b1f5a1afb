// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Wishlist command manages the to-watch list.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anichest/anichest/pkg/types"
)

var (
	wishlistPriority  string
	wishlistNotes     string
	wishlistUnwatched bool

	wishlistRegEpisodes int
	wishlistRegGenre    string
	wishlistRegYear     int
	wishlistRegDesc     string
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Manage the to-watch wishlist",
}

var wishlistAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add a cataloged title to the wishlist",
	Long: `Add puts an already cataloged title on the wishlist. Adding a title
that is already wishlisted updates its priority and notes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := cat.AnimeByID(ctx, args[0])
		if err != nil {
			return err
		}
		priority, err := types.ParsePriority(strings.ToUpper(wishlistPriority))
		if err != nil {
			return err
		}
		if err := cat.AddToWishlist(ctx, a.ID, priority, wishlistNotes); err != nil {
			return err
		}
		fmt.Printf("%s  %s\n", a.Title, priorityBadge(priority))
		return nil
	},
}

var wishlistRegisterCmd = &cobra.Command{
	Use:   "register <title>",
	Short: "Register a new title straight onto the wishlist",
	Long: `Register catalogs a new title and wishlists it in one step.

Example:
  anichest wishlist register "Vinland Saga" --priority high --year 2019`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		priority, err := types.ParsePriority(strings.ToUpper(wishlistPriority))
		if err != nil {
			return err
		}
		id, err := cat.RegisterToWishlist(cmd.Context(), types.Anime{
			Title:         args[0],
			TotalEpisodes: wishlistRegEpisodes,
			Genre:         wishlistRegGenre,
			Year:          wishlistRegYear,
			Description:   wishlistRegDesc,
		}, priority, wishlistNotes)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var wishlistRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a title from the wishlist",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cat.RemoveFromWishlist(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("removed")
		return nil
	},
}

var wishlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List wishlisted titles",
	Long: `List prints wishlisted titles, highest priority first, newest first
within a priority. With --unwatched only titles not yet watched are
shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if wishlistUnwatched {
			rows, err := cat.UnwatchedWishlistWithAnime(ctx)
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(rows)
			}
			for _, r := range rows {
				printWishlistRow(r.Anime, r.Item)
			}
			return nil
		}

		rows, err := cat.WishlistWithAnime(ctx)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(rows)
		}
		for _, r := range rows {
			printWishlistRow(r.Anime, r.Item)
		}
		return nil
	},
}

func printWishlistRow(a types.Anime, item types.WishlistItem) {
	line := fmt.Sprintf("%s  %-8s  %s", a.ID, priorityBadge(item.Priority), a.Title)
	if item.Notes != "" {
		line += "  (" + item.Notes + ")"
	}
	fmt.Println(line)
}

func init() {
	wishlistAddCmd.Flags().StringVar(&wishlistPriority, "priority", string(types.PriorityMedium), "priority (low, medium, high)")
	wishlistAddCmd.Flags().StringVar(&wishlistNotes, "notes", "", "why this title is on the list")

	wishlistRegisterCmd.Flags().StringVar(&wishlistPriority, "priority", string(types.PriorityMedium), "priority (low, medium, high)")
	wishlistRegisterCmd.Flags().StringVar(&wishlistNotes, "notes", "", "why this title is on the list")
	wishlistRegisterCmd.Flags().IntVar(&wishlistRegEpisodes, "episodes", 0, "total episode count (0 if unknown)")
	wishlistRegisterCmd.Flags().StringVar(&wishlistRegGenre, "genre", "", "comma-separated genre tags")
	wishlistRegisterCmd.Flags().IntVar(&wishlistRegYear, "year", 0, "first airing year (0 if unknown)")
	wishlistRegisterCmd.Flags().StringVar(&wishlistRegDesc, "desc", "", "description")

	wishlistListCmd.Flags().BoolVar(&wishlistUnwatched, "unwatched", false, "only titles not yet watched")

	wishlistCmd.AddCommand(wishlistAddCmd)
	wishlistCmd.AddCommand(wishlistRegisterCmd)
	wishlistCmd.AddCommand(wishlistRemoveCmd)
	wishlistCmd.AddCommand(wishlistListCmd)
}
