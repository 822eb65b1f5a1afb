// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Stats command prints the catalog counters.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anichest/anichest/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog counters",
	Long: `Stats prints how many titles are cataloged, how many are in each
watch state, and how many are wishlisted. Titles without a status row
count as unwatched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		counts, err := cat.Counts(cmd.Context())
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(counts)
		}
		printCounts(counts)
		return nil
	},
}

func printCounts(c types.Counts) {
	fmt.Printf("Anime:     %d\n", c.Anime)
	fmt.Printf("%s: %d\n", statusBadge(types.StatusWatching), c.Watching)
	fmt.Printf("%s: %d\n", statusBadge(types.StatusCompleted), c.Completed)
	fmt.Printf("%s: %d\n", statusBadge(types.StatusUnwatched), c.Unwatched)
	fmt.Printf("%s:   %d\n", statusBadge(types.StatusDropped), c.Dropped)
	fmt.Printf("Wishlist:  %d\n", c.Wishlist)
}
