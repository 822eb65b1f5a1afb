// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Watch command follows the catalog live until interrupted.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCounts bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the catalog live",
	Long: `Watch prints the full catalog with watch statuses, then reprints it
whenever the data changes, until interrupted. With --counts the catalog
counters are followed instead. Changes made by other anichest processes
on the same database are picked up too.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if watchCounts {
			updates, err := cat.WatchCounts(ctx)
			if err != nil {
				return err
			}
			for counts := range updates {
				if flagJSON {
					if err := printJSON(counts); err != nil {
						return err
					}
					continue
				}
				printCounts(counts)
				fmt.Println()
			}
			return nil
		}

		updates, err := cat.WatchAllAnimeWithStatus(ctx)
		if err != nil {
			return err
		}
		for rows := range updates {
			if flagJSON {
				if err := printJSON(rows); err != nil {
					return err
				}
				continue
			}
			for _, r := range rows {
				printAnimeRow(r.Anime, r.EffectiveStatus())
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchCounts, "counts", false, "follow the counters instead of the full list")
}
