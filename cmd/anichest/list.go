// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// List command prints the catalog with watch statuses.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/anichest/anichest/pkg/types"
)

var listStatus string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cataloged titles with their watch status",
	Long: `List prints every cataloged title with its watch status, ordered by
title. With --status only titles in that state are shown; titles without
a status row count as unwatched.

Example:
  anichest list
  anichest list --status watching`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var (
			rows []types.AnimeWithStatus
			err  error
		)
		if listStatus != "" {
			status, parseErr := types.ParseWatchStatus(strings.ToUpper(listStatus))
			if parseErr != nil {
				return parseErr
			}
			rows, err = cat.AnimeByStatus(ctx, status)
		} else {
			rows, err = cat.AllAnimeWithStatus(ctx)
		}
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(rows)
		}
		for _, r := range rows {
			printAnimeRow(r.Anime, r.EffectiveStatus())
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by watch status (unwatched, watching, completed, dropped)")
}
