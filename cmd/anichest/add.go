// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Add command registers a new anime title.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anichest/anichest/pkg/types"
)

var (
	addEpisodes int
	addGenre    string
	addYear     int
	addDesc     string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Register a new anime title",
	Long: `Add registers a new title in the catalog. The title must be unique;
registering an already cataloged title fails.

Example:
  anichest add "Cowboy Bebop" --episodes 26 --year 1998 --genre "Sci-Fi,Noir"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := cat.RegisterAnime(cmd.Context(), types.Anime{
			Title:         args[0],
			TotalEpisodes: addEpisodes,
			Genre:         addGenre,
			Year:          addYear,
			Description:   addDesc,
		})
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

func init() {
	addCmd.Flags().IntVar(&addEpisodes, "episodes", 0, "total episode count (0 if unknown)")
	addCmd.Flags().StringVar(&addGenre, "genre", "", "comma-separated genre tags")
	addCmd.Flags().IntVar(&addYear, "year", 0, "first airing year (0 if unknown)")
	addCmd.Flags().StringVar(&addDesc, "desc", "", "description")
}
