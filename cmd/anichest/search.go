// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Search command finds titles by substring.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search cataloged titles by name",
	Long: `Search lists titles whose name contains the query, case-insensitive,
ordered by title. A blank query lists everything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := cat.SearchByTitle(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(results)
		}
		if len(results) == 0 {
			fmt.Println("no matches")
			return nil
		}
		for _, a := range results {
			fmt.Printf("%s  %s\n", a.ID, a.Title)
		}
		return nil
	},
}
