// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Delete command removes a title and its dependent rows.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a cataloged title",
	Long: `Delete removes a title from the catalog. Its watch status and
wishlist entry, if present, are removed with it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cat.DeleteAnime(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}
