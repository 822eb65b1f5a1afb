// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Import command loads titles from a CSV file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import titles from a CSV file",
	Long: `Import reads a CSV file with a title,totalEpisodes,genre,year,description
header and registers each row as a new title. Rows whose title is
already cataloged are skipped, malformed rows are reported, and the
rest import normally.

Example:
  anichest import backlog.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		result, err := cat.ImportCSV(cmd.Context(), f)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(result)
		}
		fmt.Printf("imported %d, skipped %d\n", result.Imported, result.Skipped)
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, e)
		}
		return nil
	},
}
