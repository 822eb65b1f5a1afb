// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Export command writes the catalog to a CSV file.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export the catalog to a CSV file",
	Long: `Export writes every cataloged title to a timestamped CSV file in the
given directory (default: current directory). With --out the file is
written to that exact path instead, or to stdout when --out is "-".

Example:
  anichest export
  anichest export --out - > catalog.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if exportOut == "-" {
			return cat.ExportCSV(ctx, os.Stdout)
		}

		path := exportOut
		if path == "" {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path = filepath.Join(dir, cat.ExportFileName())
		}

		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := cat.ExportCSV(ctx, f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", `output file path ("-" for stdout)`)
}
