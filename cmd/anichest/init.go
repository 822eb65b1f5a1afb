// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Init command materializes the config and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anichest/anichest/internal/paths"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config file and database",
	Long: `Init creates the config directory with a default config.yaml and the
database file, then prints their locations. Running it on an existing
installation changes nothing. Other commands initialize on first use
too; init only makes the locations explicit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}
		fmt.Printf("config: %s\n", configDir)
		fmt.Printf("data:   %s\n", store.Path())
		return nil
	},
}
