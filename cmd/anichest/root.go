// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Root command for the anichest CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anichest/anichest/internal/catalog"
	"github.com/anichest/anichest/internal/paths"
	"github.com/anichest/anichest/internal/sqlite"
	"github.com/anichest/anichest/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Process-wide handles, set by PersistentPreRunE. The store handle is
// passed explicitly through construction rather than hidden behind a
// lazy singleton.
var (
	cfg   *viper.Viper
	store *sqlite.Store
	cat   *catalog.Catalog
)

var rootCmd = &cobra.Command{
	Use:   "anichest",
	Short: "Anichest is a local anime watching tracker",
	Long: `Anichest catalogs anime titles, tracks watch status, progress and
ratings, keeps a wishlist of titles to watch later, and imports/exports
the catalog as CSV. All data lives in a local SQLite database.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Version needs no store.
		if cmd.Name() == "version" {
			return nil
		}
		return openStore()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(wishlistCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(themeCmd)
}

// openStore loads configuration and opens the catalog store.
func openStore() error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err = loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	store, err = sqlite.Open(types.Config{
		DataDir:             dataDir,
		Seed:                cfg.GetBool(cfgKeySeed),
		DestructiveFallback: cfg.GetBool(cfgKeyDestructive),
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	cat = catalog.New(store)
	return nil
}

// closeStore releases the store handle.
func closeStore() error {
	if store != nil {
		return store.Close()
	}
	return nil
}
