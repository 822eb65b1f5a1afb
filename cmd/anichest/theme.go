// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Theme command reads and writes the UI theme preference.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anichest/anichest/internal/paths"
)

// Recognized theme values. The preference is stored in config.yaml and
// honored by whatever renders the catalog; the CLI itself only keeps it.
const (
	themeSystem = "system"
	themeLight  = "light"
	themeDark   = "dark"
)

var validThemes = map[string]bool{
	themeSystem: true,
	themeLight:  true,
	themeDark:   true,
}

var themeCmd = &cobra.Command{
	Use:   "theme [system|light|dark]",
	Short: "Show or set the UI theme preference",
	Long: `Theme prints the stored UI theme preference, or persists a new one
into config.yaml when a value is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println(cfg.GetString(cfgKeyTheme))
			return nil
		}

		theme := args[0]
		if !validThemes[theme] {
			return fmt.Errorf("unknown theme %q (want system, light or dark)", theme)
		}

		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}
		if err := saveConfigValue(configDir, cfgKeyTheme, theme); err != nil {
			return err
		}
		fmt.Println(theme)
		return nil
	},
}
