// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Config loading for the anichest CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDataDir     = "data_dir"
	cfgKeySeed        = "seed"
	cfgKeyTheme       = "theme"
	cfgKeyDestructive = "destructive_fallback"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Anichest CLI configuration

# Data directory holding anichest.db (optional; overridable by --data-dir)
# data_dir:

# Seed the sample catalog when the database is empty
seed: true

# UI theme preference: system, light, or dark
theme: system
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeySeed, true)
	v.SetDefault(cfgKeyTheme, themeSystem)
	v.SetDefault(cfgKeyDestructive, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file
// does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// saveConfigValue persists a single key into config.yaml, keeping the
// other keys intact.
func saveConfigValue(configDir, key string, value any) error {
	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	v.Set(key, value)
	return v.WriteConfigAs(filepath.Join(configDir, configFileExt))
}
