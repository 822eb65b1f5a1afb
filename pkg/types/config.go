// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// Config holds store parameters for sqlite.Open.
type Config struct {
	// DataDir is the directory holding the database file.
	// Empty means the current directory.
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`

	// Seed inserts the sample catalog when the anime table is empty.
	Seed bool `json:"seed" yaml:"seed" mapstructure:"seed"`

	// DestructiveFallback deletes and rebuilds the database file when a
	// migration cannot be applied. Last resort; off by default.
	DestructiveFallback bool `json:"destructive_fallback" yaml:"destructive_fallback" mapstructure:"destructive_fallback"`
}
