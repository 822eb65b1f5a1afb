// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Output helpers shared by the anichest subcommands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/anichest/anichest/pkg/types"
)

// statusBadge returns the colored human-readable status label.
func statusBadge(s types.WatchStatus) string {
	switch s {
	case types.StatusWatching:
		return color.CyanString(s.Label())
	case types.StatusCompleted:
		return color.GreenString(s.Label())
	case types.StatusDropped:
		return color.RedString(s.Label())
	default:
		return color.HiBlackString(s.Label())
	}
}

// priorityBadge returns the colored priority label.
func priorityBadge(p types.Priority) string {
	switch p {
	case types.PriorityHigh:
		return color.RedString(string(p))
	case types.PriorityMedium:
		return color.YellowString(string(p))
	default:
		return color.HiBlackString(string(p))
	}
}

// ratingStars renders a 0-5 rating, with 0 meaning unrated.
func ratingStars(rating int) string {
	if rating <= 0 {
		return "unrated"
	}
	stars := ""
	for i := 0; i < rating; i++ {
		stars += "*"
	}
	return stars
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printAnimeRow prints one catalog line: id, title, year, status.
func printAnimeRow(a types.Anime, status types.WatchStatus) {
	year := ""
	if a.Year > 0 {
		year = fmt.Sprintf("(%d)", a.Year)
	}
	fmt.Printf("%s  %-40s %-6s %s\n", a.ID, a.Title, year, statusBadge(status))
}
