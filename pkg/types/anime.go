// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "strings"

// Anime is a cataloged title.
// ID is a UUID v7 surrogate key generated on insert.
type Anime struct {
	ID            string `db:"id"`
	Title         string `db:"title"`
	TotalEpisodes int    `db:"total_episodes"` // 0 means unknown
	Genre         string `db:"genre"`          // free text, comma-separated tags
	Year          int    `db:"year"`           // 0 means unknown
	Description   string `db:"description"`
}

// TrimmedTitle returns the title with surrounding whitespace removed.
// Title uniqueness and the blank-title check both operate on this form.
func (a Anime) TrimmedTitle() string {
	return strings.TrimSpace(a.Title)
}
