// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"database/sql/driver"
	"fmt"
)

// Priority is the wishlist ordering weight.
// Stored by symbolic name; decoding an unrecognized value is an error.
type Priority string

// Priority values.
const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Priorities lists all recognized priority values.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

// ParsePriority decodes a stored priority name.
// Returns ErrInvalidPriority for anything outside the recognized set.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !validPriorities[p] {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	return p, nil
}

// Valid reports whether the priority is one of the recognized values.
func (p Priority) Valid() bool {
	return validPriorities[p]
}

// Rank returns the ordering weight: HIGH > MEDIUM > LOW.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Scan implements sql.Scanner with strict decoding.
func (p *Priority) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("%w: unexpected type %T", ErrInvalidPriority, src)
	}
	parsed, err := ParsePriority(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value implements driver.Valuer, storing the symbolic name.
func (p Priority) Value() (driver.Value, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, string(p))
	}
	return string(p), nil
}

// WishlistItem marks a title to watch later, separate from watch status.
// At most one row exists per anime, enforced by a unique index on
// anime_id.
type WishlistItem struct {
	ID       string   `db:"id"`
	AnimeID  string   `db:"anime_id"`
	Priority Priority `db:"priority"`
	AddedAt  int64    `db:"added_at"` // epoch milliseconds
	Notes    string   `db:"notes"`
}
