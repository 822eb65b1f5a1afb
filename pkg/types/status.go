// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"database/sql/driver"
	"fmt"
)

// WatchStatus is the viewing state of a cataloged title.
// Values are stored by their symbolic name; decoding an unrecognized
// stored value is a hard error, never a silent default.
type WatchStatus string

// Watch status values. A title with no status row is treated as
// Unwatched by the query layer.
const (
	StatusUnwatched WatchStatus = "UNWATCHED"
	StatusWatching  WatchStatus = "WATCHING"
	StatusCompleted WatchStatus = "COMPLETED"
	StatusDropped   WatchStatus = "DROPPED"
)

// WatchStatuses lists all recognized watch status values.
var WatchStatuses = []WatchStatus{
	StatusUnwatched,
	StatusWatching,
	StatusCompleted,
	StatusDropped,
}

var validStatuses = map[WatchStatus]bool{
	StatusUnwatched: true,
	StatusWatching:  true,
	StatusCompleted: true,
	StatusDropped:   true,
}

// ParseWatchStatus decodes a stored status name.
// Returns ErrInvalidStatus for anything outside the recognized set.
func ParseWatchStatus(s string) (WatchStatus, error) {
	ws := WatchStatus(s)
	if !validStatuses[ws] {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return ws, nil
}

// Valid reports whether the status is one of the recognized values.
func (s WatchStatus) Valid() bool {
	return validStatuses[s]
}

// Label returns the human-readable form used in CLI output.
func (s WatchStatus) Label() string {
	switch s {
	case StatusUnwatched:
		return "Unwatched"
	case StatusWatching:
		return "Watching"
	case StatusCompleted:
		return "Completed"
	case StatusDropped:
		return "Dropped"
	default:
		return string(s)
	}
}

// Scan implements sql.Scanner with strict decoding.
func (s *WatchStatus) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("%w: unexpected type %T", ErrInvalidStatus, src)
	}
	ws, err := ParseWatchStatus(raw)
	if err != nil {
		return err
	}
	*s = ws
	return nil
}

// Value implements driver.Valuer, storing the symbolic name.
func (s WatchStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
	}
	return string(s), nil
}

// AnimeStatus is the per-title viewing progress and opinion.
// At most one row exists per anime, enforced by a unique index on
// anime_id.
type AnimeStatus struct {
	ID              string      `db:"id"`
	AnimeID         string      `db:"anime_id"`
	Status          WatchStatus `db:"status"`
	Rating          int         `db:"rating"` // 0 unrated, 1-5 rated
	Review          string      `db:"review"`
	WatchedEpisodes int         `db:"watched_episodes"`
	StartDate       string      `db:"start_date"`  // ISO date, empty when unset
	FinishDate      string      `db:"finish_date"` // ISO date, empty when unset
	UpdatedAt       int64       `db:"updated_at"`  // epoch milliseconds, set on every write
}
