// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package csvio encodes and decodes the catalog CSV exchange format:
// a header row followed by one row per title, RFC 4180 quoting. Fields
// are quoted only when they contain a comma, a quote, or a newline,
// and embedded quotes are doubled.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/anichest/anichest/pkg/types"
)

// Header is the exact column order of the exchange format.
var Header = []string{"title", "totalEpisodes", "genre", "year", "description"}

// ErrEmptyFile is returned when the input has no header row.
var ErrEmptyFile = errors.New("csv file is empty")

// Write serializes the list to w, header first.
func Write(w io.Writer, list []types.Anime) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, a := range list {
		record := []string{
			a.Title,
			strconv.Itoa(a.TotalEpisodes),
			a.Genre,
			strconv.Itoa(a.Year),
			a.Description,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row for %q: %w", a.Title, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ExportFileName generates the export file name from the given local
// timestamp.
func ExportFileName(t time.Time) string {
	return "anime_export_" + t.Format("2006-01-02_15-04-05") + ".csv"
}

// Reader decodes catalog rows one at a time so imports can stop between
// rows and report per-row failures without aborting.
type Reader struct {
	r          *csv.Reader
	line       int
	headerRead bool
}

// NewReader wraps r for row-by-row decoding.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return &Reader{r: cr}
}

// Next returns the next title and its 1-based line number (the header
// is line 1). A malformed row yields a non-nil error with that row's
// line number; the reader stays usable so the caller can continue with
// subsequent rows. io.EOF signals the end of input, ErrEmptyFile an
// input with no header at all.
func (r *Reader) Next() (types.Anime, int, error) {
	if !r.headerRead {
		r.line++
		if _, err := r.r.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return types.Anime{}, r.line, ErrEmptyFile
			}
			return types.Anime{}, r.line, fmt.Errorf("read csv header: %w", err)
		}
		r.headerRead = true
	}

	r.line++
	record, err := r.r.Read()
	if errors.Is(err, io.EOF) {
		return types.Anime{}, r.line, io.EOF
	}
	if err != nil {
		return types.Anime{}, r.line, fmt.Errorf("malformed row: %w", err)
	}

	if len(record) < len(Header) {
		return types.Anime{}, r.line, fmt.Errorf("expected %d fields, got %d", len(Header), len(record))
	}

	title := strings.TrimSpace(record[0])
	if title == "" {
		return types.Anime{}, r.line, errors.New("title is empty")
	}

	return types.Anime{
		Title:         title,
		TotalEpisodes: parseIntOrZero(record[1]),
		Genre:         record[2],
		Year:          parseIntOrZero(record[3]),
		Description:   record[4],
	}, r.line, nil
}

// parseIntOrZero parses a numeric field, defaulting to 0 when the field
// does not parse rather than failing the row.
func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
