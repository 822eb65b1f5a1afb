// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/anichest/anichest/internal/csvio"
)

// ImportResult summarizes a CSV import. A non-empty Errors list does
// not mean the import failed: rows that succeeded stay committed.
type ImportResult struct {
	Imported int      // rows inserted
	Skipped  int      // rows skipped because the title already exists
	Errors   []string // per-row failures, "line N: reason"
}

// ImportCSV reads catalog rows from r and inserts them one at a time.
// Malformed rows are recorded and skipped; rows whose title is already
// cataloged count as skipped. Each insert is its own atomic unit:
// cancelling ctx stops issuing further rows but does not roll back the
// ones already committed, and the partial result is returned alongside
// the context error.
func (c *Catalog) ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	var result ImportResult

	reader := csvio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		a, line, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, csvio.ErrEmptyFile) {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		exists, err := c.store.ExistsByTitle(ctx, a.Title)
		if err != nil {
			return result, translate(err)
		}
		if exists {
			result.Skipped++
			continue
		}

		if _, err := c.store.InsertAnime(ctx, &a); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: insert %q: %v", line, a.Title, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}

// ExportCSV writes the full catalog, ordered by title, to w.
func (c *Catalog) ExportCSV(ctx context.Context, w io.Writer) error {
	list, err := c.store.AllAnime(ctx)
	if err != nil {
		return translate(err)
	}
	if err := csvio.Write(w, list); err != nil {
		return translate(err)
	}
	return nil
}

// ExportFileName returns the timestamped name for a new export file.
func (c *Catalog) ExportFileName() string {
	return csvio.ExportFileName(c.now())
}
