// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package sqlite

import (
	"context"
	"fmt"

	"github.com/anichest/anichest/pkg/types"
)

// Counts returns the aggregate counters in one read. Unwatched is
// absence-aware: it counts titles whose status row is missing as well
// as explicit UNWATCHED rows, matching AnimeByStatus semantics.
func (s *Store) Counts(ctx context.Context) (types.Counts, error) {
	db, err := s.conn()
	if err != nil {
		return types.Counts{}, err
	}

	var c types.Counts
	err = db.GetContext(ctx, &c, `
		SELECT
		    (SELECT COUNT(*) FROM anime) AS anime,
		    (SELECT COUNT(*) FROM anime_status WHERE status = 'WATCHING') AS watching,
		    (SELECT COUNT(*) FROM anime_status WHERE status = 'COMPLETED') AS completed,
		    (SELECT COUNT(*) FROM anime a
		        LEFT JOIN anime_status s ON s.anime_id = a.id
		        WHERE s.status IS NULL OR s.status = 'UNWATCHED') AS unwatched,
		    (SELECT COUNT(*) FROM anime_status WHERE status = 'DROPPED') AS dropped,
		    (SELECT COUNT(*) FROM wishlist) AS wishlist`)
	if err != nil {
		return types.Counts{}, fmt.Errorf("read counts: %w", err)
	}
	return c, nil
}
