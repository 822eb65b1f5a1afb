// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package sqlite

import (
	"context"
	"sync"

	"github.com/anichest/anichest/pkg/types"
)

// Table names used for change notification.
const (
	tableAnime    = "anime"
	tableStatus   = "anime_status"
	tableWishlist = "wishlist"
)

// hub fans table-change notifications out to active subscriptions.
// Every committed write notifies the tables it touched; each
// subscription re-runs its query on the next signal. The signal channel
// is buffered with capacity one so bursts of writes coalesce into a
// single re-query.
type hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*subscriber
}

type subscriber struct {
	tables map[string]bool
	signal chan struct{}
}

func newHub() *hub {
	return &hub{subs: make(map[int]*subscriber)}
}

// subscribe registers interest in the given tables. The returned cancel
// function must be called to release the subscription.
func (h *hub) subscribe(tables ...string) (<-chan struct{}, func()) {
	set := make(map[string]bool, len(tables))
	for _, t := range tables {
		set[t] = true
	}
	sub := &subscriber{tables: set, signal: make(chan struct{}, 1)}

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = sub
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
	return sub.signal, cancel
}

// notify signals every subscription watching one of the given tables.
// Called after the write has committed, so a re-query always observes
// it.
func (h *hub) notify(tables ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		for _, t := range tables {
			if !sub.tables[t] {
				continue
			}
			select {
			case sub.signal <- struct{}{}:
			default: // already pending
			}
			break
		}
	}
}

// watch emits the query result now and again after every commit that
// touches one of the given tables. Each emission is a fresh, fully
// ordered result set; there are no partial or interleaved emissions.
// The channel closes when ctx is cancelled or a re-query fails.
func watch[T any](ctx context.Context, s *Store, tables []string, query func(context.Context) (T, error)) (<-chan T, error) {
	signal, cancel := s.hub.subscribe(tables...)

	first, err := query(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	out := make(chan T, 1)
	go func() {
		defer close(out)
		defer cancel()

		next := first
		for {
			select {
			case out <- next:
			case <-ctx.Done():
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-signal:
			}
			v, err := query(ctx)
			if err != nil {
				return
			}
			next = v
		}
	}()
	return out, nil
}

// WatchAllAnime subscribes to the full catalog, ordered by title.
func (s *Store) WatchAllAnime(ctx context.Context) (<-chan []types.Anime, error) {
	return watch(ctx, s, []string{tableAnime}, s.AllAnime)
}

// WatchSearchByTitle subscribes to a case-insensitive title search.
func (s *Store) WatchSearchByTitle(ctx context.Context, query string) (<-chan []types.Anime, error) {
	return watch(ctx, s, []string{tableAnime}, func(ctx context.Context) ([]types.Anime, error) {
		return s.SearchByTitle(ctx, query)
	})
}

// WatchAllAnimeWithStatus subscribes to the catalog joined to statuses.
func (s *Store) WatchAllAnimeWithStatus(ctx context.Context) (<-chan []types.AnimeWithStatus, error) {
	return watch(ctx, s, []string{tableAnime, tableStatus}, s.AllAnimeWithStatus)
}

// WatchAnimeByStatus subscribes to the titles in the given watch state.
func (s *Store) WatchAnimeByStatus(ctx context.Context, status types.WatchStatus) (<-chan []types.AnimeWithStatus, error) {
	return watch(ctx, s, []string{tableAnime, tableStatus}, func(ctx context.Context) ([]types.AnimeWithStatus, error) {
		return s.AnimeByStatus(ctx, status)
	})
}

// WatchWishlistWithAnime subscribes to the wishlist join view.
func (s *Store) WatchWishlistWithAnime(ctx context.Context) (<-chan []types.AnimeWithWishlist, error) {
	return watch(ctx, s, []string{tableAnime, tableWishlist}, s.WishlistWithAnime)
}

// WatchUnwatchedWishlistWithAnime subscribes to the still-to-watch
// wishlist view.
func (s *Store) WatchUnwatchedWishlistWithAnime(ctx context.Context) (<-chan []types.AnimeWithWishlistAndStatus, error) {
	return watch(ctx, s, []string{tableAnime, tableStatus, tableWishlist}, s.UnwatchedWishlistWithAnime)
}

// WatchCounts subscribes to the aggregate counters.
func (s *Store) WatchCounts(ctx context.Context) (<-chan types.Counts, error) {
	return watch(ctx, s, []string{tableAnime, tableStatus, tableWishlist}, s.Counts)
}
