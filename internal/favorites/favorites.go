// Package favorites keeps per-user favorite sets in memory. Each entry is a
// snapshot of the product at the moment it was favorited.
package favorites

import (
	"log/slog"
	"sync"

	"github.com/m3rciful/teleshop/internal/logging"
)

// Entry is a saved product snapshot.
type Entry struct {
	ProductID string
	Title     string
	Image     string
	Price     int
	Rating    float64
	InStock   bool
}

// Store keeps one favorites set per Telegram user. The index mirrors the
// ordered slice so membership checks stay O(1).
// Invariant: at most one entry per product id.
type Store struct {
	mu    sync.RWMutex
	sets  map[int64][]Entry
	index map[int64]map[string]struct{}
}

// NewStore creates an empty favorites store.
func NewStore() *Store {
	return &Store{
		sets:  make(map[int64][]Entry),
		index: make(map[int64]map[string]struct{}),
	}
}

// Add inserts the entry unless the product is already favorited (idempotent).
func (s *Store) Add(userID int64, entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[userID][entry.ProductID]; ok {
		return
	}
	if s.index[userID] == nil {
		s.index[userID] = make(map[string]struct{})
	}
	s.index[userID][entry.ProductID] = struct{}{}
	s.sets[userID] = append(s.sets[userID], entry)
	logging.Favorites.Debug("favorite add",
		slog.String("event", "favorites.add"),
		slog.Int64("user_id", userID),
		slog.String("product_id", entry.ProductID),
	)
}

// Remove deletes the entry if present; removing an absent id is a no-op.
func (s *Store) Remove(userID int64, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[userID][productID]; !ok {
		return
	}
	delete(s.index[userID], productID)
	entries := s.sets[userID]
	for i, e := range entries {
		if e.ProductID == productID {
			s.sets[userID] = append(entries[:i], entries[i+1:]...)
			logging.Favorites.Debug("favorite remove",
				slog.String("event", "favorites.remove"),
				slog.Int64("user_id", userID),
				slog.String("product_id", productID),
			)
			return
		}
	}
}

// Clear empties the user's favorites unconditionally.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, userID)
	delete(s.index, userID)
	logging.Favorites.Debug("favorites clear",
		slog.String("event", "favorites.clear"),
		slog.Int64("user_id", userID),
	)
}

// List returns the user's favorites in insertion order.
func (s *Store) List(userID int64) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Entry(nil), s.sets[userID]...)
}

// IsFavorite reports whether the product is in the user's favorites.
func (s *Store) IsFavorite(userID int64, productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[userID][productID]
	return ok
}

// Len reports the size of the user's favorites set.
func (s *Store) Len(userID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sets[userID])
}
