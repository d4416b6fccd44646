// Package cart holds per-user shopping carts in memory. A cart lives for the
// lifetime of the process; there is no persistence.
package cart

import (
	"log/slog"
	"sync"

	"github.com/m3rciful/teleshop/internal/logging"
)

// Item identifies what gets added to a cart: a product snapshot without count.
type Item struct {
	ProductID string
	Title     string
	Image     string
	Price     int
}

// Line is one product's accumulated quantity in a cart.
// Invariant: Count >= 1 while the line exists.
type Line struct {
	ProductID string
	Title     string
	Image     string
	Price     int
	Count     int
}

// Store keeps one cart per Telegram user. Handlers run on per-update
// goroutines, so access is guarded by a mutex.
type Store struct {
	mu    sync.RWMutex
	carts map[int64][]Line
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{carts: make(map[int64][]Line)}
}

// Add puts the item into the user's cart: an existing line is incremented,
// otherwise a new line with count 1 is appended. The operation is total.
//
// There is deliberately no decrement/remove: the source UI shows -/+ cart
// controls that were never wired to any state change, and that gap is kept
// rather than guessing the intended semantics.
func (s *Store) Add(userID int64, item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID == item.ProductID {
			lines[i].Count++
			s.logAdd(userID, item.ProductID, lines[i].Count)
			return
		}
	}
	s.carts[userID] = append(lines, Line{
		ProductID: item.ProductID,
		Title:     item.Title,
		Image:     item.Image,
		Price:     item.Price,
		Count:     1,
	})
	s.logAdd(userID, item.ProductID, 1)
}

// Items returns the user's cart lines in insertion order.
func (s *Store) Items(userID int64) []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Line(nil), s.carts[userID]...)
}

// Subtotal sums price*count over all lines of the user's cart.
func (s *Store) Subtotal(userID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, line := range s.carts[userID] {
		total += line.Price * line.Count
	}
	return total
}

// Len reports the number of distinct lines in the user's cart.
func (s *Store) Len(userID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts[userID])
}

// Clear drops the user's cart entirely. Called after an order is submitted.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

func (s *Store) logAdd(userID int64, productID string, count int) {
	logging.Cart.Debug("cart add",
		slog.String("event", "cart.add"),
		slog.Int64("user_id", userID),
		slog.String("product_id", productID),
		slog.Int("count", count),
	)
}
