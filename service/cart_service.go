package service

import (
	"log"
	"sync"

	"beatforge/models"
)

// CartService holds the pre-checkout selection for every visitor session.
// Each cart contains at most one entry per product id: digital goods are not
// re-orderable in bulk, so adding an already-present product is a no-op and
// quantity is always exactly 1.
type CartService struct {
	mu    sync.Mutex
	carts map[string][]models.CartEntry // session id -> entries
}

// NewCartService creates a new CartService
func NewCartService() *CartService {
	return &CartService{
		carts: make(map[string][]models.CartEntry),
	}
}

// Add puts a product snapshot into the session's cart.
// Returns false when the product was already present.
func (s *CartService) Add(sessionID string, product models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.carts[sessionID] {
		if entry.Product.ID == product.ID {
			return false
		}
	}

	s.carts[sessionID] = append(s.carts[sessionID], models.CartEntry{Product: product, Quantity: 1})
	log.Printf("🛒 Cart add: session=%s, product=%s (%s)", sessionID, product.ID, product.Title)
	return true
}

// Remove deletes the matching entry if present; absent ids are a no-op, not an error
func (s *CartService) Remove(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.carts[sessionID]
	for i, entry := range entries {
		if entry.Product.ID == productID {
			s.carts[sessionID] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Clear empties the session's cart unconditionally
func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Items returns a snapshot copy of the session's cart entries
func (s *CartService) Items(sessionID string) []models.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.carts[sessionID]
	snapshot := make([]models.CartEntry, len(entries))
	copy(snapshot, entries)
	return snapshot
}

// Count returns the number of distinct entries (quantity is always 1)
func (s *CartService) Count(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts[sessionID])
}

// Total sums the effective price of every entry; free products contribute 0
func (s *CartService) Total(sessionID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, entry := range s.carts[sessionID] {
		total += entry.Product.EffectivePrice()
	}
	return total
}

// View assembles the cart response shape in one pass
func (s *CartService) View(sessionID string) models.CartView {
	items := s.Items(sessionID)
	view := models.CartView{Items: items, Count: len(items)}
	for _, entry := range items {
		view.Total += entry.Product.EffectivePrice()
	}
	return view
}
