package services

import (
	"sync"

	"thanhha/internal/models"
)

// cart is the per-session line set. Lines live in a slice so insertion order
// is preserved for display stability; the index map keys them by product ID so
// repeated adds merge into one line instead of duplicating it.
type cart struct {
	lines []models.CartLine
	index map[string]int // product ID -> position in lines
}

func newCart() *cart {
	return &cart{
		index: make(map[string]int),
	}
}

// CartService owns the shopping carts, one per display session. All mutations
// are synchronous; derived totals are recomputed from the line set on every
// snapshot read so they can never be observed stale.
type CartService struct {
	carts map[string]*cart
	mu    sync.RWMutex
}

// NewCartService creates a new CartService.
func NewCartService() *CartService {
	return &CartService{
		carts: make(map[string]*cart),
	}
}

// cartFor returns the session's cart, creating an empty one on first use.
// Caller must hold the write lock.
func (s *CartService) cartFor(sessionID string) *cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = newCart()
		s.carts[sessionID] = c
	}
	return c
}

// AddItem adds quantity of product to the session's cart. If a line for the
// product already exists its quantity is incremented; otherwise a new line is
// appended. Quantities below 1 are clamped to 1.
func (s *CartService) AddItem(sessionID string, product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(sessionID)
	if i, ok := c.index[product.ID]; ok {
		c.lines[i].Quantity += quantity
		return
	}
	c.index[product.ID] = len(c.lines)
	c.lines = append(c.lines, models.CartLine{Product: product, Quantity: quantity})
}

// UpdateQuantity adds delta (typically ±1) to the matching line's quantity.
// If the result drops to zero or below the line is removed entirely. Unknown
// product IDs are a no-op.
func (s *CartService) UpdateQuantity(sessionID string, productID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		return
	}
	i, ok := c.index[productID]
	if !ok {
		return
	}
	c.lines[i].Quantity += delta
	if c.lines[i].Quantity <= 0 {
		c.removeAt(i)
	}
}

// RemoveItem removes the matching line unconditionally; no-op if absent.
func (s *CartService) RemoveItem(sessionID string, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		return
	}
	if i, ok := c.index[productID]; ok {
		c.removeAt(i)
	}
}

// Clear empties the session's cart. The cart itself survives for re-use.
func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.carts[sessionID]; ok {
		c.lines = nil
		c.index = make(map[string]int)
	}
}

// Snapshot returns the session's lines in insertion order together with the
// derived totals. An unknown session yields an empty snapshot.
func (s *CartService) Snapshot(sessionID string) models.CartSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[sessionID]
	if !ok {
		return models.CartSnapshot{}
	}

	snap := models.CartSnapshot{
		Lines: make([]models.CartLine, len(c.lines)),
	}
	copy(snap.Lines, c.lines)
	for _, line := range c.lines {
		snap.TotalItems += line.Quantity
		snap.TotalPrice += line.Product.Price * int64(line.Quantity)
	}
	return snap
}

// removeAt drops the line at position i and reindexes the lines after it.
// Caller must hold the write lock.
func (c *cart) removeAt(i int) {
	delete(c.index, c.lines[i].Product.ID)
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].Product.ID] = j
	}
}
