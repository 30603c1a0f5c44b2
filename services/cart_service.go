package services

import (
	"context"
	"sync"

	"foodhub-api/models"
	"foodhub-api/store"
)

// CartService owns the storefront cart. The authoritative copy lives in
// memory and is mirrored to the persistent store after every mutation, so the
// cart survives restarts while reads never touch the store.
type CartService struct {
	mu    sync.Mutex
	lines []models.CartLine
	store *store.Store
}

// NewCartService loads any previously persisted cart into memory.
func NewCartService(st *store.Store) *CartService {
	return &CartService{
		lines: st.LoadCart(context.Background()),
		store: st,
	}
}

// AddItem merges the item into the cart: an existing line for the same item id
// has its quantity incremented, otherwise a new line is appended with the item
// fields copied as they are right now. Quantities below 1 count as 1.
func (s *CartService) AddItem(ctx context.Context, item models.MenuItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ItemID == item.ID {
			s.lines[i].Quantity += quantity
			s.store.SaveCart(ctx, s.lines)
			return
		}
	}

	s.lines = append(s.lines, models.CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Category: item.Category,
		Price:    item.Price,
		ImageUrl: item.ImageUrl,
		Quantity: quantity,
	})
	s.store.SaveCart(ctx, s.lines)
}

// RemoveItem drops the line for the given item id. Removing an absent id is a
// no-op, not an error.
func (s *CartService) RemoveItem(ctx context.Context, itemID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, itemID)
}

func (s *CartService) removeLocked(ctx context.Context, itemID int) {
	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.ItemID != itemID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	s.store.SaveCart(ctx, s.lines)
}

// UpdateQuantity sets the quantity for a line. A quantity of zero or less
// removes the line, so a stored quantity is never below 1.
func (s *CartService) UpdateQuantity(ctx context.Context, itemID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(ctx, itemID)
		return
	}

	for i := range s.lines {
		if s.lines[i].ItemID == itemID {
			s.lines[i].Quantity = quantity
			s.store.SaveCart(ctx, s.lines)
			return
		}
	}
}

// Items returns a copy of the current lines in insertion order.
func (s *CartService) Items() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartLine, len(s.lines))
	copy(items, s.lines)
	return items
}

// Count is the total quantity across all lines.
func (s *CartService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Subtotal is the sum of price times quantity over all lines.
func (s *CartService) Subtotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

func (s *CartService) subtotalLocked() int {
	subtotal := 0
	for _, line := range s.lines {
		subtotal += line.LineTotal()
	}
	return subtotal
}

// Total is the subtotal plus the fixed delivery fee.
func (s *CartService) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked() + models.DeliveryFee
}

func (s *CartService) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// Clear empties the cart and removes its persisted state.
func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.store.ClearCart(ctx)
}
