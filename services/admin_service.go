package services

import (
	"context"
	"sync"

	"foodhub-api/store"
)

// AdminService owns the out-of-stock set and the WhatsApp destination number
// used for the checkout hand-off.
type AdminService struct {
	mu    sync.Mutex
	store *store.Store
}

func NewAdminService(st *store.Store) *AdminService {
	return &AdminService{store: st}
}

// ToggleAvailability flips membership of the item id in the unavailable set
// and reports whether the item is unavailable afterwards. Toggling twice
// restores the original state.
func (s *AdminService) ToggleAvailability(ctx context.Context, itemID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.store.LoadUnavailable(ctx)
	for i, id := range ids {
		if id == itemID {
			ids = append(ids[:i], ids[i+1:]...)
			s.store.SaveUnavailable(ctx, ids)
			return false
		}
	}

	ids = append(ids, itemID)
	s.store.SaveUnavailable(ctx, ids)
	return true
}

// Unavailable returns the current out-of-stock item ids.
func (s *AdminService) Unavailable(ctx context.Context) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.LoadUnavailable(ctx)
}

// WhatsAppNumber returns the stored hand-off destination, or empty when the
// configured default applies.
func (s *AdminService) WhatsAppNumber(ctx context.Context) string {
	return s.store.LoadAdminWhatsApp(ctx)
}

// SetWhatsAppNumber stores a new hand-off destination; an empty number clears
// the override.
func (s *AdminService) SetWhatsAppNumber(ctx context.Context, number string) {
	s.store.SaveAdminWhatsApp(ctx, number)
}
