package store

import (
	"context"
	"encoding/json"
	"log"

	"foodhub-api/models"
)

// Persistence keys. Carried over from the storefront's original layout so a
// populated store keeps working across deployments.
const (
	cartKey          = "foodhub_cart"
	ordersKey        = "foodhub_orders"
	unavailableKey   = "foodhub_unavailable"
	adminWhatsAppKey = "foodhub_admin_whatsapp"
)

// schemaVersion tags every serialized value so the layout can evolve without
// breaking old data: a version mismatch decodes as empty, same as garbage.
const schemaVersion = 1

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// Store wraps a KeyValue backend with typed, versioned JSON encoding for each
// piece of storefront state. Persistence failures are never surfaced to
// callers: reads of missing or unparseable values yield empty defaults, and
// failed writes are logged and dropped so the storefront keeps running on its
// in-memory state.
type Store struct {
	kv KeyValue
}

func New(kv KeyValue) *Store {
	return &Store{kv: kv}
}

func (s *Store) load(ctx context.Context, key string, out any) bool {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		log.Println("store: read failed for", key+":", err)
		return false
	}
	if raw == "" {
		return false
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		log.Println("store: unparseable value for", key+":", err)
		return false
	}
	if env.Version != schemaVersion {
		log.Printf("store: unsupported schema version %d for %s, treating as empty", env.Version, key)
		return false
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		log.Println("store: corrupt payload for", key+":", err)
		return false
	}
	return true
}

func (s *Store) save(ctx context.Context, key string, in any) {
	data, err := json.Marshal(in)
	if err != nil {
		log.Println("store: marshal failed for", key+":", err)
		return
	}
	raw, err := json.Marshal(envelope{Version: schemaVersion, Data: data})
	if err != nil {
		log.Println("store: envelope marshal failed for", key+":", err)
		return
	}
	if err := s.kv.Set(ctx, key, string(raw)); err != nil {
		log.Println("store: write dropped for", key+":", err)
	}
}

// Cart

func (s *Store) LoadCart(ctx context.Context) []models.CartLine {
	var lines []models.CartLine
	if !s.load(ctx, cartKey, &lines) {
		return nil
	}
	return lines
}

func (s *Store) SaveCart(ctx context.Context, lines []models.CartLine) {
	s.save(ctx, cartKey, lines)
}

func (s *Store) ClearCart(ctx context.Context) {
	if err := s.kv.Remove(ctx, cartKey); err != nil {
		log.Println("store: cart clear dropped:", err)
	}
}

// Order history

func (s *Store) LoadOrders(ctx context.Context) []models.Order {
	var orders []models.Order
	if !s.load(ctx, ordersKey, &orders) {
		return nil
	}
	return orders
}

func (s *Store) SaveOrders(ctx context.Context, orders []models.Order) {
	s.save(ctx, ordersKey, orders)
}

// Unavailable item ids

func (s *Store) LoadUnavailable(ctx context.Context) []int {
	var ids []int
	if !s.load(ctx, unavailableKey, &ids) {
		return nil
	}
	return ids
}

func (s *Store) SaveUnavailable(ctx context.Context, ids []int) {
	s.save(ctx, unavailableKey, ids)
}

// Admin WhatsApp destination

func (s *Store) LoadAdminWhatsApp(ctx context.Context) string {
	var number string
	if !s.load(ctx, adminWhatsAppKey, &number) {
		return ""
	}
	return number
}

func (s *Store) SaveAdminWhatsApp(ctx context.Context, number string) {
	if number == "" {
		if err := s.kv.Remove(ctx, adminWhatsAppKey); err != nil {
			log.Println("store: admin whatsapp clear dropped:", err)
		}
		return
	}
	s.save(ctx, adminWhatsAppKey, number)
}
