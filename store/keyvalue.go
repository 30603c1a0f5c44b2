package store

import "context"

// KeyValue is the persistence boundary for the storefront: a flat string
// key-value store with no transactions and no expiry. Missing keys read back
// as an empty string with a nil error; interpretation happens in Store.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
