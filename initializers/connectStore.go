package initializers

import (
	"log"

	"foodhub-api/store"
)

// ConnectStore picks the persistence backend: Redis when REDIS_URL is set so
// storefront state survives restarts, otherwise an in-process store. A failed
// Redis connection degrades to the in-process store rather than aborting.
func ConnectStore(cfg Config) *store.Store {
	if cfg.RedisURL != "" {
		redisStore, err := store.NewRedisStore(cfg.RedisURL, "foodhub")
		if err == nil {
			log.Println("Connected to Redis store.")
			return store.New(redisStore)
		}
		log.Println("Redis unavailable, falling back to in-memory store:", err)
	}

	log.Println("Using in-memory store; state will not survive restarts.")
	return store.New(store.NewMemoryStore())
}
