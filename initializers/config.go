package initializers

import "os"

type Config struct {
	Port          string
	RedisURL      string
	JWTSecret     string
	AdminEmail    string
	AdminPassword string
	// AdminWhatsApp is the default checkout hand-off destination; the admin
	// panel can override it at runtime.
	AdminWhatsApp string
	// CountryCode is prefixed to local-format phone numbers when building
	// wa.me links.
	CountryCode string
	// NotifyOnCheckout enables the fire-and-forget GET against the hand-off
	// link after each order.
	NotifyOnCheckout bool
}

func LoadConfig() Config {
	return Config{
		Port:             getEnv("PORT", "8080"),
		RedisURL:         os.Getenv("REDIS_URL"),
		JWTSecret:        getEnv("JWT_SECRET", "changeme"),
		AdminEmail:       os.Getenv("ADMIN_EMAIL"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		AdminWhatsApp:    getEnv("ADMIN_WHATSAPP", "2349157286254"),
		CountryCode:      getEnv("COUNTRY_CODE", "234"),
		NotifyOnCheckout: os.Getenv("NOTIFY_ON_CHECKOUT") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
