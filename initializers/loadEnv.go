package initializers

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file when present. Missing files are fine; deployment
// environments set variables directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}
