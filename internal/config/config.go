package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotenv loads a .env file when present. Missing files are fine for
// containerized runs where everything comes from the environment.
func LoadDotenv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the environment value for key, or fallback when unset/empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// StaticToken is a TokenSource backed by a fixed session token, typically
// sourced from the environment at startup. An empty token means backend
// calls proceed unauthenticated.
type StaticToken string

func (t StaticToken) Token() (string, bool) {
	if t == "" {
		return "", false
	}
	return string(t), true
}
