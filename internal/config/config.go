// Package config loads application configuration from environment variables.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr string
	DBPath     string
}

// Load reads configuration from the environment and returns a Config.
// A .env file in the working directory is loaded first when present.
// Both variables have defaults: NAMETRACK_LISTEN_ADDR (127.0.0.1:3001)
// and NAMETRACK_DB_PATH (nametrack.db).
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	listenAddr := "127.0.0.1:3001"
	if v, ok := os.LookupEnv("NAMETRACK_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "nametrack.db"
	if v, ok := os.LookupEnv("NAMETRACK_DB_PATH"); ok {
		dbPath = v
	}

	return &Config{
		ListenAddr: listenAddr,
		DBPath:     dbPath,
	}, nil
}
