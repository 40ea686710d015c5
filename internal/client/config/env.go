package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by parseEnv. A .env file in the working
// directory is loaded first when present; real environment variables win
// over .env entries (godotenv never overrides existing ones).
const (
	envBaseURL        = "AUTHKIT_API_BASE_URL"
	envDatabasePath   = "AUTHKIT_DB_PATH"
	envKeyFilePath    = "AUTHKIT_KEY_PATH"
	envRequestTimeout = "AUTHKIT_REQUEST_TIMEOUT" // seconds
)

func parseEnv(cfg *Config) {
	// missing .env is the normal case
	_ = godotenv.Load()

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envKeyFilePath); v != "" {
		cfg.KeyFilePath = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
}
