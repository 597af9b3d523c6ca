package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds application configuration values.
type Config struct {
	// UseMockServices selects the mock service implementations instead of
	// the HTTP-backed ones. Bound once at startup, never hot-swapped.
	UseMockServices bool
	BaseURL         string
	Secret          string
	StorageDSN      string
	HTTPPort        string
}

// Load reads configuration from environment variables with reasonable defaults.
func Load() Config {
	useMock := true
	if raw := os.Getenv("USE_MOCK_SERVICES"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			log.Printf("invalid USE_MOCK_SERVICES value %q, defaulting to true", raw)
		} else {
			useMock = parsed
		}
	}

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	secret := os.Getenv("SECRET")
	if secret == "" {
		secret = "dev_secret"
	}

	dsn := os.Getenv("STORAGE_DSN")
	if dsn == "" {
		dsn = "pharmacy.db"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "5000"
	}
	if _, err := strconv.Atoi(port); err != nil {
		log.Printf("invalid HTTP_PORT value %q, defaulting to 5000", port)
		port = "5000"
	}

	return Config{
		UseMockServices: useMock,
		BaseURL:         baseURL,
		Secret:          secret,
		StorageDSN:      dsn,
		HTTPPort:        port,
	}
}
