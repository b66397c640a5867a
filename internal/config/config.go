package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the server configuration, loaded from the environment.
// Command-line flags override these values in main.
type Config struct {
	// Addr is the listen address.
	Addr string
	// DBPath is the SQLite database path.
	DBPath string
	// LogPath is an optional log file; empty means stdout/stderr only.
	LogPath string
	// BaseURL is the public origin encoded into QR codes,
	// e.g. "https://tienda.example.com".
	BaseURL string
	// OpenLogin disables credential verification: any password logs in.
	// Only for throwaway demo deployments.
	OpenLogin bool
}

// Load reads configuration from the environment, optionally seeded from a
// .env file in the working directory.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Addr:      getEnv("CAMISAS_ADDR", ":8080"),
		DBPath:    getEnv("CAMISAS_DB", "camisas.sqlite3"),
		LogPath:   getEnv("CAMISAS_LOG", ""),
		BaseURL:   getEnv("CAMISAS_BASE_URL", "http://localhost:8080"),
		OpenLogin: getEnvBool("CAMISAS_OPEN_LOGIN", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
