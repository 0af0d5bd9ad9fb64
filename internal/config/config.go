package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at startup and handed to each component explicitly.
// Missing credentials are a construction error, never a request-time one.
type Config struct {
	Port     string
	LogLevel string

	// Data facade (PostgREST). ServiceRoleKey is for server-side reads and
	// procedure calls; AnonKey is all the bulk-export relay is allowed to hold.
	SupabaseURL    string
	ServiceRoleKey string
	AnonKey        string

	// Read-through cache for facade responses.
	CacheTTL time.Duration

	// Rate limiting for the public HTTP surface.
	RateLimitInterval time.Duration
	RateLimitBurst    int

	// Product constraints.
	MaxEntityIDs            int
	DefaultSearchLimit      int
	TransactionPreviewLimit int
}

func New() (*Config, error) {
	// A missing .env is fine; the OS environment is authoritative either way.
	_ = godotenv.Load()

	cfg := &Config{
		Port:                    getEnv("PORT", "8080"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		SupabaseURL:             os.Getenv("SUPABASE_URL"),
		ServiceRoleKey:          os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		AnonKey:                 os.Getenv("SUPABASE_ANON_KEY"),
		CacheTTL:                getEnvAsDuration("CACHE_TTL", 60*time.Second),
		RateLimitInterval:       getEnvAsDuration("RATE_LIMIT_INTERVAL", 100*time.Millisecond),
		RateLimitBurst:          getEnvAsInt("RATE_LIMIT_BURST", 30),
		MaxEntityIDs:            getEnvAsInt("MAX_ENTITY_IDS", 50),
		DefaultSearchLimit:      getEnvAsInt("DEFAULT_SEARCH_LIMIT", 25),
		TransactionPreviewLimit: getEnvAsInt("TRANSACTION_PREVIEW_LIMIT", 50),
	}

	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL environment variable is required")
	}
	if cfg.ServiceRoleKey == "" {
		return nil, fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY environment variable is required")
	}
	if cfg.AnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY environment variable is required")
	}

	return cfg, nil
}

// ---- Helpers ----

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return fallback
}
