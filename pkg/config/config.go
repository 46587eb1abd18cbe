package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	DatabaseURL   string
	JWTSecret     string
	Port          string
	Environment   string
	LogLevel      string
	LogFormat     string
	RedisURL      string
	MatchCacheTTL time.Duration
	SweepInterval time.Duration
	// Security configuration
	AllowedOrigins string
	TrustedProxies string
}

// New creates a new configuration instance from environment variables
func New() *Config {
	return &Config{
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		RedisURL:      getEnv("REDIS_URL", ""),
		MatchCacheTTL: getEnvAsDuration("MATCH_CACHE_TTL", 5*time.Minute),
		SweepInterval: getEnvAsDuration("SWEEP_INTERVAL", time.Hour),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
		TrustedProxies: getEnv("TRUSTED_PROXIES", ""),
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasRedis returns true if a Redis endpoint is configured
func (c *Config) HasRedis() bool {
	return c.RedisURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// GetAllowedOrigins returns a slice of allowed CORS origins
func (c *Config) GetAllowedOrigins() []string {
	if c.AllowedOrigins == "" {
		return []string{}
	}
	return strings.Split(c.AllowedOrigins, ",")
}

// GetTrustedProxies returns a slice of trusted proxy IPs
func (c *Config) GetTrustedProxies() []string {
	if c.TrustedProxies == "" {
		return []string{}
	}
	return strings.Split(c.TrustedProxies, ",")
}
