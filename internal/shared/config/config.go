package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port               string
	GinMode            string
	APIVersion         string
	APIPrefix          string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	MaxHeaderBytes     int
	CORSAllowedOrigins []string

	// Offer Service
	Offer OfferConfig

	// Booking workflow
	Booking BookingConfig

	// Redis configuration
	Redis RedisConfig

	// Rate limiting
	RateLimit RateLimitConfig

	// Logging
	LogLevel string
}

// OfferConfig holds the Offer Service location
type OfferConfig struct {
	BaseURL string
	Path    string
	Timeout time.Duration
}

// BookingConfig holds booking workflow settings
type BookingConfig struct {
	TimeZone      string
	CutoffHour    int
	SessionTTL    time.Duration
	SweepInterval time.Duration
	Promotion     PromotionConfig
}

// PromotionConfig describes the promotional banner. It is display only.
type PromotionConfig struct {
	Title      string
	ValidFrom  string
	ValidUntil string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled                 bool          `json:"enabled"`
	WindowDuration          time.Duration `json:"window_duration"`
	DefaultRequests         int           `json:"default_requests"`
	BookingRequests         int           `json:"booking_requests"`
	BookingCriticalRequests int           `json:"booking_critical_requests"`
	HealthRequests          int           `json:"health_requests"`
	WhitelistedIPs          []string      `json:"whitelisted_ips"`
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server configuration
		Port:               getEnv("PORT", "8081"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		APIVersion:         getEnv("API_VERSION", "v1"),
		APIPrefix:          getEnv("API_PREFIX", "/api"),
		ReadTimeout:        getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:       getDurationEnv("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:        getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:     getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB
		CORSAllowedOrigins: getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{}),

		// Offer Service
		Offer: OfferConfig{
			BaseURL: getEnv("OFFER_SERVICE_URL", "http://localhost:8080"),
			Path:    getEnv("OFFER_SERVICE_PATH", "/booking/offer"),
			Timeout: getDurationEnv("OFFER_SERVICE_TIMEOUT", 10*time.Second),
		},

		// Booking workflow
		Booking: BookingConfig{
			TimeZone:      getEnv("BOOKING_TIMEZONE", "Local"),
			CutoffHour:    getIntEnv("BOOKING_CUTOFF_HOUR", 8),
			SessionTTL:    getDurationEnv("SESSION_TTL", 30*time.Minute),
			SweepInterval: getDurationEnv("SESSION_SWEEP_INTERVAL", time.Minute),
			Promotion: PromotionConfig{
				Title:      getEnv("PROMOTION_TITLE", "Buy 3 Get 1 Free!*"),
				ValidFrom:  getEnv("PROMOTION_VALID_FROM", "2024-07-15"),
				ValidUntil: getEnv("PROMOTION_VALID_UNTIL", "2024-08-15"),
			},
		},

		// Redis configuration
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},

		// Rate limiting
		RateLimit: RateLimitConfig{
			Enabled:                 getBoolEnv("RATE_LIMIT_ENABLED", true),
			WindowDuration:          getDurationEnv("RATE_LIMIT_WINDOW_DURATION", 60*time.Second),
			DefaultRequests:         getIntEnv("RATE_LIMIT_DEFAULT_REQUESTS", 60),
			BookingRequests:         getIntEnv("RATE_LIMIT_BOOKING_REQUESTS", 120),
			BookingCriticalRequests: getIntEnv("RATE_LIMIT_BOOKING_CRITICAL_REQUESTS", 20),
			HealthRequests:          getIntEnv("RATE_LIMIT_HEALTH_REQUESTS", 300),
			WhitelistedIPs:          getStringSliceEnv("RATE_LIMIT_WHITELISTED_IPS", []string{}),
		},

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}

	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port

	return cfg
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		var result []string
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// GetAPIBasePath returns the API base path
func (c *Config) GetAPIBasePath() string {
	return c.APIPrefix + "/" + c.APIVersion
}

// Location resolves the booking time zone. Unknown names fall back to the
// server's local zone.
func (b BookingConfig) Location() *time.Location {
	if b.TimeZone == "" || strings.EqualFold(b.TimeZone, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(b.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}
