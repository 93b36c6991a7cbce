package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// Auth configuration
	JWTSecret string

	// Review workflow configuration
	ReviewDueInDays int
	// DecisionRequireUnderReview gates editorial decisions on the article
	// having reached under_review. Off preserves the permissive
	// editor-override behavior.
	DecisionRequireUnderReview bool

	// SMTP configuration for status-update emails
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	// Crossref DOI deposit configuration
	CrossrefDepositURL string
	CrossrefUsername   string
	CrossrefPassword   string

	// ORCID member API configuration
	OrcidAPIURL string

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is applied first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:                 getEnv("SERVER_PORT", "8080"),
		ReadTimeout:                getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:               getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:                getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DBHost:                     getEnv("DB_HOST", "localhost"),
		DBPort:                     getEnvInt("DB_PORT", 5432),
		DBUser:                     getEnv("DB_USER", "postgres"),
		DBPassword:                 getEnv("DB_PASSWORD", "postgres"),
		DBName:                     getEnv("DB_NAME", "peer_review"),
		DBSSLMode:                  getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:                 int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:                 int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:          getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:          getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod:        getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		JWTSecret:                  getEnv("JWT_SECRET", ""),
		ReviewDueInDays:            getEnvInt("REVIEW_DUE_IN_DAYS", 21),
		DecisionRequireUnderReview: getEnvBool("DECISION_REQUIRE_UNDER_REVIEW", false),
		SMTPHost:                   getEnv("SMTP_HOST", ""),
		SMTPPort:                   getEnvInt("SMTP_PORT", 587),
		SMTPUser:                   getEnv("SMTP_USER", ""),
		SMTPPassword:               getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:                   getEnv("SMTP_FROM", "noreply@example.org"),
		CrossrefDepositURL:         getEnv("CROSSREF_DEPOSIT_URL", "https://api.crossref.org/deposits"),
		CrossrefUsername:           getEnv("CROSSREF_USERNAME", ""),
		CrossrefPassword:           getEnv("CROSSREF_PASSWORD", ""),
		OrcidAPIURL:                getEnv("ORCID_API_URL", "https://api.orcid.org/v3.0"),
		LogLevel:                   getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.ReviewDueInDays < 1 {
		return fmt.Errorf("REVIEW_DUE_IN_DAYS must be at least 1")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
