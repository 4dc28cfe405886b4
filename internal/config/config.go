package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBType            string // mysql, postgres, sqlite, sqlserver, etc.
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Ledger policy
	RetentionDays     int           // audit events older than this are purged
	DailyMessageLimit int           // messages per client per UTC day
	DefaultShareTTL   time.Duration // share-link lifetime when none is requested
	MaxFileSizeMB     int64
	LockWaitTimeout   time.Duration // bound on contended read-modify-write retries
	SweepInterval     time.Duration // period of the background sweeper

	// Webhook configuration
	WebhookSecret string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		DBType:            getEnv("DB_TYPE", "mysql"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		RetentionDays:     getEnvAsInt("AUDIT_RETENTION_DAYS", 90),
		DailyMessageLimit: getEnvAsInt("DAILY_MESSAGE_LIMIT", 10),
		DefaultShareTTL:   time.Duration(getEnvAsInt("SHARE_TTL_HOURS", 24)) * time.Hour,
		MaxFileSizeMB:     int64(getEnvAsInt("MAX_FILE_SIZE_MB", 100)),
		LockWaitTimeout:   time.Duration(getEnvAsInt("LOCK_WAIT_TIMEOUT_MS", 5000)) * time.Millisecond,
		SweepInterval:     time.Duration(getEnvAsInt("SWEEP_INTERVAL_MINUTES", 60)) * time.Minute,
		WebhookSecret:     getEnv("WEBHOOK_SECRET", ""),
	}

	// Validate required fields
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBType != "sqlite" && cfg.DBUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	if cfg.RetentionDays <= 0 {
		return nil, fmt.Errorf("AUDIT_RETENTION_DAYS must be positive")
	}
	if cfg.DailyMessageLimit <= 0 {
		return nil, fmt.Errorf("DAILY_MESSAGE_LIMIT must be positive")
	}
	if cfg.MaxFileSizeMB <= 0 {
		return nil, fmt.Errorf("MAX_FILE_SIZE_MB must be positive")
	}

	return cfg, nil
}

// RetentionHorizon returns the cutoff before which audit events are purged,
// relative to now.
func (c *Config) RetentionHorizon(now time.Time) time.Time {
	return now.AddDate(0, 0, -c.RetentionDays)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
