package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string
	DBPath   string
	LogLevel string

	// XPTiersPath optionally overrides the embedded XP tier tables.
	XPTiersPath string

	// Default anchor dates for the two anchored streaks. SobrietyStart is
	// the initial anchor; ReadingStreakStart doubles as the minimum date a
	// restored reading streak can be clamped to.
	SobrietyStart      string
	ReadingStreakStart string
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:               envOr("ADDR", ":8080"),
		DBPath:             envOr("DB_PATH", "file:ironwill.db"),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		XPTiersPath:        envOr("XP_TIERS_PATH", ""),
		SobrietyStart:      envOr("SOBRIETY_START", "2025-12-09"),
		ReadingStreakStart: envOr("READING_STREAK_START", "2026-01-01"),
	}
}

// Validate checks the loaded configuration for values that would only fail
// later at runtime.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	for name, value := range map[string]string{
		"SOBRIETY_START":       c.SobrietyStart,
		"READING_STREAK_START": c.ReadingStreakStart,
	} {
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return fmt.Errorf("%s must be a YYYY-MM-DD date, got %q", name, value)
		}
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
