package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleone/ironwill/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:               ":8080",
		DBPath:             "file:test.db",
		LogLevel:           "INFO",
		SobrietyStart:      "2025-12-09",
		ReadingStreakStart: "2026-01-01",
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH")
}

func TestValidate_BadAnchorDate(t *testing.T) {
	cfg := validConfig()
	cfg.SobrietyStart = "12/09/2025"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOBRIETY_START")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("SOBRIETY_START", "")
	t.Setenv("READING_STREAK_START", "")

	cfg := config.Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:ironwill.db", cfg.DBPath)
	assert.Equal(t, "2025-12-09", cfg.SobrietyStart)
	assert.Equal(t, "2026-01-01", cfg.ReadingStreakStart)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := config.Load()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}
