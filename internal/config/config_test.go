package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/mentors")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
}

func TestFromEnvDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV", "")
	t.Setenv("MIGRATIONS_DIR", "")
	t.Setenv("BOOKING_DIALOG_TTL", "")
	t.Setenv("SWEEP_INTERVAL", "")
	// t.Setenv восстановит значение после теста
	t.Setenv("HTTP_ADDR", "")
	require.NoError(t, os.Unsetenv("HTTP_ADDR"))

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "migrations", cfg.MigrationsDir)
	assert.Equal(t, 30*time.Minute, cfg.BookingDialogTTL)
	assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "postgres://localhost/mentors", cfg.GetDBDSN())
}

func TestFromEnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV", "production")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("BOOKING_DIALOG_TTL", "10m")
	t.Setenv("SWEEP_INTERVAL", "30s")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Empty(t, cfg.HTTPAddr, "empty HTTP_ADDR disables the API")
	assert.Equal(t, 10*time.Minute, cfg.BookingDialogTTL)
	assert.Equal(t, 30*time.Second, cfg.SweepInterval)
}

func TestFromEnvRequired(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	_, err := FromEnv()
	assert.EqualError(t, err, "DB_DSN is required but not set")

	t.Setenv("DB_DSN", "postgres://localhost/mentors")
	t.Setenv("TELEGRAM_TOKEN", "")

	_, err = FromEnv()
	assert.EqualError(t, err, "TELEGRAM_TOKEN is required but not set")
}

func TestFromEnvInvalidDuration(t *testing.T) {
	setRequired(t)

	t.Setenv("BOOKING_DIALOG_TTL", "soon")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "parse BOOKING_DIALOG_TTL")

	t.Setenv("BOOKING_DIALOG_TTL", "-1m")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "BOOKING_DIALOG_TTL must be positive")
}
