//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"stelwing-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "booking")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "stelwing")
	t.Setenv("JWT_SECRET", "0123456789abcdef")
	t.Setenv("BOOKING_LOCATOR_MAX_ATTEMPTS", "5")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Booking.LocatorMaxAttempts)
	assert.Equal(t, 3, cfg.Booking.CommitMaxAttempts)
	assert.Equal(t, 3*time.Second, cfg.DB.LockTimeout)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Duration)
	assert.Equal(t, "stelwing-booking", cfg.JWT.Audience)
	assert.Contains(t, cfg.CORS.AllowHeaders, "Idempotency-Key")
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Setenv("DB_USER", "booking")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "stelwing")
	t.Setenv("JWT_SECRET", "0123456789abcdef")
	// registered for restore, then removed
	t.Setenv("PORT", "8080")
	require.NoError(t, os.Unsetenv("PORT"))

	_, err := config.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*config.Config)
		errMsg string
	}{
		{"zero locator attempts", func(c *config.Config) { c.Booking.LocatorMaxAttempts = 0 }, "BOOKING_LOCATOR_MAX_ATTEMPTS"},
		{"zero commit attempts", func(c *config.Config) { c.Booking.CommitMaxAttempts = 0 }, "BOOKING_COMMIT_MAX_ATTEMPTS"},
		{"negative lock timeout", func(c *config.Config) { c.DB.LockTimeout = -time.Second }, "DB_LOCK_TIMEOUT"},
		{"zero outbox poll interval", func(c *config.Config) { c.AMQP.PollInterval = 0 }, "OUTBOX_POLL_INTERVAL"},
		{"negative outbox poll interval", func(c *config.Config) { c.AMQP.PollInterval = -time.Second }, "OUTBOX_POLL_INTERVAL"},
		{"amqp without batch", func(c *config.Config) { c.AMQP.Enabled = true; c.AMQP.BatchSize = 0 }, "OUTBOX_BATCH_SIZE"},
		{"redis without ttl", func(c *config.Config) { c.Redis.Enabled = true; c.Redis.SeatMapTTL = 0 }, "SEAT_MAP_TTL"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}

	t.Run("test config is valid", func(t *testing.T) {
		assert.NoError(t, config.NewTestConfig().Validate())
	})
}
