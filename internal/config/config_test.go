package config_test

import (
	"testing"
	"time"

	"go-opscentral/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "ops")
	t.Setenv("DB_NAME", "opscentral")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	for _, key := range []string{"PORT", "APP_ENV", "DB_PORT", "DB_SSLMODE", "REDIS_ADDR", "KAFKA_BROKER",
		"TOKEN_TTL", "OUTBOX_POLL_INTERVAL", "LOGIN_RATE_PER_SEC", "LOGIN_BURST"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 3*time.Second, cfg.OutboxPollInterval)
	assert.Equal(t, 1.0, cfg.LoginRatePerSec)
	assert.Equal(t, 5, cfg.LoginBurst)
	assert.EqualError(t, cfg.RequireKafka(), "KAFKA_BROKER is required")
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("KAFKA_BROKER", "kafka:9092")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("OUTBOX_POLL_INTERVAL", "500ms")
	t.Setenv("LOGIN_RATE_PER_SEC", "0.5")
	t.Setenv("LOGIN_BURST", "3")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.NoError(t, cfg.RequireKafka())
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 500*time.Millisecond, cfg.OutboxPollInterval)
	assert.Equal(t, 0.5, cfg.LoginRatePerSec)
	assert.Equal(t, 3, cfg.LoginBurst)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		setRequired(t)
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()
		assert.EqualError(t, err, "JWT_SECRET is required")
	})

	t.Run("bad token ttl", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TOKEN_TTL", "soon")

		_, err := config.Load()
		assert.ErrorContains(t, err, "invalid TOKEN_TTL")
	})

	t.Run("non-positive poll interval", func(t *testing.T) {
		setRequired(t)
		t.Setenv("OUTBOX_POLL_INTERVAL", "0s")

		_, err := config.Load()
		assert.EqualError(t, err, "invalid OUTBOX_POLL_INTERVAL: must be positive")
	})

	t.Run("bad login burst", func(t *testing.T) {
		setRequired(t)
		t.Setenv("LOGIN_BURST", "-1")

		_, err := config.Load()
		assert.EqualError(t, err, `invalid LOGIN_BURST: "-1"`)
	})
}
