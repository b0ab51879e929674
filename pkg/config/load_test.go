package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/bank?sslmode=disable")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "5")

	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "postgres://app:secret@db:5432/bank?sslmode=disable", cfg.DB.Url)
	assert.Equal(t, "redis://cache:6379/1", cfg.Redis.URL)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 5, cfg.RateLimit.MaxRequests)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue("short"))
	masked := maskValue("postgres://app:secret@db:5432/bank")
	assert.NotContains(t, masked, "secret")
}
