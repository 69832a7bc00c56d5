package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout())
	assert.False(t, cfg.StorageEnabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")
	t.Setenv("S3_ACCESS_KEY", "key")
	t.Setenv("S3_SECRET_KEY", "secret")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout())
	assert.True(t, cfg.StorageEnabled())
}

func TestRequestTimeoutFallsBackWhenNonPositive(t *testing.T) {
	cfg := &Config{RequestTimeoutSeconds: 0}
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout())

	t.Setenv("REQUEST_TIMEOUT_SECONDS", "not-a-number")
	assert.Equal(t, 30*time.Second, Load().RequestTimeout())
}
