package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, BackendDatabase, cfg.StorageBackend)
	assert.False(t, cfg.UseMemoryStorage())
	assert.Equal(t, "mongodb://localhost:27017/be-example", cfg.MongoURI)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 168*time.Hour, cfg.JWTExpiry)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("PORT", "8080")
	t.Setenv("REQUEST_TIMEOUT", "500")
	t.Setenv("JWT_EXPIRY", "24h")

	cfg := Load()

	assert.True(t, cfg.UseMemoryStorage())
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
}

func TestLoadIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("JWT_EXPIRY", "seven days")

	cfg := Load()

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, 168*time.Hour, cfg.JWTExpiry)
}
