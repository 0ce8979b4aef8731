package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENV", "MONGODB_URI", "MONGODB_DB_NAME", "API_PREFIX", "LISTEN_ADDR", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "booking_app", cfg.MongoDBName)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("MONGODB_URI", "mongodb://mongo:27017")
	t.Setenv("MONGODB_DB_NAME", "booking_prod")
	t.Setenv("API_PREFIX", "/api/v1")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
	assert.Equal(t, "booking_prod", cfg.MongoDBName)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
}
