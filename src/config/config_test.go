package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("EXPORT_TOKEN", "secret")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8888", cfg.Port)
	assert.Equal(t, "*", cfg.AllowedOrigin)
	assert.Equal(t, "redis", cfg.Storage.Events)
	assert.Equal(t, "redis", cfg.Storage.Submissions)
	assert.Equal(t, 0, cfg.Redis.EventsDB)
	assert.Equal(t, 1, cfg.Redis.SubmissionsDB)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.SwaggerEnabled)
	assert.NoError(t, cfg.RequireExportToken())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_URI", "9000")
	t.Setenv("ALLOWED_ORIGIN", "https://forms.example.org")
	t.Setenv("EVENTS_STORE", "memory")
	t.Setenv("SUBMISSIONS_STORE", "mongo")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://forms.example.org", cfg.AllowedOrigin)
	assert.Equal(t, "memory", cfg.Storage.Events)
	assert.Equal(t, "mongo", cfg.Storage.Submissions)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestFromEnvRejectsUnknownBackend(t *testing.T) {
	t.Setenv("EVENTS_STORE", "dynamo")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnvRequiresMongoURI(t *testing.T) {
	t.Setenv("SUBMISSIONS_STORE", "mongo")
	t.Setenv("MONGO_URI", "")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "MONGO_URI")
}

func TestFromEnvRejectsSharedRedisDB(t *testing.T) {
	t.Setenv("REDIS_EVENTS_DB", "2")
	t.Setenv("REDIS_SUBMISSIONS_DB", "2")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestRequireExportToken(t *testing.T) {
	cfg := &Config{}
	assert.ErrorIs(t, cfg.RequireExportToken(), ErrMissingExportToken)
}
