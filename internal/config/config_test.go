package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleet-logistics-service/internal/config"
)

func TestLoad_DefaultsAndEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir()) // без .env
	t.Setenv("API_PORT", "9090")
	t.Setenv("IMPORT_STRICT", "true")
	t.Setenv("API_CORS_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("STATS_CACHE_TTL", "120")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.GetServerAddr())
	assert.True(t, cfg.Import.Strict)
	assert.Equal(t, "http://a.test,http://b.test", cfg.Server.CORSOrigins)
	assert.Equal(t, 2*time.Minute, cfg.Cache.StatsCacheTTL)
	assert.Equal(t, "stream:fleet:events", cfg.Features.EventsStream)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.Contains(t, cfg.GetDatabaseDSN(), "dbname=fleet")
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("API_PORT", "70000")

	_, err := config.Load()
	assert.Error(t, err)
}
