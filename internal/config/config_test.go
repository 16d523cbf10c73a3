package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 5*time.Minute, cfg.Redis.LockTTL)
	assert.Equal(t, 10*time.Second, cfg.Oracle.Timeout)
	assert.Equal(t, "10", cfg.Bidding.RevenuePerConversion.String())
	assert.Equal(t, 4, cfg.Bidding.SweepConcurrency)
	assert.Equal(t, int32(10), cfg.Psql.MaxConns)
	assert.False(t, cfg.Psql.Seed)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("ORACLE_TIMEOUT", "3s")
	t.Setenv("BIDDING_REVENUE_PER_CONVERSION", "12.5")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 3*time.Second, cfg.Oracle.Timeout)
	assert.Equal(t, "12.5", cfg.Bidding.RevenuePerConversion.String())
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoggerHandler(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(cfg.Log.Handler(&buf))
	logger.Info("dropped")
	logger.Warn("kept", slog.String("campaign_id", "c1"))

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
	assert.Contains(t, buf.String(), `"campaign_id":"c1"`)
}
