package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "semester", cfg.DefaultCalendar)
	assert.Empty(t, cfg.CalendarDir)
	assert.False(t, cfg.Database.Enabled())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 50.0, cfg.RateLimit)
	assert.Equal(t, 100, cfg.RateLimitBurst)
	assert.True(t, cfg.SchedulerEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("DEFAULT_CALENDAR", "quarter")
	t.Setenv("DATABASE_URL", "postgres://localhost/acadterm")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("DB_MAX_CONN_LIFETIME", "2h")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SCHEDULER_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "quarter", cfg.DefaultCalendar)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, 25, cfg.Database.MaxConns)
	assert.Equal(t, 2*time.Hour, cfg.Database.MaxConnLifetime)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.SchedulerEnabled)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "lots")
	t.Setenv("DB_MAX_CONN_IDLE_TIME", "soon")
	t.Setenv("SCHEDULER_ENABLED", "maybe")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Database.MaxConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.MaxConnIdleTime)
	assert.True(t, cfg.SchedulerEnabled)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("ENV", "testing")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV must be one of")
}

func TestLoad_InvalidRateLimit(t *testing.T) {
	t.Setenv("API_RATE_LIMIT", "-5")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_RATE_LIMIT must be positive")
}
