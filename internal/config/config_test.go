package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/counters/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("COUNTERS_DB_DRIVER", "sqlite3")
	t.Setenv("COUNTERS_DB_DSN", "file:counters.db")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.HTTP.Addr)
	assert.Equal(t, 10, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5, cfg.DB.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, 5*time.Second, cfg.DB.QueryTimeout)
	assert.Equal(t, 5*time.Second, cfg.DB.BusyTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("COUNTERS_DB_DRIVER", "postgres")
	t.Setenv("COUNTERS_DB_DSN", "postgres://localhost/counters")
	t.Setenv("COUNTERS_HTTP_ADDR", ":9090")
	t.Setenv("COUNTERS_DB_MAX_OPEN_CONNS", "4")
	t.Setenv("COUNTERS_DB_MAX_IDLE_CONNS", "8")
	t.Setenv("COUNTERS_DB_QUERY_TIMEOUT", "250ms")
	t.Setenv("COUNTERS_DB_BUSY_TIMEOUT", "2s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, 4, cfg.DB.MaxOpenConns)
	// idle connections are capped at the open-connection limit
	assert.Equal(t, 4, cfg.DB.MaxIdleConns)
	assert.Equal(t, 250*time.Millisecond, cfg.DB.QueryTimeout)
	assert.Equal(t, 2*time.Second, cfg.DB.BusyTimeout)
}

func TestLoad_MissingDriver(t *testing.T) {
	t.Setenv("COUNTERS_DB_DRIVER", "")
	t.Setenv("COUNTERS_DB_DSN", "file:counters.db")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COUNTERS_DB_DRIVER")
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("COUNTERS_DB_DRIVER", "sqlite3")
	t.Setenv("COUNTERS_DB_DSN", "file:counters.db")
	t.Setenv("COUNTERS_DB_QUERY_TIMEOUT", "soon")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COUNTERS_DB_QUERY_TIMEOUT")
}
