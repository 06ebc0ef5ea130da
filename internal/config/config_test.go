package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DB_PASSWORD", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_MAX_CONNS", "10")
	t.Setenv("DB_MIN_CONNS", "2")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, 10, cfg.Database.MaxConns)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("REDIS_ENABLED", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.False(t, cfg.Redis.Enabled)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:      AppConfig{Port: "8080", Environment: "development"},
			Database: DatabaseConfig{MaxConns: 10, MinConns: 2},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty port", func(c *Config) { c.App.Port = "" }, "APP_PORT"},
		{"zero max conns", func(c *Config) { c.Database.MaxConns = 0 }, "DB_MAX_CONNS"},
		{"min above max", func(c *Config) { c.Database.MinConns = 11 }, "DB_MIN_CONNS"},
		{"production without password", func(c *Config) { c.App.Environment = "production" }, "DB_PASSWORD"},
		{"production with password", func(c *Config) {
			c.App.Environment = "production"
			c.Database.Password = "secret"
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DB_MAX_RETRIES", "3")
	t.Setenv("DB_RETRY_DELAY", "250ms")

	base := DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", Database: "d", SSLMode: "require", MaxConns: 8, MinConns: 1}
	dbc, err := LoadDatabaseConfig(base)
	require.NoError(t, err)

	assert.Equal(t, 3, dbc.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, dbc.RetryDelay)
	assert.Equal(t, 10*time.Second, dbc.ConnectTimeout)
	assert.Equal(t, int32(8), dbc.MaxConns)
	assert.Equal(t, "require", dbc.SSLMode)
	assert.Equal(t, "u", dbc.Username)
}

func TestLoadDatabaseConfigErrors(t *testing.T) {
	tests := map[string]string{
		"DB_MAX_RETRIES":         "0",
		"DB_MAX_CONN_LIFETIME":   "forever",
		"DB_CONNECT_TIMEOUT":     "10",
		"DB_HEALTH_CHECK_PERIOD": "0s",
		"DB_MAX_CONN_IDLE_TIME":  "-1m",
		"DB_RETRY_DELAY":         "-1s",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := LoadDatabaseConfig(DatabaseConfig{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}
