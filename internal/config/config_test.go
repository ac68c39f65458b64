package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "social_db", cfg.DBName)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_NAME", "ripple_test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "ripple_test", cfg.DBName)
}

func TestValidate(t *testing.T) {
	base := Config{
		Port:   "3000",
		DBName: "social_db",
	}

	t.Run("Development accepts weak password", func(t *testing.T) {
		cfg := base
		cfg.Env = "development"
		cfg.DBPassword = "password"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Production rejects default password", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Production rejects empty password", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Missing port", func(t *testing.T) {
		cfg := Config{DBName: "social_db"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("Missing database name", func(t *testing.T) {
		cfg := Config{Port: "3000"}
		assert.Error(t, cfg.Validate())
	})
}
