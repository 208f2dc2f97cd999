package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"MERZA_APP_NAME":       os.Getenv("MERZA_APP_NAME"),
		"MERZA_APP_ENV":        os.Getenv("MERZA_APP_ENV"),
		"MERZA_APP_PORT":       os.Getenv("MERZA_APP_PORT"),
		"MERZA_STORE_DIR":      os.Getenv("MERZA_STORE_DIR"),
		"MERZA_MAIL_ENABLED":   os.Getenv("MERZA_MAIL_ENABLED"),
		"MERZA_MAIL_FROM":      os.Getenv("MERZA_MAIL_FROM"),
		"MERZA_MAIL_RECIPIENT": os.Getenv("MERZA_MAIL_RECIPIENT"),
		"MERZA_MAIL_PASSWORD":  os.Getenv("MERZA_MAIL_PASSWORD"),
		"MERZA_LOG_LEVEL":      os.Getenv("MERZA_LOG_LEVEL"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "merza-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "5000", cfg.App.Port)
		assert.Equal(t, "data", cfg.Store.Dir)
		assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
		assert.Equal(t, 60*time.Second, cfg.HTTP.IdleTimeout)
		assert.Equal(t, int64(10<<20), cfg.HTTP.MaxBodySize)
		assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
		assert.Contains(t, cfg.HTTP.CORSAllowMethods, "OPTIONS")
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.False(t, cfg.Mail.Enabled)
		assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
		assert.Equal(t, 587, cfg.Mail.Port)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
	})

	t.Run("loads values from environment variables with MERZA prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("MERZA_APP_NAME", "test-app")
		os.Setenv("MERZA_APP_ENV", "testing")
		os.Setenv("MERZA_APP_PORT", "9000")
		os.Setenv("MERZA_STORE_DIR", "/tmp/docs")
		os.Setenv("MERZA_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "/tmp/docs", cfg.Store.Dir)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("fails when mail is enabled without sender or recipient", func(t *testing.T) {
		clearEnv()
		os.Setenv("MERZA_MAIL_ENABLED", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mail.from")
	})

	t.Run("fails in production when mail password is missing", func(t *testing.T) {
		clearEnv()
		os.Setenv("MERZA_APP_ENV", "production")
		os.Setenv("MERZA_MAIL_ENABLED", "true")
		os.Setenv("MERZA_MAIL_FROM", "no-reply@example.com")
		os.Setenv("MERZA_MAIL_RECIPIENT", "owner@example.com")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mail.password")
	})

	t.Run("accepts production config with mail fully configured", func(t *testing.T) {
		clearEnv()
		os.Setenv("MERZA_APP_ENV", "production")
		os.Setenv("MERZA_MAIL_ENABLED", "true")
		os.Setenv("MERZA_MAIL_FROM", "no-reply@example.com")
		os.Setenv("MERZA_MAIL_RECIPIENT", "owner@example.com")
		os.Setenv("MERZA_MAIL_PASSWORD", "app-password")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
		assert.True(t, cfg.Mail.Enabled)
	})
}
