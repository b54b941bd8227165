package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvergaraz/puntoventa/internal/config"
)

func TestNew(t *testing.T) {
	type Config struct {
		Log     config.Log
		HTTP    config.HTTP
		Storage config.Storage
	}

	t.Run("Should apply defaults", func(t *testing.T) {
		cfg, err := config.New[Config]()
		require.NoError(t, err)

		assert.Equal(t, uint32(8000), cfg.HTTP.Port)
		assert.Equal(t, "pos_database.json", cfg.Storage.File)
		assert.Equal(t, config.LogFormatJSON, cfg.Log.Format)
		assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	})

	t.Run("Should read overrides from the environment", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("DATABASE_FILE", "/tmp/ventas.json")
		t.Setenv("LOG_FORMAT", "text")
		t.Setenv("LOG_LEVEL", "DEBUG")

		cfg, err := config.New[Config]()
		require.NoError(t, err)

		assert.Equal(t, uint32(9090), cfg.HTTP.Port)
		assert.Equal(t, "/tmp/ventas.json", cfg.Storage.File)
		assert.Equal(t, config.LogFormatText, cfg.Log.Format)
		assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	})

	t.Run("Should reject an unknown log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")

		_, err := config.New[Config]()
		assert.Error(t, err)
	})
}

func TestLogFormatRoundTrip(t *testing.T) {
	text, err := config.LogFormatText.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "TEXT", string(text))

	var f config.LogFormat
	require.NoError(t, f.UnmarshalText([]byte("json")))
	assert.Equal(t, config.LogFormatJSON, f)
}
