package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/plantd/internal/model"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	assert.False(t, cfg.DesktopNotifications)
	assert.Equal(t, 8, cfg.TickBuffer)
	assert.Equal(t, ":memory:", cfg.JournalPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 40, cfg.NotificationLimit)
	assert.Equal(t, 50, cfg.HistoryLimit)
	assert.NoError(t, cfg.Validate())
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("PLANTD_DESKTOP_NOTIFICATIONS", "yes")
	t.Setenv("PLANTD_TICK_BUFFER", "16")
	t.Setenv("PLANTD_JOURNAL", "/tmp/plantd.db")
	t.Setenv("PLANTD_LOG_FILE", "/tmp/plantd.log")
	t.Setenv("PLANTD_LOG_LEVEL", "DEBUG")
	t.Setenv("PLANTD_PLANT", "basil")
	t.Setenv("PLANTD_NOTIFICATION_LIMIT", "10")
	t.Setenv("PLANTD_HISTORY_LIMIT", "5")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	want := RuntimeConfig{
		DesktopNotifications: true,
		TickBuffer:           16,
		JournalPath:          "/tmp/plantd.db",
		LogFile:              "/tmp/plantd.log",
		LogLevel:             "debug",
		DefaultPlant:         "basil",
		NotificationLimit:    10,
		HistoryLimit:         5,
	}
	assert.Equal(t, want, cfg)
}

func TestRuntimeConfigFromEnvIgnoresBadNumbers(t *testing.T) {
	t.Setenv("PLANTD_TICK_BUFFER", "lots")
	t.Setenv("PLANTD_HISTORY_LIMIT", "-3")
	t.Setenv("PLANTD_DESKTOP_NOTIFICATIONS", "maybe")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	assert.Equal(t, DefaultRuntimeConfig(), cfg)
}

func TestLoadFileOverlaysOnlyPresentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plantd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_plant: rose\nhistory_limit: 7\n"), 0o600))

	cfg, err := LoadFile(DefaultRuntimeConfig(), path)
	require.NoError(t, err)
	assert.Equal(t, "rose", cfg.DefaultPlant)
	assert.Equal(t, 7, cfg.HistoryLimit)
	assert.Equal(t, 8, cfg.TickBuffer)
	assert.Equal(t, ":memory:", cfg.JournalPath)
}

func TestLoadPrecedenceEnvOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plantd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_plant: rose\nlog_level: warn\n"), 0o600))
	t.Setenv("PLANTD_PLANT", "tomato")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tomato", cfg.DefaultPlant)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(DefaultRuntimeConfig(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_buffer: [1, 2\n"), 0o600))
	_, err = LoadFile(DefaultRuntimeConfig(), path)
	assert.Error(t, err)

	cfg, err := LoadFile(DefaultRuntimeConfig(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultRuntimeConfig(), cfg)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*RuntimeConfig){
		"tick buffer":  func(c *RuntimeConfig) { c.TickBuffer = 0 },
		"notify limit": func(c *RuntimeConfig) { c.NotificationLimit = -1 },
		"history":      func(c *RuntimeConfig) { c.HistoryLimit = 0 },
		"log level":    func(c *RuntimeConfig) { c.LogLevel = "loud" },
		"plant":        func(c *RuntimeConfig) { c.DefaultPlant = "cactus" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultRuntimeConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	cfg := DefaultRuntimeConfig()
	cfg.DefaultPlant = "cactus"
	assert.ErrorIs(t, cfg.Validate(), model.ErrUnknownPlant)
}
