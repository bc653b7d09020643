package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/plantd/internal/config"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlantsListsCatalog(t *testing.T) {
	out, err := runCmd(t, "plants")
	require.NoError(t, err)
	for _, id := range []string{"sunflower", "tomato", "basil", "rose"} {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, "Sunny Sunflower")
}

func TestPreviewPartialGrowth(t *testing.T) {
	out, err := runCmd(t, "preview", "--plant", "sunflower", "--completed", "2", "--total", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Sunny Sunflower")
	assert.Contains(t, out, "2 of 4 tasks completed")
	assert.NotContains(t, out, "full bloom")
	assert.Contains(t, out, "[x] sprout 10-30")
	assert.Contains(t, out, "[x] small-plant 30-60")
	assert.Contains(t, out, "[ ] mature-plant 60-90")
}

func TestPreviewFullBloomShowsBanner(t *testing.T) {
	out, err := runCmd(t, "preview", "--plant", "rose", "--completed", "3", "--total", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "All tasks complete!")
	assert.Contains(t, out, "full bloom")
}

func TestPreviewRejectsBadCounts(t *testing.T) {
	_, err := runCmd(t, "preview", "--completed", "5", "--total", "2")
	require.Error(t, err)

	_, err = runCmd(t, "preview", "--plant", "cactus", "--total", "1")
	require.Error(t, err)
}

func TestBuildLoggerWithoutFileIsNop(t *testing.T) {
	logger, err := buildLogger(config.DefaultRuntimeConfig(), false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(0))
}

func TestBuildLoggerWritesFile(t *testing.T) {
	cfg := config.DefaultRuntimeConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "plantd.log")
	logger, err := buildLogger(cfg, true)
	require.NoError(t, err)
	logger.Debug("hello")
	_ = logger.Sync()
	assert.FileExists(t, cfg.LogFile)
}

func TestResolveConfigFlagsWin(t *testing.T) {
	t.Setenv("PLANTD_PLANT", "tomato")
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--plant", "basil", "--desktop"}))
	opts := &rootOptions{plant: "basil", desktop: true}
	cfg, err := resolveConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, "basil", cfg.DefaultPlant)
	assert.True(t, cfg.DesktopNotifications)
}

func TestResolveConfigEnvWithoutFlags(t *testing.T) {
	t.Setenv("PLANTD_PLANT", "tomato")
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(nil))
	cfg, err := resolveConfig(cmd, &rootOptions{})
	require.NoError(t, err)
	assert.Equal(t, "tomato", cfg.DefaultPlant)
}
