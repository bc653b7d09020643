// Package config resolves runtime settings from defaults, an optional YAML file and
// PLANTD_* environment variables. Command-line flags are applied last by cmd/plantd.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/plantd/internal/model"
)

var ErrInvalidConfig = errors.New("config: invalid value")

type RuntimeConfig struct {
	DesktopNotifications bool
	TickBuffer           int
	// JournalPath is a SQLite DSN; the default keeps the journal in memory.
	JournalPath       string
	LogFile           string
	LogLevel          string
	DefaultPlant      string
	NotificationLimit int
	HistoryLimit      int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DesktopNotifications: false,
		TickBuffer:           8,
		JournalPath:          ":memory:",
		LogFile:              "",
		LogLevel:             "info",
		DefaultPlant:         "",
		NotificationLimit:    40,
		HistoryLimit:         50,
	}
}

// fileConfig mirrors RuntimeConfig with optional fields so an absent key keeps the
// lower layer's value.
type fileConfig struct {
	DesktopNotifications *bool   `yaml:"desktop_notifications"`
	TickBuffer           *int    `yaml:"tick_buffer"`
	JournalPath          *string `yaml:"journal_path"`
	LogFile              *string `yaml:"log_file"`
	LogLevel             *string `yaml:"log_level"`
	DefaultPlant         *string `yaml:"default_plant"`
	NotificationLimit    *int    `yaml:"notification_limit"`
	HistoryLimit         *int    `yaml:"history_limit"`
}

// LoadFile overlays the YAML file at path onto base. An empty path returns base.
func LoadFile(base RuntimeConfig, path string) (RuntimeConfig, error) {
	if strings.TrimSpace(path) == "" {
		return base, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config %s: %w", path, err)
	}
	return parseFile(base, b)
}

func parseFile(base RuntimeConfig, b []byte) (RuntimeConfig, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return base, fmt.Errorf("parse config: %w", err)
	}
	cfg := base
	if fc.DesktopNotifications != nil {
		cfg.DesktopNotifications = *fc.DesktopNotifications
	}
	if fc.TickBuffer != nil {
		cfg.TickBuffer = *fc.TickBuffer
	}
	if fc.JournalPath != nil {
		cfg.JournalPath = *fc.JournalPath
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.DefaultPlant != nil {
		cfg.DefaultPlant = *fc.DefaultPlant
	}
	if fc.NotificationLimit != nil {
		cfg.NotificationLimit = *fc.NotificationLimit
	}
	if fc.HistoryLimit != nil {
		cfg.HistoryLimit = *fc.HistoryLimit
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvBool("PLANTD_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("PLANTD_TICK_BUFFER"); ok && v > 0 {
		cfg.TickBuffer = v
	}
	if v, ok := getEnvString("PLANTD_JOURNAL"); ok {
		cfg.JournalPath = v
	}
	if v, ok := getEnvString("PLANTD_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("PLANTD_LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := getEnvString("PLANTD_PLANT"); ok {
		cfg.DefaultPlant = v
	}
	if v, ok := getEnvInt("PLANTD_NOTIFICATION_LIMIT"); ok && v > 0 {
		cfg.NotificationLimit = v
	}
	if v, ok := getEnvInt("PLANTD_HISTORY_LIMIT"); ok && v > 0 {
		cfg.HistoryLimit = v
	}
	return cfg
}

// Load applies defaults, the file at path and the environment, then validates.
func Load(path string) (RuntimeConfig, error) {
	cfg, err := LoadFile(DefaultRuntimeConfig(), path)
	if err != nil {
		return cfg, err
	}
	cfg = RuntimeConfigFromEnv(cfg)
	return cfg, cfg.Validate()
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func (c RuntimeConfig) Validate() error {
	if c.TickBuffer <= 0 {
		return fmt.Errorf("%w: tick buffer must be positive", ErrInvalidConfig)
	}
	if c.NotificationLimit <= 0 {
		return fmt.Errorf("%w: notification limit must be positive", ErrInvalidConfig)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("%w: history limit must be positive", ErrInvalidConfig)
	}
	if !logLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.DefaultPlant != "" {
		if _, err := model.LookupPlant(c.DefaultPlant); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

func getEnvString(name string) (string, bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
