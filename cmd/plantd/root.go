package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sandeepkv93/plantd/internal/config"
	"github.com/sandeepkv93/plantd/internal/journal"
	"github.com/sandeepkv93/plantd/internal/scheduler"
	"github.com/sandeepkv93/plantd/internal/update"
)

type rootOptions struct {
	configPath string
	plant      string
	logFile    string
	verbose    bool
	desktop    bool

	cfg    config.RuntimeConfig
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "plantd",
		Short: "Grow a plant by finishing your tasks",
		Long: `plantd is a terminal task list with a plant that grows as you complete tasks.
Pick a plant, add tasks, and watch it move from seed to full bloom.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			logger, err := buildLogger(cfg, opts.verbose)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVar(&opts.plant, "plant", "", "start with this plant (sunflower, tomato, basil, rose)")
	cmd.Flags().BoolVar(&opts.desktop, "desktop", false, "send desktop notifications")

	cmd.AddCommand(newPlantsCmd(), newPreviewCmd(opts))
	return cmd
}

// resolveConfig layers flags on top of defaults, file and environment.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (config.RuntimeConfig, error) {
	cfg, err := config.LoadFile(config.DefaultRuntimeConfig(), opts.configPath)
	if err != nil {
		return cfg, err
	}
	cfg = config.RuntimeConfigFromEnv(cfg)
	if f := cmd.Flags().Lookup("plant"); f != nil && f.Changed {
		cfg.DefaultPlant = f.Value.String()
	}
	if f := cmd.Flags().Lookup("desktop"); f != nil && f.Changed {
		cfg.DesktopNotifications = opts.desktop
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildLogger writes to the configured file; the terminal belongs to the UI.
func buildLogger(cfg config.RuntimeConfig, verbose bool) (*zap.Logger, error) {
	if strings.TrimSpace(cfg.LogFile) == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func runTUI(ctx context.Context, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg := opts.cfg
	logger := opts.logger

	repo, err := journal.OpenSQLite(cfg.JournalPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer repo.Close()

	ticker, err := scheduler.NewTicker(scheduler.DefaultInterval, cfg.TickBuffer)
	if err != nil {
		return err
	}
	ticker.Start(ctx)
	defer ticker.Stop()

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	logger.Info("starting plantd",
		zap.String("plant", cfg.DefaultPlant),
		zap.String("journal", cfg.JournalPath),
		zap.Bool("desktop", cfg.DesktopNotifications),
		zap.Duration("tick_interval", ticker.Interval()),
	)
	m := update.NewModel(update.Deps{
		Config:   cfg,
		Ticks:    ticker,
		Journal:  repo,
		Logger:   logger,
		Notifier: notifier,
	})
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	logger.Info("plantd stopped", zap.Uint64("ticks_dropped", ticker.Dropped()))
	return nil
}
