package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/taseebali/langauge-widget-desktop/internal/app"
	"github.com/taseebali/langauge-widget-desktop/internal/config"
	"github.com/taseebali/langauge-widget-desktop/internal/history"
	"github.com/taseebali/langauge-widget-desktop/internal/journal"
	"github.com/taseebali/langauge-widget-desktop/internal/progress"
	"github.com/taseebali/langauge-widget-desktop/internal/selection"
	"github.com/taseebali/langauge-widget-desktop/internal/vocab"
)

// runLoop builds the scheduler and drives the refresh loop until
// interrupted.
func runLoop(cmd *cobra.Command) error {
	s, err := buildScheduler(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return s.Run(ctx, os.Stdout)
}

// loadConfig resolves the config file from --config or the default
// location, then applies the --data override.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if data, _ := cmd.Flags().GetString("data"); data != "" {
		// Keep a defaulted vocab dir under the overridden data dir.
		if cfg.VocabDir == filepath.Join(cfg.DataDir, "vocabulary") {
			cfg.VocabDir = filepath.Join(data, "vocabulary")
		}
		cfg.DataDir = data
	}
	return cfg, nil
}

// buildScheduler opens every collaborator and wires the scheduler. A
// journal that fails to open is logged and disabled, never fatal.
func buildScheduler(cmd *cobra.Command) (*app.Scheduler, error) {
	setupLogging(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	catalog := vocab.NewCatalog(nil)
	if err := catalog.LoadDir(cfg.VocabDir); err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}

	hist := history.Open(cfg.HistoryPath(), nil)
	prog := progress.Open(cfg.ProgressPath(), nil)

	// The config seeds the daily goal until the learner sets their own
	// via the goal command.
	if cfg.DailyGoal != progress.DefaultDailyGoal && prog.Goal() == progress.DefaultDailyGoal {
		prog.SetGoal(cfg.DailyGoal)
	}

	jour, err := journal.Open(cfg.JournalPath())
	if err != nil {
		slog.Warn("event journal unavailable", "path", cfg.JournalPath(), "error", err)
		jour = nil
	}

	return app.New(cfg, catalog, hist, prog, selection.NewEngine(), jour, nil), nil
}
