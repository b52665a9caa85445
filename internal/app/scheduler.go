// Package app wires the catalog, exposure history, selection engine
// and progress tracker into the scheduler surface the CLI consumes.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/taseebali/langauge-widget-desktop/internal/config"
	"github.com/taseebali/langauge-widget-desktop/internal/history"
	"github.com/taseebali/langauge-widget-desktop/internal/journal"
	"github.com/taseebali/langauge-widget-desktop/internal/progress"
	"github.com/taseebali/langauge-widget-desktop/internal/selection"
	"github.com/taseebali/langauge-widget-desktop/internal/vocab"
)

// Scheduler coordinates word selection and the per-exposure state
// updates. All mutating calls run on one goroutine (the timer/command
// loop); other goroutines only ever receive snapshots.
type Scheduler struct {
	cfg      config.Config
	catalog  *vocab.Catalog
	history  *history.Store
	progress *progress.Tracker
	engine   *selection.Engine
	journal  *journal.Journal // nil disables auditing
	logger   *slog.Logger
	now      func() time.Time

	timeRules selection.Rules
	currentID int // word currently on screen, 0 when none
}

// New builds a scheduler from its collaborators. journal may be nil.
func New(cfg config.Config, catalog *vocab.Catalog, hist *history.Store,
	prog *progress.Tracker, engine *selection.Engine, jour *journal.Journal,
	logger *slog.Logger) *Scheduler {

	if logger == nil {
		logger = slog.Default()
	}
	s := &Scheduler{
		cfg:      cfg,
		catalog:  catalog,
		history:  hist,
		progress: prog,
		engine:   engine,
		journal:  jour,
		logger:   logger,
		now:      time.Now,
	}
	if cfg.TimeBasedCategories {
		s.timeRules = make(selection.Rules, len(cfg.TimeRules))
		for bucket, cats := range cfg.TimeRules {
			s.timeRules[selection.Bucket(bucket)] = cats
		}
	}
	return s
}

// SelectNext picks the next word honoring the configured category
// filter and, when enabled, the time-of-day overlay. It performs no
// state updates. ok is false only for an empty catalog.
func (s *Scheduler) SelectNext() (vocab.Word, bool) {
	var overlay []string
	if s.cfg.TimeBasedCategories {
		overlay = s.timeRules.Categories(s.now())
	}
	return s.engine.SelectNext(s.catalog, s.history, s.currentID,
		s.cfg.EnabledCategories, overlay)
}

// ShowNext selects the next word and records the exposure: history,
// progress and journal all advance, and the word becomes the current
// one. The returned achievements were newly unlocked by this exposure.
func (s *Scheduler) ShowNext(ctx context.Context) (vocab.Word, []progress.Achievement, bool) {
	w, ok := s.SelectNext()
	if !ok {
		return vocab.Word{}, nil, false
	}

	s.history.RecordExposure(w.ID)
	unlocked := s.progress.RecordActivity(1)
	s.currentID = w.ID

	if err := s.journal.Append(ctx, w.ID, journal.ActionShown); err != nil {
		s.logger.Warn("journal append failed", "word", w.ID, "error", err)
	}
	return w, unlocked, true
}

// RecordExposure advances the exposure history for id without touching
// progress. Unknown ids are adopted on first reference.
func (s *Scheduler) RecordExposure(id int) {
	s.history.RecordExposure(id)
}

// RecordActivity advances the progress tracker by count exposures and
// returns newly unlocked achievements.
func (s *Scheduler) RecordActivity(count int) []progress.Achievement {
	return s.progress.RecordActivity(count)
}

// MarkKnown flags the word as known (cleared from difficult).
func (s *Scheduler) MarkKnown(ctx context.Context, id int) {
	s.history.MarkKnown(id)
	if err := s.journal.Append(ctx, id, journal.ActionMarkedKnown); err != nil {
		s.logger.Warn("journal append failed", "word", id, "error", err)
	}
}

// MarkDifficult flags the word as difficult (cleared from known).
func (s *Scheduler) MarkDifficult(ctx context.Context, id int) {
	s.history.MarkDifficult(id)
	if err := s.journal.Append(ctx, id, journal.ActionMarkedDifficult); err != nil {
		s.logger.Warn("journal append failed", "word", id, "error", err)
	}
}

// CurrentID returns the word currently on screen, 0 when none.
func (s *Scheduler) CurrentID() int { return s.currentID }

// DailyProgress returns today's exposure count.
func (s *Scheduler) DailyProgress() int { return s.progress.ProgressToday() }

// DailyGoal returns the configured words-per-day target.
func (s *Scheduler) DailyGoal() int { return s.progress.Goal() }

// CurrentStreak returns the active consecutive-day streak.
func (s *Scheduler) CurrentStreak() int { return s.progress.CurrentStreak() }

// LongestStreak returns the longest streak ever reached.
func (s *Scheduler) LongestStreak() int { return s.progress.LongestStreak() }

// ProgressSnapshot returns an immutable copy of the progress state for
// off-thread consumers.
func (s *Scheduler) ProgressSnapshot() progress.State {
	return s.progress.Snapshot()
}

// HistoryCounts reports how many words have been seen at least once,
// marked known and marked difficult.
func (s *Scheduler) HistoryCounts() (seen, known, difficult int) {
	return s.history.Counts()
}

// RecentEvents returns the latest journal events, newest first. The
// result is empty when auditing is disabled.
func (s *Scheduler) RecentEvents(ctx context.Context, limit int) ([]journal.Event, error) {
	return s.journal.Recent(ctx, limit)
}

// Flush forces a durable write of the exposure history.
func (s *Scheduler) Flush() {
	s.history.Flush()
}

// Close trims the history to its configured bound, flushes all state
// and closes the journal.
func (s *Scheduler) Close() error {
	s.history.CleanupOldEntries(s.cfg.MaxHistoryEntries)
	s.history.Flush()
	return s.journal.Close()
}
