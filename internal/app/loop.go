package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/taseebali/langauge-widget-desktop/internal/ui"
)

// Run drives the refresh loop: show a word immediately, then another
// on every tick until the context is cancelled. Words and unlock
// banners are written to out. All scheduler mutations stay on this
// goroutine.
func (s *Scheduler) Run(ctx context.Context, out io.Writer) error {
	defer s.Close()

	if !s.show(ctx, out) {
		return fmt.Errorf("no words available in %s", s.cfg.VocabDir)
	}

	ticker := time.NewTicker(s.cfg.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("shutting down", "shown_today", s.DailyProgress())
			return nil
		case <-ticker.C:
			s.show(ctx, out)
		}
	}
}

func (s *Scheduler) show(ctx context.Context, out io.Writer) bool {
	w, unlocked, ok := s.ShowNext(ctx)
	if !ok {
		return false
	}

	blocks := []string{ui.WordCard(w)}
	for _, a := range unlocked {
		blocks = append(blocks, ui.AchievementBanner(a))
	}
	blocks = append(blocks, ui.GoalLine(s.DailyProgress(), s.DailyGoal()))

	fmt.Fprintln(out, ui.Join(blocks...))
	return true
}
