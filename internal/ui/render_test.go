package ui

import (
	"strings"
	"testing"

	"github.com/taseebali/langauge-widget-desktop/internal/progress"
	"github.com/taseebali/langauge-widget-desktop/internal/vocab"
)

func TestWordCardShowsArticleAndTranslation(t *testing.T) {
	w := vocab.Word{
		ID:      1,
		German:  "Haus",
		English: "house",
		Gender:  vocab.GenderNeuter,
	}

	card := WordCard(w)
	if !strings.Contains(card, "das Haus") {
		t.Errorf("card missing article form, got:\n%s", card)
	}
	if !strings.Contains(card, "house") {
		t.Errorf("card missing translation, got:\n%s", card)
	}
}

func TestGoalLineCapsAtFullBar(t *testing.T) {
	line := GoalLine(40, 20)
	if !strings.Contains(line, "40/20") {
		t.Errorf("goal line missing counts, got %q", line)
	}
	if strings.Contains(line, "░") {
		t.Errorf("bar past the goal should be full, got %q", line)
	}
}

func TestWarningLineCarriesMessage(t *testing.T) {
	msg := "no journal events recorded yet"
	if got := WarningLine(msg); !strings.Contains(got, msg) {
		t.Errorf("WarningLine = %q, want it to contain %q", got, msg)
	}
}

func TestAchievementBannerUsesTitle(t *testing.T) {
	a := progress.Achievement{Kind: progress.KindStreak7}
	if got := AchievementBanner(a); !strings.Contains(got, a.Title()) {
		t.Errorf("banner = %q, want it to contain %q", got, a.Title())
	}
}
