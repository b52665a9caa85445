// Package ui renders words, achievements and statistics for the
// terminal.
package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/taseebali/langauge-widget-desktop/internal/progress"
	"github.com/taseebali/langauge-widget-desktop/internal/ui/theme"
	"github.com/taseebali/langauge-widget-desktop/internal/vocab"
)

// WordCard renders a framed card for the given word.
func WordCard(w vocab.Word) string {
	var b strings.Builder

	b.WriteString(theme.German.Render(w.Display()))
	if w.Pronunciation != "" {
		b.WriteString("  " + theme.Pronunciation.Render("["+w.Pronunciation+"]"))
	}
	b.WriteString("\n")
	b.WriteString(theme.English.Render(w.English))

	if len(w.Examples) > 0 {
		ex := w.Examples[0]
		b.WriteString("\n\n")
		b.WriteString(theme.Example.Render(ex.German))
		b.WriteString("\n")
		b.WriteString(theme.ExampleDim.Render(ex.English))
	}

	meta := metaLine(w)
	if meta != "" {
		b.WriteString("\n\n" + theme.Label.Render(meta))
	}

	return theme.Card.Render(b.String())
}

func metaLine(w vocab.Word) string {
	var parts []string
	if w.Category != "" {
		parts = append(parts, w.Category)
	}
	if w.Difficulty != "" {
		parts = append(parts, string(w.Difficulty))
	}
	parts = append(parts, fmt.Sprintf("#%d", w.ID))
	return strings.Join(parts, " · ")
}

// AchievementBanner renders a one-line unlock notification.
func AchievementBanner(a progress.Achievement) string {
	return theme.Achievement.Render("★ " + a.Title())
}

// WarningLine renders a one-line warning, used for empty-state
// messages (no words loaded, no journal events yet).
func WarningLine(msg string) string {
	return theme.Warning.Render(msg)
}

// StatRow renders an aligned "label: value" statistics line.
func StatRow(label string, value any) string {
	return fmt.Sprintf("%s %s",
		theme.Label.Render(fmt.Sprintf("%-22s", label+":")),
		theme.Value.Render(fmt.Sprint(value)))
}

// GoalLine renders today's progress against the daily goal with a
// small bar.
func GoalLine(progressToday, goal int) string {
	const width = 20
	filled := 0
	if goal > 0 {
		filled = progressToday * width / goal
		if filled > width {
			filled = width
		}
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	line := fmt.Sprintf("%s %d/%d", bar, progressToday, goal)
	if progressToday >= goal {
		return theme.Achievement.Render(line)
	}
	return theme.Value.Render(line)
}

// Join stacks rendered blocks vertically.
func Join(blocks ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
