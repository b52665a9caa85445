package progress

import "strings"

// Kind enumerates the fixed achievement milestones. Daily-goal
// achievements additionally carry the date they were earned.
type Kind string

const (
	KindStreak7   Kind = "streak_7"
	KindStreak30  Kind = "streak_30"
	KindStreak100 Kind = "streak_100"
	KindWords100  Kind = "words_100"
	KindWords500  Kind = "words_500"
	KindWords1000 Kind = "words_1000"
	KindDailyGoal Kind = "daily_goal"
)

// streakThresholds and wordThresholds pair each milestone with the
// metric value that unlocks it.
var (
	streakThresholds = []struct {
		Days int
		Kind Kind
	}{
		{7, KindStreak7},
		{30, KindStreak30},
		{100, KindStreak100},
	}
	wordThresholds = []struct {
		Words int
		Kind  Kind
	}{
		{100, KindWords100},
		{500, KindWords500},
		{1000, KindWords1000},
	}
)

// Achievement is a milestone identity: a fixed kind plus, for daily
// goals, the calendar date (YYYY-MM-DD) it applies to.
type Achievement struct {
	Kind Kind
	Date string
}

// ID returns the persisted identifier, e.g. "streak_7" or
// "daily_goal_2026-03-10". Two achievements are the same milestone iff
// their IDs are equal.
func (a Achievement) ID() string {
	if a.Kind == KindDailyGoal {
		return string(KindDailyGoal) + "_" + a.Date
	}
	return string(a.Kind)
}

// Title returns a short human-readable description for notifications.
func (a Achievement) Title() string {
	switch a.Kind {
	case KindStreak7:
		return "Week Warrior — 7 day streak!"
	case KindStreak30:
		return "Monthly Master — 30 day streak!"
	case KindStreak100:
		return "Century Streak — 100 days!"
	case KindWords100:
		return "First Hundred — 100 words learned"
	case KindWords500:
		return "Half Thousand — 500 words learned"
	case KindWords1000:
		return "Thousand Club — 1000 words learned"
	case KindDailyGoal:
		return "Daily Goal Complete!"
	default:
		return a.ID()
	}
}

// ParseAchievement reconstructs an Achievement from a persisted id.
// ok is false for ids that match no known kind.
func ParseAchievement(id string) (Achievement, bool) {
	if date, found := strings.CutPrefix(id, string(KindDailyGoal)+"_"); found {
		return Achievement{Kind: KindDailyGoal, Date: date}, true
	}
	switch Kind(id) {
	case KindStreak7, KindStreak30, KindStreak100,
		KindWords100, KindWords500, KindWords1000:
		return Achievement{Kind: Kind(id)}, true
	}
	return Achievement{}, false
}
