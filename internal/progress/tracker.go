// Package progress tracks day-boundary streaks, daily goals and
// idempotent achievement unlocking.
package progress

import (
	"log/slog"
	"time"

	"github.com/taseebali/langauge-widget-desktop/internal/docstore"
)

// DefaultDailyGoal is the words-per-day target used until the learner
// sets their own.
const DefaultDailyGoal = 20

// dateLayout is the calendar-date key format for daily progress and
// streak bookkeeping.
const dateLayout = "2006-01-02"

// State is the persisted progress document.
type State struct {
	DailyGoal         int            `json:"daily_goal"`
	CurrentStreak     int            `json:"current_streak"`
	LongestStreak     int            `json:"longest_streak"`
	TotalWordsLearned int            `json:"total_words_learned"`
	TotalStudyDays    int            `json:"total_study_days"`
	Achievements      []string       `json:"achievements"`
	DailyProgress     map[string]int `json:"daily_progress"`
	LastActivityDate  string         `json:"last_activity_date,omitempty"`
}

func defaultState() State {
	return State{
		DailyGoal:     DefaultDailyGoal,
		Achievements:  []string{},
		DailyProgress: make(map[string]int),
	}
}

// Tracker owns the progress state machine. Single-writer; callers hand
// out copies via Snapshot when another goroutine needs to read.
type Tracker struct {
	path     string
	state    State
	unlocked map[string]bool // set view of state.Achievements
	logger   *slog.Logger
	now      func() time.Time
}

// Open loads the progress document at path. Missing or corrupt files
// yield default state, never an error.
func Open(path string, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Tracker{
		path:   path,
		state:  defaultState(),
		logger: logger,
		now:    time.Now,
	}
	if _, err := docstore.Load(path, &t.state); err != nil {
		logger.Warn("progress unreadable, starting fresh", "path", path, "error", err)
		t.state = defaultState()
	}
	if t.state.DailyProgress == nil {
		t.state.DailyProgress = make(map[string]int)
	}
	if t.state.DailyGoal <= 0 {
		t.state.DailyGoal = DefaultDailyGoal
	}
	t.unlocked = make(map[string]bool, len(t.state.Achievements))
	for _, id := range t.state.Achievements {
		t.unlocked[id] = true
	}
	return t
}

// RecordActivity registers count word exposures for today, advances the
// streak state machine and returns any newly unlocked achievements.
// State is persisted after every update.
func (t *Tracker) RecordActivity(count int) []Achievement {
	today := t.now().Format(dateLayout)

	t.state.DailyProgress[today] += count
	t.state.TotalWordsLearned += count
	t.updateStreak(today)

	newly := t.checkAchievements(today)
	t.save()
	return newly
}

// updateStreak implements the day-boundary transitions:
// first activity ever, same-day repeat, consecutive day, broken streak.
func (t *Tracker) updateStreak(today string) {
	yesterday := t.now().AddDate(0, 0, -1).Format(dateLayout)

	switch t.state.LastActivityDate {
	case "":
		t.state.CurrentStreak = 1
		t.state.TotalStudyDays = 1
	case today:
		// Same-day repeat, nothing to advance.
	case yesterday:
		t.state.CurrentStreak++
		t.state.TotalStudyDays++
	default:
		t.state.CurrentStreak = 1
		t.state.TotalStudyDays++
	}

	if t.state.CurrentStreak > t.state.LongestStreak {
		t.state.LongestStreak = t.state.CurrentStreak
	}
	t.state.LastActivityDate = today
}

// checkAchievements compares current metrics against the fixed
// thresholds and unlocks anything new. Unlocking is idempotent: an id
// already in the set is never re-emitted.
func (t *Tracker) checkAchievements(today string) []Achievement {
	var newly []Achievement

	for _, th := range streakThresholds {
		if t.state.CurrentStreak >= th.Days {
			newly = t.unlock(Achievement{Kind: th.Kind}, newly)
		}
	}
	for _, th := range wordThresholds {
		if t.state.TotalWordsLearned >= th.Words {
			newly = t.unlock(Achievement{Kind: th.Kind}, newly)
		}
	}
	// The daily goal unlocks exactly on the boundary, so batched counts
	// that jump past the goal don't award it.
	if t.state.DailyProgress[today] == t.state.DailyGoal {
		newly = t.unlock(Achievement{Kind: KindDailyGoal, Date: today}, newly)
	}

	return newly
}

func (t *Tracker) unlock(a Achievement, acc []Achievement) []Achievement {
	id := a.ID()
	if t.unlocked[id] {
		return acc
	}
	t.unlocked[id] = true
	t.state.Achievements = append(t.state.Achievements, id)
	return append(acc, a)
}

// ProgressToday returns today's exposure count.
func (t *Tracker) ProgressToday() int {
	return t.state.DailyProgress[t.now().Format(dateLayout)]
}

// Goal returns the daily word goal.
func (t *Tracker) Goal() int {
	return t.state.DailyGoal
}

// SetGoal updates the daily word goal and persists immediately.
func (t *Tracker) SetGoal(goal int) {
	if goal <= 0 {
		return
	}
	t.state.DailyGoal = goal
	t.save()
}

// CurrentStreak returns the consecutive-day streak including today.
func (t *Tracker) CurrentStreak() int {
	return t.state.CurrentStreak
}

// LongestStreak returns the longest streak ever reached.
func (t *Tracker) LongestStreak() int {
	return t.state.LongestStreak
}

// TotalWords returns the cumulative exposure count.
func (t *Tracker) TotalWords() int {
	return t.state.TotalWordsLearned
}

// StudyDays returns the number of distinct days with activity.
func (t *Tracker) StudyDays() int {
	return t.state.TotalStudyDays
}

// Achievements returns the unlocked achievements in unlock order.
// Unparseable ids from older files are skipped.
func (t *Tracker) Achievements() []Achievement {
	out := make([]Achievement, 0, len(t.state.Achievements))
	for _, id := range t.state.Achievements {
		if a, ok := ParseAchievement(id); ok {
			out = append(out, a)
		}
	}
	return out
}

// Snapshot returns a deep copy of the state, safe to hand to other
// goroutines (e.g. notification formatting).
func (t *Tracker) Snapshot() State {
	snap := t.state
	snap.Achievements = append([]string(nil), t.state.Achievements...)
	snap.DailyProgress = make(map[string]int, len(t.state.DailyProgress))
	for d, c := range t.state.DailyProgress {
		snap.DailyProgress[d] = c
	}
	return snap
}

func (t *Tracker) save() {
	if err := docstore.Save(t.path, t.state); err != nil {
		t.logger.Error("progress write failed", "path", t.path, "error", err)
	}
}
