// Package selection picks the next word to present using a
// recency/frequency decay weight and weighted random sampling.
package selection

import "github.com/taseebali/langauge-widget-desktop/internal/vocab"

// NeverShownHours is the recency assigned to words with no exposure
// yet, making them behave as if last shown far in the past. The value
// couples the never-shown case to the scale of the decay formula;
// changing it shifts how strongly fresh words outrank recently seen
// ones.
const NeverShownHours = 1000.0

// Multipliers applied on top of the base decay weight.
const (
	neverShownBoost = 2.0
	difficultBoost  = 1.5
	knownDamping    = 0.3
)

// History is the read-only view of exposure history the engine needs.
// *history.Store satisfies it.
type History interface {
	HoursSinceShown(id int) (float64, bool)
	TimesShown(id int) int
	IsMarkedKnown(id int) bool
	IsMarkedDifficult(id int) bool
}

// Weight computes the selection weight for a word:
//
//	(hoursSinceShown + 1)^2 / (timesShown + 1)
//
// boosted 2x for never-shown words, 1.5x for words marked difficult and
// damped to 0.3x for words marked known. The currently displayed word
// (currentID, 0 when none) always weighs 0 so it is never reselected.
func Weight(w vocab.Word, h History, currentID int) float64 {
	if currentID != 0 && w.ID == currentID {
		return 0
	}

	hoursSince, shown := h.HoursSinceShown(w.ID)
	if !shown {
		hoursSince = NeverShownHours
	}
	timesShown := h.TimesShown(w.ID)

	base := (hoursSince + 1) * (hoursSince + 1) / float64(timesShown+1)

	multiplier := 1.0
	switch {
	case timesShown == 0:
		multiplier = neverShownBoost
	case h.IsMarkedDifficult(w.ID):
		multiplier = difficultBoost
	case h.IsMarkedKnown(w.ID):
		multiplier = knownDamping
	}

	return base * multiplier
}
