package selection

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/taseebali/langauge-widget-desktop/internal/vocab"
)

// Engine performs weighted random word selection. One draw per call,
// independent across calls.
type Engine struct {
	rng *rand.Rand
}

// NewEngine returns an engine with a time-seeded RNG.
func NewEngine() *Engine {
	seed := uint64(time.Now().UnixNano())
	return NewEngineWithRand(rand.New(rand.NewPCG(seed, seed>>32)))
}

// NewEngineWithRand returns an engine using the given RNG. Tests pass a
// fixed-seed source for deterministic draws.
func NewEngineWithRand(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// SelectNext picks the next word to display.
//
// The candidate pool is the catalog filtered to enabled categories
// (nil, empty, or ["all"] means no filter); an empty filtered pool
// falls back to the whole catalog. overlay, when non-nil, is the active
// time-of-day category list: it intersects the user filter, and when
// the intersection is empty the overlay wins outright. currentID (0
// when none) is excluded via its zero weight.
//
// ok is false only for an empty catalog. When every candidate weighs 0
// (e.g. a single-word pool equal to currentID), the pick degrades to
// uniform random over the pool.
func (e *Engine) SelectNext(catalog *vocab.Catalog, h History, currentID int, enabled, overlay []string) (vocab.Word, bool) {
	all := catalog.All()
	if len(all) == 0 {
		return vocab.Word{}, false
	}

	categories := effectiveCategories(enabled, overlay)
	pool := filterByCategory(all, categories)
	if len(pool) == 0 {
		pool = all
	}

	candidates := make([]vocab.Word, 0, len(pool))
	weights := make([]float64, 0, len(pool))
	total := 0.0
	for _, w := range pool {
		wt := Weight(w, h, currentID)
		if wt > 0 {
			candidates = append(candidates, w)
			weights = append(weights, wt)
			total += wt
		}
	}

	if len(candidates) == 0 {
		return pool[e.rng.IntN(len(pool))], true
	}

	// Linear weighted sampling: draw in [0, total) and take the first
	// candidate whose cumulative weight exceeds the draw.
	draw := e.rng.Float64() * total
	cum := 0.0
	for i, wt := range weights {
		cum += wt
		if draw < cum {
			return candidates[i], true
		}
	}
	return candidates[len(candidates)-1], true
}

// effectiveCategories merges the user's category filter with the active
// time-of-day overlay.
func effectiveCategories(enabled, overlay []string) []string {
	if len(overlay) == 0 {
		return enabled
	}
	if isAll(enabled) {
		return overlay
	}
	var intersection []string
	for _, cat := range enabled {
		if slices.Contains(overlay, cat) {
			intersection = append(intersection, cat)
		}
	}
	if len(intersection) > 0 {
		return intersection
	}
	return overlay
}

func filterByCategory(words []vocab.Word, categories []string) []vocab.Word {
	if isAll(categories) {
		return words
	}
	var out []vocab.Word
	for _, w := range words {
		if slices.Contains(categories, w.Category) {
			out = append(out, w)
		}
	}
	return out
}

// isAll reports whether the category filter means "no filtering".
func isAll(categories []string) bool {
	return len(categories) == 0 || slices.Contains(categories, "all")
}
