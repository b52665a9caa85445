// Package history tracks when and how often each word has been shown,
// plus the learner's known/difficult marks, with debounced durable
// persistence.
package history

import (
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/taseebali/langauge-widget-desktop/internal/docstore"
)

// flushEvery is the debounce threshold: the store is written durably on
// every flushEvery-th mutating call, unless a flush is forced. Marks and
// cleanups always force one.
const flushEvery = 5

// Record is the exposure history of a single word.
type Record struct {
	TimesShown      int        `json:"times_shown"`
	LastShown       *time.Time `json:"last_shown"`
	FirstShown      *time.Time `json:"first_shown"`
	MarkedKnown     bool       `json:"marked_known,omitempty"`
	MarkedDifficult bool       `json:"marked_difficult,omitempty"`
}

// Store is the durable per-word exposure history. It is owned by a
// single goroutine; no internal locking.
type Store struct {
	path    string
	records map[string]*Record
	pending int // mutations since last durable write
	logger  *slog.Logger
	now     func() time.Time
}

// Open loads the history document at path. A missing or corrupt file
// yields an empty store, never an error.
func Open(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		path:    path,
		records: make(map[string]*Record),
		logger:  logger,
		now:     time.Now,
	}
	if _, err := docstore.Load(path, &s.records); err != nil {
		logger.Warn("history unreadable, starting empty", "path", path, "error", err)
		s.records = make(map[string]*Record)
	}
	if s.records == nil {
		s.records = make(map[string]*Record)
	}
	return s
}

// RecordExposure registers that the word was displayed: the record is
// created lazily, times_shown incremented and the shown timestamps
// updated. The write to disk is debounced.
func (s *Store) RecordExposure(id int) {
	rec := s.ensure(id)
	now := s.now()
	rec.TimesShown++
	rec.LastShown = &now
	if rec.FirstShown == nil {
		rec.FirstShown = &now
	}
	s.save(false)
}

// HoursSinceShown returns the hours elapsed since the word was last
// shown. ok is false if the word has never been shown.
func (s *Store) HoursSinceShown(id int) (float64, bool) {
	rec := s.records[key(id)]
	if rec == nil || rec.LastShown == nil {
		return 0, false
	}
	return s.now().Sub(*rec.LastShown).Hours(), true
}

// TimesShown returns how often the word has been shown, 0 if never.
func (s *Store) TimesShown(id int) int {
	if rec := s.records[key(id)]; rec != nil {
		return rec.TimesShown
	}
	return 0
}

// MarkKnown flags the word as known and clears the difficult flag.
// Marks are rare, high-value signals, so the write is immediate.
func (s *Store) MarkKnown(id int) {
	rec := s.ensure(id)
	rec.MarkedKnown = true
	rec.MarkedDifficult = false
	s.save(true)
}

// MarkDifficult flags the word as difficult and clears the known flag.
func (s *Store) MarkDifficult(id int) {
	rec := s.ensure(id)
	rec.MarkedDifficult = true
	rec.MarkedKnown = false
	s.save(true)
}

// IsMarkedKnown reports whether the word is marked known.
func (s *Store) IsMarkedKnown(id int) bool {
	rec := s.records[key(id)]
	return rec != nil && rec.MarkedKnown
}

// IsMarkedDifficult reports whether the word is marked difficult.
func (s *Store) IsMarkedDifficult(id int) bool {
	rec := s.records[key(id)]
	return rec != nil && rec.MarkedDifficult
}

// CleanupOldEntries retains only the maxEntries most recently shown
// records, discarding the rest. Records never shown sort last. A no-op
// if the store is already within bounds; otherwise the trimmed store is
// flushed immediately.
func (s *Store) CleanupOldEntries(maxEntries int) {
	if maxEntries < 0 {
		maxEntries = 0
	}
	if len(s.records) <= maxEntries {
		return
	}

	type entry struct {
		key string
		rec *Record
	}
	entries := make([]entry, 0, len(s.records))
	for k, r := range s.records {
		entries = append(entries, entry{k, r})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].rec.LastShown, entries[j].rec.LastShown
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})

	kept := make(map[string]*Record, maxEntries)
	for _, e := range entries[:maxEntries] {
		kept[e.key] = e.rec
	}
	s.records = kept
	s.save(true)
}

// Len returns the number of tracked records.
func (s *Store) Len() int {
	return len(s.records)
}

// Counts returns how many tracked words have been shown at least once,
// are marked known, and are marked difficult.
func (s *Store) Counts() (seen, known, difficult int) {
	for _, rec := range s.records {
		if rec.TimesShown > 0 {
			seen++
		}
		if rec.MarkedKnown {
			known++
		}
		if rec.MarkedDifficult {
			difficult++
		}
	}
	return seen, known, difficult
}

// Flush forces a durable write regardless of the debounce counter.
// Callers use it for guaranteed durability points such as shutdown.
func (s *Store) Flush() {
	s.save(true)
}

func (s *Store) ensure(id int) *Record {
	k := key(id)
	rec := s.records[k]
	if rec == nil {
		rec = &Record{}
		s.records[k] = rec
	}
	return rec
}

// save writes the store to disk, debounced unless forced. Write
// failures are logged; the previously durable state stays intact.
func (s *Store) save(force bool) {
	if !force {
		s.pending++
		if s.pending < flushEvery {
			return
		}
	}
	if err := docstore.Save(s.path, s.records); err != nil {
		s.logger.Error("history write failed", "path", s.path, "error", err)
		return
	}
	s.pending = 0
}

// key converts a word id to its persisted map key. The document format
// keys records by string-encoded id.
func key(id int) string {
	return strconv.Itoa(id)
}
