// Package vocab loads and indexes the static set of learnable words.
package vocab

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// Catalog holds the loaded vocabulary with lookup indices. It is
// populated at startup and immutable afterwards.
type Catalog struct {
	words  []Word
	byID   map[int]int // word id -> index into words
	logger *slog.Logger
}

// NewCatalog returns an empty catalog. Pass nil to use slog.Default().
func NewCatalog(logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		byID:   make(map[int]int),
		logger: logger,
	}
}

// LoadDir ingests every *.json source document in dir, in filename
// order. A missing directory is not an error; the catalog just stays
// empty. Individual documents or records that fail validation are
// skipped with a diagnostic, never aborting the load.
func (c *Catalog) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		c.logger.Warn("vocabulary directory not found", "dir", dir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read vocabulary dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			c.logger.Warn("skipping unreadable source", "path", path, "error", err)
			continue
		}
		if _, err := c.LoadDocument(name, raw); err != nil {
			c.logger.Warn("skipping invalid source", "path", path, "error", err)
		}
	}

	c.logger.Info("vocabulary loaded", "words", len(c.words), "dir", dir)
	return nil
}

// LoadDocument ingests one raw source document of shape
// {"words": [...]}. It returns the number of words added. Records that
// are malformed (wrong field types, missing id/german/english) are
// skipped individually with a diagnostic.
func (c *Catalog) LoadDocument(name string, raw []byte) (int, error) {
	if err := validateSource(raw); err != nil {
		return 0, err
	}

	var doc struct {
		Words []json.RawMessage `json:"words"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}

	added := 0
	for i, rec := range doc.Words {
		var w Word
		if err := json.Unmarshal(rec, &w); err != nil {
			c.logger.Warn("skipping malformed record",
				"source", name, "index", i, "error", err)
			continue
		}
		if !w.Valid() {
			c.logger.Warn("skipping record with missing required fields",
				"source", name, "index", i, "id", w.ID)
			continue
		}
		if w.Gender == "" {
			w.Gender = GenderNone
		}
		c.words = append(c.words, w)
		c.byID[w.ID] = len(c.words) - 1
		added++
	}
	return added, nil
}

// ByID returns the word with the given id.
func (c *Catalog) ByID(id int) (Word, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Word{}, false
	}
	return c.words[idx], true
}

// All returns every loaded word in load order. The returned slice is
// shared; callers must not modify it.
func (c *Catalog) All() []Word {
	return c.words
}

// ByCategory returns all words tagged with the given category.
func (c *Catalog) ByCategory(category string) []Word {
	var out []Word
	for _, w := range c.words {
		if w.Category == category {
			out = append(out, w)
		}
	}
	return out
}

// Categories returns the sorted set of distinct category tags.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	for _, w := range c.words {
		if w.Category != "" {
			seen[w.Category] = true
		}
	}
	out := make([]string, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of loaded words.
func (c *Catalog) Len() int {
	return len(c.words)
}
