package vocab

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/taseebali/langauge-widget-desktop/internal/docstore"
)

// importIDBase is the first id assigned to imported words, keeping them
// clear of the bundled vocabulary's id range.
const importIDBase = 1000

// ImportCSV converts a CSV vocabulary file into a JSON source document
// at outPath and returns the number of imported words.
//
// Expected columns: german, english, [gender, category, difficulty,
// pronunciation, example_german, example_english]. A header row whose
// first cell is "german" or "word" is skipped. Rows missing german or
// english are dropped; an unrecognized gender degrades to none, a
// missing category to "custom" and a missing difficulty to A1.
func ImportCSV(csvPath, outPath string) (int, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may have trailing optional columns

	rows, err := r.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("read csv: %w", err)
	}

	var words []Word
	nextID := importIDBase
	for i, row := range rows {
		if i == 0 && isHeaderRow(row) {
			continue
		}
		w, ok := parseRow(row, nextID)
		if !ok {
			continue
		}
		words = append(words, w)
		nextID++
	}

	if len(words) == 0 {
		return 0, fmt.Errorf("no valid words found in %s", csvPath)
	}

	doc := struct {
		Words []Word `json:"words"`
	}{Words: words}
	if err := docstore.Save(outPath, doc); err != nil {
		return 0, fmt.Errorf("write source: %w", err)
	}
	return len(words), nil
}

func isHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(row[0]))
	return first == "german" || first == "word"
}

func parseRow(row []string, id int) (Word, bool) {
	field := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	german := field(0)
	english := field(1)
	if german == "" || english == "" {
		return Word{}, false
	}

	w := Word{
		ID:            id,
		German:        german,
		English:       english,
		Gender:        ParseGender(field(2)),
		Category:      strings.ToLower(field(3)),
		Difficulty:    Difficulty(strings.ToUpper(field(4))),
		Pronunciation: field(5),
	}
	if w.Category == "" {
		w.Category = "custom"
	}
	if w.Difficulty == "" {
		w.Difficulty = DifficultyA1
	}

	if exDE, exEN := field(6), field(7); exDE != "" && exEN != "" {
		w.Examples = []Example{{German: exDE, English: exEN}}
	}
	return w, true
}
