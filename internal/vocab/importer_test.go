package vocab

import (
	"os"
	"path/filepath"
	"testing"
)

func TestImportCSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "words.csv")
	outPath := filepath.Join(dir, "words.json")

	csvData := `german,english,gender,category,difficulty,pronunciation,example_german,example_english
Haus,house,neuter,buildings,A1,hows,Das Haus ist groß.,The house is big.
Katze,cat,feminine,animals
laufen,to run,,,B1
,missing german
nur-deutsch,
Tisch,table,unknown-gender
`
	if err := os.WriteFile(csvPath, []byte(csvData), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := ImportCSV(csvPath, outPath)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if n != 4 {
		t.Fatalf("imported %d words, want 4", n)
	}

	// The output must be loadable as a regular source document.
	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	c := NewCatalog(nil)
	added, err := c.LoadDocument("words.json", raw)
	if err != nil {
		t.Fatalf("LoadDocument on import output: %v", err)
	}
	if added != 4 {
		t.Fatalf("loaded %d words from import output, want 4", added)
	}

	haus, ok := c.ByID(importIDBase)
	if !ok {
		t.Fatalf("first imported word should have id %d", importIDBase)
	}
	if haus.Gender != GenderNeuter || haus.Category != "buildings" {
		t.Errorf("unexpected first word: %+v", haus)
	}
	if len(haus.Examples) != 1 || haus.Examples[0].English != "The house is big." {
		t.Errorf("example not imported: %+v", haus.Examples)
	}

	katze, _ := c.ByID(importIDBase + 1)
	if katze.Difficulty != DifficultyA1 {
		t.Errorf("missing difficulty should default to A1, got %q", katze.Difficulty)
	}

	laufen, _ := c.ByID(importIDBase + 2)
	if laufen.Category != "custom" {
		t.Errorf("missing category should default to custom, got %q", laufen.Category)
	}
	if laufen.Gender != GenderNone {
		t.Errorf("missing gender should be none, got %q", laufen.Gender)
	}

	tisch, _ := c.ByID(importIDBase + 3)
	if tisch.Gender != GenderNone {
		t.Errorf("unrecognized gender should degrade to none, got %q", tisch.Gender)
	}
}

func TestImportCSVNoValidRows(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(csvPath, []byte("german,english\n,\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportCSV(csvPath, filepath.Join(dir, "out.json")); err == nil {
		t.Error("expected error for CSV with no valid rows")
	}
}

func TestGenderArticle(t *testing.T) {
	tests := []struct {
		gender Gender
		want   string
	}{
		{GenderMasculine, "der"},
		{GenderFeminine, "die"},
		{GenderNeuter, "das"},
		{GenderNone, ""},
	}
	for _, tt := range tests {
		if got := tt.gender.Article(); got != tt.want {
			t.Errorf("Article(%s) = %q, want %q", tt.gender, got, tt.want)
		}
	}
}
