package vocab

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDocumentSkipsInvalidRecords(t *testing.T) {
	raw := []byte(`{
		"words": [
			{"id": 1, "german": "Haus", "english": "house", "gender": "neuter", "category": "core"},
			{"id": 2, "german": "", "english": "empty german"},
			{"german": "ohne", "english": "missing id"},
			{"id": "wrong-type", "german": "Typ", "english": "type"},
			{"id": 3, "german": "laufen", "english": "to run", "category": "verbs"}
		]
	}`)

	c := NewCatalog(nil)
	added, err := c.LoadDocument("test.json", raw)
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if added != 2 {
		t.Errorf("added = %d, want 2", added)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	if _, ok := c.ByID(2); ok {
		t.Error("invalid record (empty german) should not be indexed")
	}
	w, ok := c.ByID(1)
	if !ok {
		t.Fatal("word 1 not found")
	}
	if w.German != "Haus" || w.Gender != GenderNeuter {
		t.Errorf("unexpected word: %+v", w)
	}
}

func TestLoadDocumentRejectsWrongShape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{broken`},
		{"missing words key", `{"woerter": []}`},
		{"words not array", `{"words": {"id": 1}}`},
		{"words items not objects", `{"words": [1, 2, 3]}`},
	}

	for _, tt := range tests {
		c := NewCatalog(nil)
		if _, err := c.LoadDocument(tt.name, []byte(tt.raw)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestLoadDirSkipsBadFilesAndContinues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a_good.json", `{"words": [{"id": 1, "german": "Baum", "english": "tree", "category": "nature"}]}`)
	writeFile(t, dir, "b_broken.json", `{nope`)
	writeFile(t, dir, "c_more.json", `{"words": [{"id": 2, "german": "Apfel", "english": "apple", "gender": "masculine", "category": "food"}]}`)
	writeFile(t, dir, "ignored.txt", `not a source`)

	c := NewCatalog(nil)
	if err := c.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	// Load order follows filename order.
	all := c.All()
	if all[0].ID != 1 || all[1].ID != 2 {
		t.Errorf("unexpected load order: %v, %v", all[0].ID, all[1].ID)
	}
}

func TestLoadDirMissingDirectory(t *testing.T) {
	c := NewCatalog(nil)
	if err := c.LoadDir(filepath.Join(t.TempDir(), "missing")); err != nil {
		t.Errorf("missing dir should not be an error, got %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestCategories(t *testing.T) {
	c := loadTestCatalog(t)

	got := c.Categories()
	want := []string{"animals", "food", "verbs"}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	food := c.ByCategory("food")
	if len(food) != 2 {
		t.Errorf("ByCategory(food) returned %d words, want 2", len(food))
	}
	if len(c.ByCategory("nonexistent")) != 0 {
		t.Error("ByCategory(nonexistent) should be empty")
	}
}

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog(nil)
	_, err := c.LoadDocument("test.json", []byte(`{
		"words": [
			{"id": 1, "german": "Apfel", "english": "apple", "category": "food"},
			{"id": 2, "german": "Brot", "english": "bread", "category": "food"},
			{"id": 3, "german": "Hund", "english": "dog", "category": "animals"},
			{"id": 4, "german": "laufen", "english": "to run", "category": "verbs"}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
