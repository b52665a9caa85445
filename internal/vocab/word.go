package vocab

import "strings"

// Gender is the grammatical gender of a German noun.
type Gender string

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
	GenderNeuter    Gender = "neuter"
	GenderNone      Gender = "none"
)

// Article returns the definite article for the gender, or "" for
// non-nouns.
func (g Gender) Article() string {
	switch g {
	case GenderMasculine:
		return "der"
	case GenderFeminine:
		return "die"
	case GenderNeuter:
		return "das"
	default:
		return ""
	}
}

// ParseGender normalizes a gender string. Anything unrecognized maps to
// GenderNone.
func ParseGender(s string) Gender {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMasculine:
		return GenderMasculine
	case GenderFeminine:
		return GenderFeminine
	case GenderNeuter:
		return GenderNeuter
	default:
		return GenderNone
	}
}

// Difficulty is a CEFR level tag.
type Difficulty string

const (
	DifficultyA1 Difficulty = "A1"
	DifficultyA2 Difficulty = "A2"
	DifficultyB1 Difficulty = "B1"
	DifficultyB2 Difficulty = "B2"
	DifficultyC1 Difficulty = "C1"
	DifficultyC2 Difficulty = "C2"
)

// Example pairs a German sentence with its English translation.
type Example struct {
	German  string `json:"german"`
	English string `json:"english"`
}

// Word is a single learnable vocabulary item. Words are immutable once
// loaded into the catalog.
type Word struct {
	ID            int        `json:"id"`
	German        string     `json:"german"`
	English       string     `json:"english"`
	Gender        Gender     `json:"gender,omitempty"`
	Pronunciation string     `json:"pronunciation,omitempty"`
	Category      string     `json:"category,omitempty"`
	Difficulty    Difficulty `json:"difficulty,omitempty"`
	Examples      []Example  `json:"examples,omitempty"`
}

// Valid reports whether the word carries the required fields: a non-zero
// id and non-empty german and english forms.
func (w Word) Valid() bool {
	return w.ID != 0 &&
		strings.TrimSpace(w.German) != "" &&
		strings.TrimSpace(w.English) != ""
}

// Display returns the word with its article for nouns ("das Haus"),
// or the bare word otherwise.
func (w Word) Display() string {
	if art := w.Gender.Article(); art != "" {
		return art + " " + w.German
	}
	return w.German
}
