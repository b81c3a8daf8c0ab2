package models

// VocabItem represents one N5 vocabulary entry to be learned
type VocabItem struct {
	ID        int      `json:"id" db:"id"`
	WordJP    string   `json:"word_jp" db:"word_jp"`
	Reading   string   `json:"reading" db:"reading"`
	MeaningES string   `json:"meaning_es" db:"meaning_es"` // Spanish meaning, used as the quiz answer
	Pos       string   `json:"pos" db:"pos"`               // Part of speech
	Tags      []string `json:"tags"`
}
