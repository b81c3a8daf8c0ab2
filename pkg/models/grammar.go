package models

// GrammarPoint represents one N5 grammar point (usually a particle or pattern)
type GrammarPoint struct {
	ID                  int      `json:"id" db:"id"`
	TitleJP             string   `json:"title_jp" db:"title_jp"`
	DescriptionSimpleJP string   `json:"description_simple_jp" db:"description_simple_jp"`
	NoteES              string   `json:"note_es" db:"note_es"`
	Examples            []string `json:"examples"`
}
