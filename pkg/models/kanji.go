package models

// KanjiItem represents one N5 kanji character with its readings and meanings
type KanjiItem struct {
	ID         int      `json:"id" db:"id"`
	Kanji      string   `json:"kanji" db:"kanji"`
	Readings   []string `json:"readings"`
	MeaningsES []string `json:"meanings_es"` // Spanish meanings; the first one is the quiz answer
	Examples   []string `json:"examples"`
}
