package models

// ItemType identifies which content domain a progress record or question
// refers to. Hiragana and katakana share the "kana" namespace; see the
// content package for how their item ids are kept apart.
type ItemType string

const (
	ItemTypeKana    ItemType = "kana"
	ItemTypeVocab   ItemType = "vocab"
	ItemTypeKanji   ItemType = "kanji"
	ItemTypeGrammar ItemType = "grammar"
)

// Valid reports whether t is one of the known item types
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeKana, ItemTypeVocab, ItemTypeKanji, ItemTypeGrammar:
		return true
	}
	return false
}

// Question represents a single multiple-choice exam question.
// The ID is sequential within one generated exam and is not related to
// the originating content item's id, which lives in SourceItemID.
type Question struct {
	ID           int      `json:"id"`
	Text         string   `json:"text"`
	Choices      []string `json:"choices"` // always exactly 4 entries
	CorrectIndex int      `json:"correct_index"`
	SourceType   ItemType `json:"source_type"`
	SourceItemID int      `json:"source_item_id"`
}
