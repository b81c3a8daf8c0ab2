package content

import "github.com/example/n5bot/pkg/models"

// KanjiItems loads the N5 kanji list from kanji_n5.json
func (l *Library) KanjiItems() []models.KanjiItem {
	var items []models.KanjiItem
	readJSONFile(l.path(KanjiJSONFile), &items)
	return items
}

// SaveKanjiItems rewrites kanji_n5.json with the full list
func (l *Library) SaveKanjiItems(items []models.KanjiItem) error {
	return writeJSONFile(l.path(KanjiJSONFile), items)
}
