package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/n5bot/pkg/models"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

func TestVocabCSVTakesPriorityOverJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, VocabJSONFile, `[{"id": 1, "word_jp": "犬", "reading": "いぬ", "meaning_es": "perro"}]`)
	writeFile(t, dir, VocabCSVFile, "id,word_jp,reading,meaning_es,pos,tags\n2,猫,ねこ,gato,noun,animal;n5\n")

	items := NewLibrary(dir).VocabItems()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)
	assert.Equal(t, "猫", items[0].WordJP)
	assert.Equal(t, "gato", items[0].MeaningES)
	assert.Equal(t, []string{"animal", "n5"}, items[0].Tags)
}

func TestVocabJSONFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, VocabJSONFile, `[{"id": 1, "word_jp": "犬", "reading": "いぬ", "meaning_es": "perro"}]`)

	items := NewLibrary(dir).VocabItems()
	require.Len(t, items, 1)
	assert.Equal(t, "perro", items[0].MeaningES)
}

func TestVocabRowsWithoutNumericIDSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, VocabCSVFile, "id,word_jp,reading,meaning_es,pos,tags\nx,犬,いぬ,perro,,\n3,猫,ねこ,gato,,\n")

	items := NewLibrary(dir).VocabItems()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].ID)
}

func TestVocabMissingFilesAreEmpty(t *testing.T) {
	assert.Empty(t, NewLibrary(t.TempDir()).VocabItems())
}

func TestVocabSaveRoundTrip(t *testing.T) {
	lib := NewLibrary(t.TempDir())
	in := []models.VocabItem{
		{ID: 1, WordJP: "家", Reading: "いえ", MeaningES: "casa", Pos: "noun", Tags: []string{"n5"}},
		{ID: 2, WordJP: "水", Reading: "みず", MeaningES: "agua", Pos: "noun"},
	}
	require.NoError(t, lib.SaveVocabItems(in))

	out := lib.VocabItems()
	require.Len(t, out, 2)
	assert.Equal(t, in[0], out[0])
	assert.Equal(t, "agua", out[1].MeaningES)
	assert.Nil(t, out[1].Tags)
}

func TestKanjiAndGrammarMalformedFilesAreEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, KanjiJSONFile, "][")
	writeFile(t, dir, GrammarJSONFile, "null garbage")

	lib := NewLibrary(dir)
	assert.Empty(t, lib.KanjiItems())
	assert.Empty(t, lib.GrammarPoints())
}
