package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/n5bot/internal/content"
	"github.com/example/n5bot/pkg/models"
)

func TestImportVocabularyFromCSV(t *testing.T) {
	dir := t.TempDir()
	lib := content.NewLibrary(dir)
	require.NoError(t, lib.SaveVocabItems([]models.VocabItem{
		{ID: 5, WordJP: "犬", Reading: "いぬ", MeaningES: "can"},
	}))

	src := filepath.Join(dir, "import.csv")
	body := "word_jp,reading,meaning_es,pos,tags\n" +
		"犬,いぬ,perro,noun,animal\n" +
		"猫,ねこ,gato,noun,animal;n5\n" +
		",,sin palabra,,\n"
	require.NoError(t, os.WriteFile(src, []byte(body), 0644))

	result, err := ImportVocabulary(lib, DefaultImportConfig(src))
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)

	items := lib.VocabItems()
	require.Len(t, items, 2)
	assert.Equal(t, 5, items[0].ID, "updated word keeps its id")
	assert.Equal(t, "perro", items[0].MeaningES)
	assert.Equal(t, 6, items[1].ID, "new word gets the next free id")
	assert.Equal(t, []string{"animal", "n5"}, items[1].Tags)
}

func TestColumnToIndex(t *testing.T) {
	assert.Equal(t, 0, columnToIndex("A"))
	assert.Equal(t, 4, columnToIndex("E"))
	assert.Equal(t, 26, columnToIndex("AA"))
	assert.Equal(t, -1, columnToIndex(""))
	assert.Equal(t, -1, columnToIndex("1"))
}
