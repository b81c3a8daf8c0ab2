package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/n5bot/pkg/models"
)

func TestSummarize(t *testing.T) {
	items := []models.UserProgress{
		{UserID: 1, ItemType: models.ItemTypeVocab, ItemID: 1, SRSLevel: 0, WrongCount: 2},
		{UserID: 1, ItemType: models.ItemTypeVocab, ItemID: 2, SRSLevel: 1, RightCount: 1, WrongCount: 1},
		{UserID: 1, ItemType: models.ItemTypeVocab, ItemID: 3, SRSLevel: 4, RightCount: 9},
		{UserID: 1, ItemType: models.ItemTypeKana, ItemID: 12, SRSLevel: 2, RightCount: 3},
	}

	stats := Summarize(items)
	assert.Len(t, stats, 2)

	vocab := stats[models.ItemTypeVocab]
	assert.Equal(t, 3, vocab.Total)
	assert.Equal(t, 2, vocab.Weak())
	assert.Equal(t, 1, vocab.Levels[4])
	assert.Equal(t, 10, vocab.RightCount)
	assert.Equal(t, 3, vocab.WrongCount)

	kana := stats[models.ItemTypeKana]
	assert.Equal(t, 1, kana.Total)
	assert.Equal(t, 0, kana.Weak())
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}
