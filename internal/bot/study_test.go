package bot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/n5bot/pkg/models"
)

func TestVocabCardsCheckSpanishMeaning(t *testing.T) {
	cards := vocabCards([]models.VocabItem{
		{ID: 3, WordJP: "犬", Reading: "いぬ", MeaningES: "perro"},
	})
	require.Len(t, cards, 1)

	card := cards[0]
	assert.Equal(t, 3, card.itemID)
	assert.Contains(t, card.prompt, "犬")
	assert.Contains(t, card.prompt, "いぬ")
	assert.Equal(t, "perro", card.reveal)

	assert.True(t, card.matches("perro"))
	assert.True(t, card.matches("  Perro "), "case and surrounding spaces must be ignored")
	assert.False(t, card.matches("gato"))
	assert.False(t, card.matches(""))
}

func TestKanjiCardsAcceptAnyListedMeaning(t *testing.T) {
	cards := kanjiCards([]models.KanjiItem{
		{ID: 1, Kanji: "日", Readings: []string{"にち", "ひ"}, MeaningsES: []string{"día", "sol"}},
		{ID: 2, Kanji: "月", Readings: []string{"げつ"}}, // no meanings: no checkable answer
	})
	require.Len(t, cards, 1)

	card := cards[0]
	assert.Equal(t, 1, card.itemID)
	assert.Contains(t, card.prompt, "にち, ひ")
	assert.True(t, card.matches("día"))
	assert.True(t, card.matches("sol"))
	assert.False(t, card.matches("luna"))
}

func TestGrammarCardsAskForTheParticle(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	cards := grammarCards([]models.GrammarPoint{
		{ID: 1, TitleJP: "は", DescriptionSimpleJP: "主題を表す", Examples: []string{"わたしは学生です。"}},
		{ID: 2, TitleJP: "が", DescriptionSimpleJP: "主語を表す"}, // no examples, description only
	}, rnd)
	require.Len(t, cards, 2)

	assert.Contains(t, cards[0].prompt, "わたしは学生です。")
	assert.True(t, cards[0].matches("は"))
	assert.False(t, cards[0].matches("が"))

	assert.Equal(t, "主語を表す", cards[1].prompt)
	assert.True(t, cards[1].matches("が"))
}

func TestHelpTextFollowsConfiguredLanguage(t *testing.T) {
	jp := "意味を入力してください"

	assert.Equal(t, jp+" (escribe el significado)",
		helpText(models.HelpLanguageSpanish, jp, "escribe el significado", "type the meaning"))
	assert.Equal(t, jp+" (type the meaning)",
		helpText(models.HelpLanguageEnglish, jp, "escribe el significado", "type the meaning"))
	assert.Equal(t, jp, helpText(models.HelpLanguageNone, jp, "escribe el significado", "type the meaning"))
	assert.Equal(t, jp+" (escribe el significado)",
		helpText("", jp, "escribe el significado", "type the meaning"),
		"unset language falls back to Spanish hints")
}
