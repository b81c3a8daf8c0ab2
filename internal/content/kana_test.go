package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptItemIDNamespacesDoNotOverlap(t *testing.T) {
	hira := Hiragana.Chars()
	kata := Katakana.Chars()
	require.NotEmpty(t, hira)
	require.Equal(t, len(hira), len(kata), "both charts cover the same syllables")

	seen := map[int]bool{}
	for i := range hira {
		id := Hiragana.ItemID(i)
		assert.False(t, seen[id])
		seen[id] = true
	}
	for i := range kata {
		id := Katakana.ItemID(i)
		assert.False(t, seen[id], "katakana id %d collides with hiragana", id)
		seen[id] = true
	}
}

func TestEveryKanaHasARomajiReading(t *testing.T) {
	for _, script := range []Script{Hiragana, Katakana} {
		for i, c := range script.Chars() {
			assert.NotEmpty(t, c.Romaji, "%s #%d (%s) has no reading", script, i, c.Glyph)
		}
	}
}

func TestRowsFlattenInChartOrder(t *testing.T) {
	chars := Hiragana.Chars()
	assert.Equal(t, "あ", chars[0].Glyph)
	assert.Equal(t, "a", chars[0].Romaji)
	assert.Equal(t, "ん", chars[45].Glyph)

	idx := 0
	for _, row := range Hiragana.Rows() {
		for _, c := range row {
			assert.Equal(t, c, chars[idx])
			idx++
		}
	}
}
