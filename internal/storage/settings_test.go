package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/n5bot/pkg/models"
)

func TestSettingsDefaultsWhenMissing(t *testing.T) {
	settings := LoadSettings(filepath.Join(t.TempDir(), "settings.json"))
	assert.Equal(t, models.DefaultSettings(), settings)
	assert.Equal(t, 20, settings.ExamSize())
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	in := models.Settings{HelpLanguage: "en", Difficulty: models.DifficultyHard}
	require.NoError(t, SaveSettings(path, in))

	out := LoadSettings(path)
	assert.Equal(t, in, out)
	assert.Equal(t, 30, out.ExamSize())
}

func TestSettingsDefaultsWhenMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("difficulty=hard"), 0644))

	assert.Equal(t, models.DefaultSettings(), LoadSettings(path))
}
