package models

// Difficulty levels controlling exam size
const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)

// Help languages controlling the translation hints shown next to
// Japanese prompts
const (
	HelpLanguageSpanish = "es"
	HelpLanguageEnglish = "en"
	HelpLanguageNone    = "none"
)

// Settings holds the learner's preferences
type Settings struct {
	HelpLanguage string `json:"help_language"` // "es", "en" or "none"
	Difficulty   string `json:"difficulty"`    // easy/normal/hard
}

// DefaultSettings returns the settings used when nothing is persisted yet
func DefaultSettings() Settings {
	return Settings{
		HelpLanguage: HelpLanguageSpanish,
		Difficulty:   DifficultyNormal,
	}
}

// ExamSize maps the configured difficulty to the number of questions
// requested from the exam engine
func (s Settings) ExamSize() int {
	switch s.Difficulty {
	case DifficultyEasy:
		return 10
	case DifficultyHard:
		return 30
	default:
		return 20
	}
}
