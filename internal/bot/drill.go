package bot

import (
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/n5bot/internal/content"
	"github.com/example/n5bot/internal/storage"
	"github.com/example/n5bot/pkg/models"
)

// drillSession tracks a kana flashcard run: the learner sees a glyph
// and types its romaji reading
type drillSession struct {
	script content.Script
	chars  []content.KanaChar
	index  int // position of the current card in chars
}

func (b *Bot) startDrill(chatID int64, userID int64, katakana bool) {
	script := content.Hiragana
	if katakana {
		script = content.Katakana
	}

	delete(b.examSessions, chatID)
	delete(b.studySessions, chatID)
	b.drillSessions[chatID] = &drillSession{
		script: script,
		chars:  script.Chars(),
	}

	label := "ひらがな"
	if katakana {
		label = "カタカナ"
	}
	settings := storage.LoadSettings(b.settingsPath)
	b.send(chatID, helpText(settings.HelpLanguage,
		fmt.Sprintf("%s練習を始めます。表示された文字のローマ字を入力してください。", label),
		"escribe el romaji del carácter mostrado", "type the romaji of the shown character"))
	b.nextDrillCard(chatID)
}

// nextDrillCard picks a random character and shows it
func (b *Bot) nextDrillCard(chatID int64) {
	session, ok := b.drillSessions[chatID]
	if !ok {
		return
	}
	session.index = b.rnd.Intn(len(session.chars))

	msg := tgbotapi.NewMessage(chatID, session.chars[session.index].Glyph)
	msg.ReplyMarkup = createKeyboard([][]MenuButton{
		{{Text: "スキップ »", CallbackData: callbackDrillNext}},
		{{Text: "« メニュー", CallbackData: callbackMenu}},
	})
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("bot: failed to send drill card: %v", err)
	}
}

// handleDrillAnswer checks a typed romaji reading and updates the kana
// progress under the script's explicit namespace
func (b *Bot) handleDrillAnswer(chatID int64, userID int64, answer string) {
	session, ok := b.drillSessions[chatID]
	if !ok {
		return
	}

	char := session.chars[session.index]
	correct := strings.EqualFold(strings.TrimSpace(answer), char.Romaji)

	if correct {
		b.send(chatID, fmt.Sprintf("⭕ 正解です！（%s）", char.Romaji))
	} else {
		b.send(chatID, fmt.Sprintf("❌ ちがいます… 正しい答え：%s", char.Romaji))
	}

	itemID := session.script.ItemID(session.index)
	if err := b.tracker.Update(userID, models.ItemTypeKana, itemID, correct, time.Time{}); err != nil {
		log.Printf("bot: failed to update kana progress for %d: %v", itemID, err)
	}

	b.nextDrillCard(chatID)
}
