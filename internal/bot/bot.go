// Package bot is the Telegram front end of the trainer: it drives the
// mock exams, the kana drills, the vocab, kanji and grammar flashcards
// and the progress overview, and feeds every answer into the mastery
// tracker.
package bot

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/n5bot/internal/exam"
	"github.com/example/n5bot/internal/srs"
	"github.com/example/n5bot/internal/storage"
	"github.com/example/n5bot/pkg/models"
)

// Callback data values for the inline menus
const (
	callbackMenu         = "menu"
	callbackExamStart    = "exam_start"
	callbackExamAnswer   = "exam_answer:" // followed by the choice index
	callbackDrillHira    = "drill_hiragana"
	callbackDrillKata    = "drill_katakana"
	callbackDrillNext    = "drill_next"
	callbackStudyVocab   = "study_vocab"
	callbackStudyKanji   = "study_kanji"
	callbackStudyGrammar = "study_grammar"
	callbackStudyNext    = "study_next"
	callbackStats        = "stats"
	callbackSettings     = "settings"
	callbackDifficulty   = "difficulty:" // followed by easy/normal/hard
	callbackHelpLang     = "help_lang:"  // followed by es/en/none
)

// MenuButton represents a button in the menu
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates an inline keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// Bot represents the Telegram trainer application
type Bot struct {
	api          *tgbotapi.BotAPI
	engine       *exam.Engine
	content      exam.ContentProvider
	tracker      *srs.Tracker
	progress     storage.ProgressStore
	sessions     storage.SessionStore
	settingsPath string
	rnd          *rand.Rand

	examSessions  map[int64]*examSession
	drillSessions map[int64]*drillSession
	studySessions map[int64]*studySession
	reminderChat  int64
}

// New creates a new bot instance. The token comes from the
// TELEGRAM_BOT_TOKEN environment variable.
func New(engine *exam.Engine, content exam.ContentProvider, tracker *srs.Tracker,
	progress storage.ProgressStore, sessions storage.SessionStore,
	settingsPath string, rnd *rand.Rand) (*Bot, error) {

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("unable to create bot: %v", err)
	}

	var reminderChat int64
	if raw := os.Getenv("REMINDER_CHAT_ID"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			reminderChat = id
		} else {
			log.Printf("bot: ignoring invalid REMINDER_CHAT_ID %q", raw)
		}
	}

	return &Bot{
		api:           api,
		engine:        engine,
		content:       content,
		tracker:       tracker,
		progress:      progress,
		sessions:      sessions,
		settingsPath:  settingsPath,
		rnd:           rnd,
		examSessions:  make(map[int64]*examSession),
		drillSessions: make(map[int64]*drillSession),
		studySessions: make(map[int64]*studySession),
		reminderChat:  reminderChat,
	}, nil
}

// Start runs the update loop until the updates channel is closed
func (b *Bot) Start() error {
	log.Printf("Authorized on account %s", b.api.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := b.api.GetUpdatesChan(updateConfig)
	for update := range updates {
		b.handleUpdate(update)
	}
	return nil
}

// Stop shuts down the update loop
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
	log.Println("Bot stopped")
}

// SendStudyReminder implements the scheduler.Notifier interface
func (b *Bot) SendStudyReminder(weakItems int) error {
	if b.reminderChat == 0 {
		return nil // reminders not configured
	}
	text := fmt.Sprintf("今日の復習：弱いアイテムが%d個あります。/exam か /kana でどうぞ！", weakItems)
	_, err := b.api.Send(tgbotapi.NewMessage(b.reminderChat, text))
	return err
}

// handleUpdate dispatches one incoming update
func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(update.Message)
	case update.Message != nil:
		b.handleText(update.Message)
	}
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start", "menu", "help":
		b.showMainMenu(message.Chat.ID)
	case "exam":
		b.startExam(message.Chat.ID, message.From.ID)
	case "kana":
		b.startDrill(message.Chat.ID, message.From.ID, false)
	case "katakana":
		b.startDrill(message.Chat.ID, message.From.ID, true)
	case "vocab":
		b.startStudy(message.Chat.ID, models.ItemTypeVocab)
	case "kanji":
		b.startStudy(message.Chat.ID, models.ItemTypeKanji)
	case "grammar":
		b.startStudy(message.Chat.ID, models.ItemTypeGrammar)
	case "stats":
		b.showStats(message.Chat.ID)
	default:
		b.send(message.Chat.ID, "知らないコマンドです。/menu でメニューを開いてください。")
	}
}

// handleText routes free-form text: during a kana drill it is the
// learner's romaji answer, during a study run the flashcard answer,
// otherwise we just point at the menu
func (b *Bot) handleText(message *tgbotapi.Message) {
	if _, ok := b.drillSessions[message.Chat.ID]; ok {
		b.handleDrillAnswer(message.Chat.ID, message.From.ID, message.Text)
		return
	}
	if _, ok := b.studySessions[message.Chat.ID]; ok {
		b.handleStudyAnswer(message.Chat.ID, message.From.ID, message.Text)
		return
	}
	b.showMainMenu(message.Chat.ID)
}

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	// Acknowledge the button press so the client stops the spinner
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		log.Printf("bot: failed to answer callback: %v", err)
	}

	chatID := callback.Message.Chat.ID
	userID := callback.From.ID
	data := callback.Data

	switch {
	case data == callbackMenu:
		b.showMainMenu(chatID)
	case data == callbackExamStart:
		b.startExam(chatID, userID)
	case strings.HasPrefix(data, callbackExamAnswer):
		b.handleExamAnswer(chatID, userID, strings.TrimPrefix(data, callbackExamAnswer))
	case data == callbackDrillHira:
		b.startDrill(chatID, userID, false)
	case data == callbackDrillKata:
		b.startDrill(chatID, userID, true)
	case data == callbackDrillNext:
		b.nextDrillCard(chatID)
	case data == callbackStudyVocab:
		b.startStudy(chatID, models.ItemTypeVocab)
	case data == callbackStudyKanji:
		b.startStudy(chatID, models.ItemTypeKanji)
	case data == callbackStudyGrammar:
		b.startStudy(chatID, models.ItemTypeGrammar)
	case data == callbackStudyNext:
		b.nextStudyCard(chatID)
	case data == callbackStats:
		b.showStats(chatID)
	case data == callbackSettings:
		b.showSettings(chatID)
	case strings.HasPrefix(data, callbackDifficulty):
		b.setDifficulty(chatID, strings.TrimPrefix(data, callbackDifficulty))
	case strings.HasPrefix(data, callbackHelpLang):
		b.setHelpLanguage(chatID, strings.TrimPrefix(data, callbackHelpLang))
	default:
		log.Printf("bot: unknown callback data %q", data)
	}
}

func (b *Bot) showMainMenu(chatID int64) {
	buttons := [][]MenuButton{
		{{Text: "📝 模擬テスト", CallbackData: callbackExamStart}},
		{
			{Text: "あ ひらがな", CallbackData: callbackDrillHira},
			{Text: "ア カタカナ", CallbackData: callbackDrillKata},
		},
		{
			{Text: "単語", CallbackData: callbackStudyVocab},
			{Text: "漢字", CallbackData: callbackStudyKanji},
			{Text: "文法", CallbackData: callbackStudyGrammar},
		},
		{
			{Text: "📊 進捗", CallbackData: callbackStats},
			{Text: "⚙ 設定", CallbackData: callbackSettings},
		},
	}

	msg := tgbotapi.NewMessage(chatID, "N5トレーナーへようこそ！何を勉強しますか？")
	msg.ReplyMarkup = createKeyboard(buttons)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("bot: failed to send menu: %v", err)
	}
}

func (b *Bot) showSettings(chatID int64) {
	settings := storage.LoadSettings(b.settingsPath)
	buttons := [][]MenuButton{
		{
			{Text: "やさしい (10問)", CallbackData: callbackDifficulty + models.DifficultyEasy},
			{Text: "ふつう (20問)", CallbackData: callbackDifficulty + models.DifficultyNormal},
			{Text: "むずかしい (30問)", CallbackData: callbackDifficulty + models.DifficultyHard},
		},
		{
			{Text: "ヒント: español", CallbackData: callbackHelpLang + models.HelpLanguageSpanish},
			{Text: "ヒント: English", CallbackData: callbackHelpLang + models.HelpLanguageEnglish},
			{Text: "ヒントなし", CallbackData: callbackHelpLang + models.HelpLanguageNone},
		},
		{{Text: "« メニュー", CallbackData: callbackMenu}},
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("現在の難易度：%s（%d問）\nヒント言語：%s",
		settings.Difficulty, settings.ExamSize(), settings.HelpLanguage))
	msg.ReplyMarkup = createKeyboard(buttons)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("bot: failed to send settings: %v", err)
	}
}

func (b *Bot) setHelpLanguage(chatID int64, lang string) {
	switch lang {
	case models.HelpLanguageSpanish, models.HelpLanguageEnglish, models.HelpLanguageNone:
	default:
		return
	}

	settings := storage.LoadSettings(b.settingsPath)
	settings.HelpLanguage = lang
	if err := storage.SaveSettings(b.settingsPath, settings); err != nil {
		log.Printf("bot: failed to save settings: %v", err)
		b.send(chatID, "設定を保存できませんでした。")
		return
	}
	b.send(chatID, fmt.Sprintf("ヒント言語を「%s」にしました。", lang))
}

func (b *Bot) setDifficulty(chatID int64, difficulty string) {
	switch difficulty {
	case models.DifficultyEasy, models.DifficultyNormal, models.DifficultyHard:
	default:
		return
	}

	settings := storage.LoadSettings(b.settingsPath)
	settings.Difficulty = difficulty
	if err := storage.SaveSettings(b.settingsPath, settings); err != nil {
		log.Printf("bot: failed to save settings: %v", err)
		b.send(chatID, "設定を保存できませんでした。")
		return
	}
	b.send(chatID, fmt.Sprintf("難易度を「%s」にしました（%d問）。", difficulty, settings.ExamSize()))
}

func (b *Bot) showStats(chatID int64) {
	stats := srs.Summarize(b.progress.LoadAll())

	var sb strings.Builder
	sb.WriteString("📊 学習の進捗\n\n")
	if len(stats) == 0 {
		sb.WriteString("まだ記録がありません。まずは練習しましょう！\n")
	}

	names := []struct {
		itemType models.ItemType
		label    string
	}{
		{models.ItemTypeKana, "かな"},
		{models.ItemTypeVocab, "単語"},
		{models.ItemTypeKanji, "漢字"},
		{models.ItemTypeGrammar, "文法"},
	}
	for _, n := range names {
		s, ok := stats[n.itemType]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s：%d項目（レベル別 %d/%d/%d/%d/%d）正解%d・不正解%d\n",
			n.label, s.Total, s.Levels[0], s.Levels[1], s.Levels[2], s.Levels[3], s.Levels[4],
			s.RightCount, s.WrongCount))
	}

	sessions := b.sessions.LoadAll()
	if len(sessions) > 0 {
		sb.WriteString("\n最近の模擬テスト：\n")
		start := len(sessions) - 5
		if start < 0 {
			start = 0
		}
		for _, s := range sessions[start:] {
			sb.WriteString(fmt.Sprintf("・%s　%d/%d 正解\n",
				s.StartTime.Format("2006-01-02 15:04"), s.CorrectCount, s.TotalQuestions))
		}
	}

	b.send(chatID, sb.String())
}

// helpText appends a translation hint to a Japanese prompt according to
// the configured help language
func helpText(lang, jp, es, en string) string {
	switch lang {
	case models.HelpLanguageEnglish:
		if en != "" {
			return fmt.Sprintf("%s (%s)", jp, en)
		}
	case models.HelpLanguageNone:
	default:
		if es != "" {
			return fmt.Sprintf("%s (%s)", jp, es)
		}
	}
	return jp
}

// send delivers a plain text message, logging delivery failures
func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("bot: failed to send message: %v", err)
	}
}
