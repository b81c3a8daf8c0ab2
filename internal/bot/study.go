package bot

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/n5bot/internal/storage"
	"github.com/example/n5bot/pkg/models"
)

// studyCard is one flashcard of a domain study run: a prompt the
// learner answers by typing, checked against the accepted spellings
type studyCard struct {
	itemID  int
	prompt  string
	answers []string
	reveal  string // shown in the feedback message
}

// studySession tracks a vocab, kanji or grammar flashcard run
type studySession struct {
	itemType models.ItemType
	hint     string
	cards    []studyCard
	index    int // position of the current card in cards
}

// vocabCards asks for the Spanish meaning of each word
func vocabCards(items []models.VocabItem) []studyCard {
	cards := make([]studyCard, 0, len(items))
	for _, item := range items {
		cards = append(cards, studyCard{
			itemID:  item.ID,
			prompt:  fmt.Sprintf("%s\nよみかた：%s", item.WordJP, item.Reading),
			answers: []string{item.MeaningES},
			reveal:  item.MeaningES,
		})
	}
	return cards
}

// kanjiCards accept any of the character's listed meanings. Characters
// without meanings have no checkable answer and produce no card.
func kanjiCards(items []models.KanjiItem) []studyCard {
	var cards []studyCard
	for _, item := range items {
		if len(item.MeaningsES) == 0 {
			continue
		}
		cards = append(cards, studyCard{
			itemID:  item.ID,
			prompt:  fmt.Sprintf("%s\nよみかた：%s", item.Kanji, strings.Join(item.Readings, ", ")),
			answers: item.MeaningsES,
			reveal:  strings.Join(item.MeaningsES, ", "),
		})
	}
	return cards
}

// grammarCards show the point's description plus one random example
// sentence and ask for the particle. Points without examples still get
// a card built from the description alone.
func grammarCards(points []models.GrammarPoint, rnd *rand.Rand) []studyCard {
	cards := make([]studyCard, 0, len(points))
	for _, p := range points {
		prompt := p.DescriptionSimpleJP
		if len(p.Examples) > 0 {
			prompt = fmt.Sprintf("%s\n例文：%s", p.DescriptionSimpleJP, p.Examples[rnd.Intn(len(p.Examples))])
		}
		cards = append(cards, studyCard{
			itemID:  p.ID,
			prompt:  prompt,
			answers: []string{p.TitleJP},
			reveal:  p.TitleJP,
		})
	}
	return cards
}

// matches checks a typed answer against the card's accepted spellings,
// ignoring surrounding whitespace and letter case
func (c studyCard) matches(answer string) bool {
	answer = strings.TrimSpace(answer)
	for _, accepted := range c.answers {
		if strings.EqualFold(answer, strings.TrimSpace(accepted)) {
			return true
		}
	}
	return false
}

func (b *Bot) startStudy(chatID int64, itemType models.ItemType) {
	settings := storage.LoadSettings(b.settingsPath)

	var session *studySession
	switch itemType {
	case models.ItemTypeVocab:
		session = &studySession{
			itemType: itemType,
			hint: helpText(settings.HelpLanguage, "意味をスペイン語で入力してください",
				"escribe el significado en español", "type the meaning"),
			cards: vocabCards(b.content.VocabItems()),
		}
	case models.ItemTypeKanji:
		session = &studySession{
			itemType: itemType,
			hint: helpText(settings.HelpLanguage, "意味をスペイン語で入力してください",
				"escribe el significado en español", "type the meaning"),
			cards: kanjiCards(b.content.KanjiItems()),
		}
	case models.ItemTypeGrammar:
		session = &studySession{
			itemType: itemType,
			hint: helpText(settings.HelpLanguage, "助詞をひらがなで入力してください",
				"escribe la partícula en hiragana", "type the particle in hiragana"),
			cards: grammarCards(b.content.GrammarPoints(), b.rnd),
		}
	default:
		return
	}

	if len(session.cards) == 0 {
		b.send(chatID, "データがありません。コンテンツファイルを確認してください。")
		return
	}

	delete(b.examSessions, chatID)
	delete(b.drillSessions, chatID)
	b.studySessions[chatID] = session

	b.send(chatID, helpText(settings.HelpLanguage, "カード練習を始めます。",
		"práctica de tarjetas", "flashcard practice"))
	b.nextStudyCard(chatID)
}

// nextStudyCard picks a random card and shows its prompt
func (b *Bot) nextStudyCard(chatID int64) {
	session, ok := b.studySessions[chatID]
	if !ok {
		return
	}
	session.index = b.rnd.Intn(len(session.cards))
	card := session.cards[session.index]

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("%s\n\n%s", card.prompt, session.hint))
	msg.ReplyMarkup = createKeyboard([][]MenuButton{
		{{Text: "スキップ »", CallbackData: callbackStudyNext}},
		{{Text: "« メニュー", CallbackData: callbackMenu}},
	})
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("bot: failed to send study card: %v", err)
	}
}

// handleStudyAnswer checks a typed answer and updates the progress of
// the card's source item under its own domain
func (b *Bot) handleStudyAnswer(chatID int64, userID int64, answer string) {
	session, ok := b.studySessions[chatID]
	if !ok {
		return
	}

	card := session.cards[session.index]
	correct := card.matches(answer)

	if correct {
		b.send(chatID, fmt.Sprintf("⭕ 正解です！（%s）", card.reveal))
	} else {
		b.send(chatID, fmt.Sprintf("❌ ちがいます… 正しい答え：%s", card.reveal))
	}

	if err := b.tracker.Update(userID, session.itemType, card.itemID, correct, time.Time{}); err != nil {
		log.Printf("bot: failed to update %s progress for %d: %v", session.itemType, card.itemID, err)
	}

	b.nextStudyCard(chatID)
}
