package bot

import (
	"fmt"
	"log"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/n5bot/internal/storage"
	"github.com/example/n5bot/pkg/models"
)

// examSession tracks one learner's ongoing mock exam
type examSession struct {
	questions []models.Question
	current   int
	correct   int
	startTime time.Time
}

// startExam composes a fresh exam and sends the first question
func (b *Bot) startExam(chatID int64, userID int64) {
	settings := storage.LoadSettings(b.settingsPath)
	questions := b.engine.GenerateExam(settings.ExamSize())
	if len(questions) == 0 {
		b.send(chatID, "問題を生成できませんでした。コンテンツファイルを確認してください。")
		return
	}

	delete(b.drillSessions, chatID)
	delete(b.studySessions, chatID)
	b.examSessions[chatID] = &examSession{
		questions: questions,
		startTime: time.Now(),
	}

	b.send(chatID, fmt.Sprintf("模擬テストを始めます！問題数：%d問", len(questions)))
	b.sendCurrentQuestion(chatID)
}

func (b *Bot) sendCurrentQuestion(chatID int64) {
	session, ok := b.examSessions[chatID]
	if !ok || session.current >= len(session.questions) {
		return
	}
	q := session.questions[session.current]

	var buttons [][]MenuButton
	for i, choice := range q.Choices {
		buttons = append(buttons, []MenuButton{{
			Text:         fmt.Sprintf("%d. %s", i+1, choice),
			CallbackData: callbackExamAnswer + strconv.Itoa(i),
		}})
	}

	text := fmt.Sprintf("Q%d/%d\n%s", session.current+1, len(session.questions), q.Text)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createKeyboard(buttons)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("bot: failed to send question: %v", err)
	}
}

// handleExamAnswer scores one answer, records it in the tracker and
// moves on to the next question or the summary
func (b *Bot) handleExamAnswer(chatID int64, userID int64, rawIndex string) {
	session, ok := b.examSessions[chatID]
	if !ok {
		b.send(chatID, "テストは始まっていません。/exam でどうぞ。")
		return
	}

	selected, err := strconv.Atoi(rawIndex)
	if err != nil || selected < 0 || selected >= len(session.questions[session.current].Choices) {
		log.Printf("bot: bad exam answer index %q", rawIndex)
		return
	}

	q := session.questions[session.current]
	correct := selected == q.CorrectIndex
	if correct {
		session.correct++
		b.send(chatID, "⭕ 正解です！")
	} else {
		b.send(chatID, fmt.Sprintf("❌ ちがいます… 正しい答え：%s", q.Choices[q.CorrectIndex]))
	}

	if err := b.tracker.Update(userID, q.SourceType, q.SourceItemID, correct, time.Time{}); err != nil {
		log.Printf("bot: failed to update progress for %s/%d: %v", q.SourceType, q.SourceItemID, err)
	}

	session.current++
	if session.current >= len(session.questions) {
		b.finishExam(chatID)
		return
	}
	b.sendCurrentQuestion(chatID)
}

// finishExam records the session and shows the score
func (b *Bot) finishExam(chatID int64) {
	session, ok := b.examSessions[chatID]
	if !ok {
		return
	}
	delete(b.examSessions, chatID)

	total := len(session.questions)
	endTime := time.Now()

	recorded, err := b.sessions.Append(models.StudySession{
		SessionType:    models.SessionTypeExam,
		StartTime:      session.startTime,
		EndTime:        endTime,
		CorrectCount:   session.correct,
		TotalQuestions: total,
	})
	if err != nil {
		log.Printf("bot: failed to record session: %v", err)
	} else {
		log.Printf("Recorded exam session %d: %d/%d", recorded.ID, session.correct, total)
	}

	elapsed := int(endTime.Sub(session.startTime).Seconds())
	scorePct := session.correct * 100 / total
	b.send(chatID, fmt.Sprintf("テスト終了！\n結果：%d/%d 正解（%d%%）\n時間：%d秒",
		session.correct, total, scorePct, elapsed))
	b.showMainMenu(chatID)
}
