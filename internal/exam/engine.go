// Package exam composes mock N5 exams: mixed multiple-choice questions
// over vocabulary, kanji and grammar with distractors drawn from
// sibling items of the same domain.
package exam

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/example/n5bot/pkg/models"
)

// ContentProvider supplies the raw content the engine builds questions
// from. Implemented by content.Library.
type ContentProvider interface {
	VocabItems() []models.VocabItem
	KanjiItems() []models.KanjiItem
	GrammarPoints() []models.GrammarPoint
}

// Each question has one correct answer and this many distractors
const distractorCount = 3

// Engine generates exams from a content provider. All randomness
// (distractor sampling, choice and pool shuffling, example selection)
// comes from the injected source, so a seeded source makes generation
// deterministic.
type Engine struct {
	content ContentProvider
	rnd     *rand.Rand
}

// New creates an exam engine
func New(content ContentProvider, rnd *rand.Rand) *Engine {
	return &Engine{content: content, rnd: rnd}
}

// GenerateExam builds a shuffled, mixed-domain exam of at most
// totalQuestions questions. Domains that cannot produce questions
// simply contribute none; an empty pool yields an empty exam.
func (e *Engine) GenerateExam(totalQuestions int) []models.Question {
	vocab := e.buildVocabQuestions(1)
	kanji := e.buildKanjiQuestions(1 + len(vocab))
	grammar := e.buildGrammarQuestions(1 + len(vocab) + len(kanji))

	pool := make([]models.Question, 0, len(vocab)+len(kanji)+len(grammar))
	pool = append(pool, vocab...)
	pool = append(pool, kanji...)
	pool = append(pool, grammar...)

	e.rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) == 0 {
		return nil
	}
	if totalQuestions < len(pool) {
		if totalQuestions < 0 {
			totalQuestions = 0
		}
		pool = pool[:totalQuestions]
	}
	return pool
}

// buildVocabQuestions asks for the Spanish meaning of a word. The
// answer pool is every meaning in the list, duplicates included.
func (e *Engine) buildVocabQuestions(startID int) []models.Question {
	items := e.content.VocabItems()
	if len(items) < 2 {
		return nil
	}

	allMeanings := make([]string, 0, len(items))
	for _, item := range items {
		allMeanings = append(allMeanings, item.MeaningES)
	}

	var questions []models.Question
	qID := startID
	for _, item := range items {
		choices, correctIndex, ok := e.buildChoices(allMeanings, item.MeaningES)
		if !ok {
			continue
		}
		questions = append(questions, models.Question{
			ID:           qID,
			Text:         fmt.Sprintf("【単語】日本語の意味を選んでください：%s（よみ：%s）", item.WordJP, item.Reading),
			Choices:      choices,
			CorrectIndex: correctIndex,
			SourceType:   models.ItemTypeVocab,
			SourceItemID: item.ID,
		})
		qID++
	}
	return questions
}

// buildKanjiQuestions asks for the first listed meaning of a kanji.
// Characters without meanings neither produce questions nor feed the
// distractor pool.
func (e *Engine) buildKanjiQuestions(startID int) []models.Question {
	items := e.content.KanjiItems()
	if len(items) < 2 {
		return nil
	}

	var allMeanings []string
	for _, item := range items {
		if len(item.MeaningsES) > 0 {
			allMeanings = append(allMeanings, item.MeaningsES[0])
		}
	}

	var questions []models.Question
	qID := startID
	for _, item := range items {
		if len(item.MeaningsES) == 0 {
			continue
		}
		choices, correctIndex, ok := e.buildChoices(allMeanings, item.MeaningsES[0])
		if !ok {
			continue
		}
		questions = append(questions, models.Question{
			ID:           qID,
			Text:         fmt.Sprintf("【漢字】この漢字の意味を選んでください：%s（よみ：%s）", item.Kanji, strings.Join(item.Readings, ", ")),
			Choices:      choices,
			CorrectIndex: correctIndex,
			SourceType:   models.ItemTypeKanji,
			SourceItemID: item.ID,
		})
		qID++
	}
	return questions
}

// buildGrammarQuestions shows one random example sentence and asks
// which grammar point it uses. Points without examples are skipped,
// but every title still feeds the distractor pool.
func (e *Engine) buildGrammarQuestions(startID int) []models.Question {
	points := e.content.GrammarPoints()
	if len(points) < 2 {
		return nil
	}

	allTitles := make([]string, 0, len(points))
	for _, p := range points {
		allTitles = append(allTitles, p.TitleJP)
	}

	var questions []models.Question
	qID := startID
	for _, p := range points {
		if len(p.Examples) == 0 {
			continue
		}
		example := p.Examples[e.rnd.Intn(len(p.Examples))]

		choices, correctIndex, ok := e.buildChoices(allTitles, p.TitleJP)
		if !ok {
			continue
		}
		questions = append(questions, models.Question{
			ID:           qID,
			Text:         fmt.Sprintf("【文法】この文で使われている助詞を選んでください：%s", example),
			Choices:      choices,
			CorrectIndex: correctIndex,
			SourceType:   models.ItemTypeGrammar,
			SourceItemID: p.ID,
		})
		qID++
	}
	return questions
}

// buildChoices samples three distractors for the correct answer from
// the domain's answer pool and shuffles all four choices. The pool is
// filtered by value, so an answer string shared by several items is
// excluded wherever it occurs. Returns ok=false when fewer than three
// distinct distractors remain.
func (e *Engine) buildChoices(answerPool []string, correct string) ([]string, int, bool) {
	distractorPool := make([]string, 0, len(answerPool))
	for _, answer := range answerPool {
		if answer != correct {
			distractorPool = append(distractorPool, answer)
		}
	}
	if len(distractorPool) < distractorCount {
		return nil, 0, false
	}

	// Sample without replacement via a partial Fisher-Yates over a copy
	pool := append([]string(nil), distractorPool...)
	choices := make([]string, 0, distractorCount+1)
	for i := 0; i < distractorCount; i++ {
		j := i + e.rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		choices = append(choices, pool[i])
	}
	choices = append(choices, correct)

	e.rnd.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	correctIndex := -1
	for i, c := range choices {
		if c == correct {
			correctIndex = i
			break
		}
	}
	return choices, correctIndex, true
}
