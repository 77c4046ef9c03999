package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DanRulev/vocaquiz/internal/models"
	"github.com/DanRulev/vocaquiz/internal/storage/cache"
	"github.com/DanRulev/vocaquiz/internal/vocabulary"
	"go.uber.org/zap"
)

type storageKey struct {
	userID int64
	key    string
}

// memStorage is an in-memory StorageRI.
type memStorage struct {
	mu         sync.Mutex
	values     map[storageKey]string
	failWrites bool
	// failReads makes that many upcoming reads fail.
	failReads int
}

func newMemStorage() *memStorage {
	return &memStorage{values: make(map[storageKey]string)}
}

func (m *memStorage) Value(_ context.Context, userID int64, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failReads > 0 {
		m.failReads--
		return "", false, errors.New("connection reset")
	}
	v, ok := m.values[storageKey{userID, key}]
	return v, ok, nil
}

func (m *memStorage) SetValue(_ context.Context, userID int64, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errors.New("quota exceeded")
	}
	m.values[storageKey{userID, key}] = value
	return nil
}

func (m *memStorage) failNextReads(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failReads = n
}

func (m *memStorage) put(userID int64, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[storageKey{userID, key}] = value
}

// stubRand always samples f and shuffles deterministically.
type stubRand struct {
	f float64
}

func (s stubRand) Float64() float64 { return s.f }
func (s stubRand) IntN(int) int     { return 0 }

type recordingNotifier struct {
	mu       sync.Mutex
	messages []models.Severity
}

func (n *recordingNotifier) Notify(_ int64, _ string, severity models.Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, severity)
}

func nouns(prefix string, n int) []models.Word {
	words := make([]models.Word, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, models.Word{
			English:    fmt.Sprintf("%s-en-%02d", prefix, i),
			Polish:     fmt.Sprintf("%s-pl-%02d", prefix, i),
			Type:       "noun",
			Difficulty: []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard}[i%3],
		})
	}
	return words
}

// testVocabulary has 15 animals and 10 foods.
func testVocabulary() *vocabulary.Vocabulary {
	return vocabulary.New(map[string]models.Category{
		"animals": {Name: "Animals", Icon: "🐾", Words: nouns("animal", 15)},
		"food":    {Name: "Food", Icon: "🍎", Words: nouns("food", 10)},
	})
}

type testEnv struct {
	svc      *Service
	storage  *memStorage
	notifier *recordingNotifier
	clock    *time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	storage := newMemStorage()
	notifier := &recordingNotifier{}
	svc := InitServices(testVocabulary(), storage, Stores{
		Sessions: cache.NewStore[*Session](),
		Cursors:  cache.NewStore[models.FlashcardCursor](),
	}, notifier, NewRand(7), zap.NewNop())

	clock := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	env := &testEnv{svc: svc, storage: storage, notifier: notifier, clock: &clock}
	svc.QuizS.now = func() time.Time { return *env.clock }

	return env
}

// multipleChoiceOnly makes every generated question multiple-choice en-pl.
func (e *testEnv) multipleChoiceOnly() {
	e.svc.QuizS.generator = NewGenerator(e.svc.QuizS.vocab, stubRand{f: 0})
}

func (e *testEnv) advance(d time.Duration) {
	*e.clock = e.clock.Add(d)
}

// answerAll answers every question, the first `correct` of them correctly.
func answerAll(t *testing.T, e *testEnv, userID int64, correct int) *models.QuizResult {
	t.Helper()
	ctx := context.Background()

	for i := 0; ; i++ {
		progress, err := e.svc.CurrentQuestion(ctx, userID)
		if err != nil {
			t.Fatalf("current question: %v", err)
		}

		answer := "definitely wrong answer"
		if i < correct {
			answer = progress.Question.CorrectAnswer
		}
		if _, err := e.svc.SubmitAnswer(ctx, userID, answer); err != nil {
			t.Fatalf("submit: %v", err)
		}

		e.advance(time.Second)
		_, result, err := e.svc.NextQuestion(ctx, userID)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if result != nil {
			return result
		}
	}
}

func resultWithAnswers(quizType models.QuizType, category string, score, total int, passed bool, answers ...models.AnswerRecord) models.QuizResult {
	return models.QuizResult{
		QuizType:    quizType,
		Category:    category,
		Score:       score,
		Total:       total,
		Passed:      passed,
		UserAnswers: answers,
	}
}

func answerFor(w models.Word, correct bool) models.AnswerRecord {
	return models.AnswerRecord{
		Question:  models.Question{Type: models.QuestionTextInput, Word: w, CorrectAnswer: w.Polish},
		IsCorrect: correct,
	}
}
