package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/vocaquiz/internal/models"
	"go.uber.org/zap"
)

const (
	categoryQuestions = 15
	categoryPassScore = 12

	randomQuestions = 20
	randomPassShare = 0.7

	difficultQuestions   = 15
	difficultPassShare   = 0.6
	difficultMinWords    = 5
	difficultMinAttempts = 3
	difficultMaxAccuracy = 0.6

	finalQuestions   = 50
	finalPassScore   = 42
	finalTimeLimit   = time.Hour
	finalUnlockShare = 0.75
	finalEasyShare   = 0.4
	finalMediumShare = 0.4
)

type SessionStore interface {
	Set(userID int64, session *Session)
	Get(userID int64) (*Session, bool)
	Delete(userID int64)
}

type quizPlan struct {
	quizType     models.QuizType
	category     string
	categoryName string
	candidates   []models.Word
	count        int
	passScore    func(n int) int
	timeLimit    time.Duration
}

type QuizS struct {
	vocab     VocabularyI
	generator *Generator
	results   *ResultsS
	settings  *SettingsS
	sessions  SessionStore
	notifier  Notifier
	rnd       Rand
	now       func() time.Time
	log       *zap.Logger
}

func NewQuizService(vocab VocabularyI, results *ResultsS, settings *SettingsS, sessions SessionStore, notifier Notifier, rnd Rand, log *zap.Logger) *QuizS {
	return &QuizS{
		vocab:     vocab,
		generator: NewGenerator(vocab, rnd),
		results:   results,
		settings:  settings,
		sessions:  sessions,
		notifier:  notifier,
		rnd:       rnd,
		now:       time.Now,
		log:       log,
	}
}

func (q *QuizS) Categories() []models.Category {
	return q.vocab.Categories()
}

// StartQuiz builds a new session for the user, replacing any unfinished one.
// When the data cannot back the quiz an *InsufficientDataError is returned and nothing changes.
func (q *QuizS) StartQuiz(ctx context.Context, userID int64, quizType models.QuizType, category string) (models.QuizProgress, error) {
	p, err := q.plan(ctx, userID, quizType, category)
	if err != nil {
		q.log.Info("quiz not started", zap.Int64("user_id", userID), zap.String("type", string(quizType)), zap.Error(err))
		return models.QuizProgress{}, err
	}

	settings := q.settings.Settings(ctx, userID)

	questions := q.generator.Generate(p.candidates, p.count, settings.Difficulty, settings.Language)
	if len(questions) == 0 {
		return models.QuizProgress{}, &InsufficientDataError{QuizType: quizType, Reason: "no questions could be generated"}
	}

	now := q.now()
	session := newSession(p, questions, settings, now)
	q.sessions.Set(userID, session)

	q.log.Debug("quiz started",
		zap.Int64("user_id", userID),
		zap.String("session_id", session.ID),
		zap.String("type", string(quizType)),
		zap.String("category", p.category),
		zap.Int("questions", len(questions)),
	)

	return session.Progress(now), nil
}

func (q *QuizS) CurrentQuestion(ctx context.Context, userID int64) (models.QuizProgress, error) {
	session, ok := q.sessions.Get(userID)
	if !ok {
		return models.QuizProgress{}, ErrNoSession
	}
	return session.Progress(q.now()), nil
}

// AwaitingAnswer reports whether the user has a question open for input.
func (q *QuizS) AwaitingAnswer(userID int64) bool {
	session, ok := q.sessions.Get(userID)
	return ok && session.State == StateInProgress
}

func (q *QuizS) AbandonQuiz(userID int64) {
	q.sessions.Delete(userID)
}

func (q *QuizS) SubmitAnswer(ctx context.Context, userID int64, answer string) (models.Feedback, error) {
	session, ok := q.sessions.Get(userID)
	if !ok {
		return models.Feedback{}, ErrNoSession
	}

	now := q.now()
	if session.Expired(now) {
		session.Finish()
		result := q.finish(ctx, userID, session, now)
		return models.Feedback{
			Score:    result.Score,
			Index:    session.CurrentIndex,
			Total:    result.Total,
			Last:     true,
			TimedOut: true,
			Result:   &result,
		}, nil
	}

	record, err := session.Submit(answer, now)
	if err != nil {
		return models.Feedback{}, err
	}

	return models.Feedback{
		Record: record,
		Score:  session.Score,
		Index:  session.CurrentIndex,
		Total:  session.TotalQuestions(),
		Last:   session.CurrentIndex == session.TotalQuestions()-1,
	}, nil
}

// SubmitChoice answers a multiple-choice question by option index.
// Choices offered by another session or for another question are ErrInvalidState.
func (q *QuizS) SubmitChoice(ctx context.Context, userID int64, choice models.Choice) (models.Feedback, error) {
	session, ok := q.sessions.Get(userID)
	if !ok {
		return models.Feedback{}, ErrNoSession
	}
	if choice.SessionID != session.ID || choice.Question != session.CurrentIndex {
		return models.Feedback{}, ErrInvalidState
	}

	current, err := session.Current()
	if err != nil {
		return models.Feedback{}, err
	}
	if choice.Option < 0 || choice.Option >= len(current.Options) {
		return models.Feedback{}, ErrUnknownOption
	}

	return q.SubmitAnswer(ctx, userID, current.Options[choice.Option])
}

// NextQuestion moves on; after the last question it returns the recorded result instead.
func (q *QuizS) NextQuestion(ctx context.Context, userID int64) (models.QuizProgress, *models.QuizResult, error) {
	session, ok := q.sessions.Get(userID)
	if !ok {
		return models.QuizProgress{}, nil, ErrNoSession
	}

	now := q.now()
	done, err := session.Next(now)
	if err != nil {
		return models.QuizProgress{}, nil, err
	}

	if done {
		result := q.finish(ctx, userID, session, now)
		return models.QuizProgress{}, &result, nil
	}

	return session.Progress(now), nil, nil
}

func (q *QuizS) finish(ctx context.Context, userID int64, session *Session, now time.Time) models.QuizResult {
	result := session.Result(now)
	q.sessions.Delete(userID)

	if err := q.results.Record(ctx, userID, result); err != nil {
		q.log.Error("quiz result lost", zap.Int64("user_id", userID), zap.String("session_id", session.ID), zap.Error(err))
		q.notifier.Notify(userID, "Nie udało się zapisać wyniku quizu.", models.SeverityError)
	}

	q.log.Info("quiz completed",
		zap.Int64("user_id", userID),
		zap.String("session_id", session.ID),
		zap.String("key", result.Key()),
		zap.Int("score", result.Score),
		zap.Int("total", result.Total),
		zap.Bool("passed", result.Passed),
	)

	return result
}

func (q *QuizS) plan(ctx context.Context, userID int64, quizType models.QuizType, category string) (quizPlan, error) {
	switch quizType {
	case models.QuizCategory:
		c, ok := q.vocab.Category(category)
		if !ok {
			return quizPlan{}, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
		}
		if len(c.Words) == 0 {
			return quizPlan{}, &InsufficientDataError{QuizType: quizType, Reason: "category has no words"}
		}
		return quizPlan{
			quizType:     quizType,
			category:     c.Key,
			categoryName: c.Name,
			candidates:   c.Words,
			count:        categoryQuestions,
			passScore:    func(n int) int { return min(categoryPassScore, n) },
		}, nil

	case models.QuizRandom:
		words := q.vocab.Words()
		if len(words) == 0 {
			return quizPlan{}, &InsufficientDataError{QuizType: quizType, Reason: "vocabulary is empty"}
		}
		return quizPlan{
			quizType:     quizType,
			category:     string(models.QuizRandom),
			categoryName: "Losowe słowa",
			candidates:   words,
			count:        randomQuestions,
			passScore:    shareOf(randomPassShare),
		}, nil

	case models.QuizDifficult:
		words := q.DifficultWords(ctx, userID)
		if len(words) < difficultMinWords {
			return quizPlan{}, &InsufficientDataError{
				QuizType: quizType,
				Reason:   fmt.Sprintf("need at least %d difficult words, have %d", difficultMinWords, len(words)),
			}
		}
		return quizPlan{
			quizType:     quizType,
			category:     string(models.QuizDifficult),
			categoryName: "Trudne słowa",
			candidates:   words,
			count:        difficultQuestions,
			passScore:    shareOf(difficultPassShare),
		}, nil

	case models.QuizFinal:
		total := q.vocab.CategoryCount()
		passed := q.results.PassedCategories(ctx, userID)
		if total == 0 || float64(passed)/float64(total) < finalUnlockShare {
			return quizPlan{}, &InsufficientDataError{
				QuizType: quizType,
				Reason:   fmt.Sprintf("pass at least %d%% of categories first (%d/%d)", int(finalUnlockShare*100), passed, total),
			}
		}
		return quizPlan{
			quizType:     quizType,
			category:     string(models.QuizFinal),
			categoryName: "Egzamin końcowy",
			candidates:   stratify(q.rnd, q.vocab.Words(), finalQuestions),
			count:        finalQuestions,
			passScore:    func(n int) int { return min(finalPassScore, n) },
			timeLimit:    finalTimeLimit,
		}, nil
	}

	return quizPlan{}, &InsufficientDataError{QuizType: quizType, Reason: "unknown quiz type"}
}

// DifficultWords are vocabulary words answered correctly less than 60% of the time over at least 3 attempts.
func (q *QuizS) DifficultWords(ctx context.Context, userID int64) []models.Word {
	accuracy := q.results.WordAccuracy(ctx, userID)

	words := make([]models.Word, 0)
	seen := make(map[string]bool)
	for _, w := range q.vocab.Words() {
		key := strings.ToLower(w.English)
		if seen[key] {
			continue
		}
		seen[key] = true

		a, ok := accuracy[key]
		if ok && a.Attempts >= difficultMinAttempts && a.Ratio() < difficultMaxAccuracy {
			words = append(words, w)
		}
	}

	return words
}

// StatsReport renders aggregate statistics and per-category bests as markdown.
func (q *QuizS) StatsReport(ctx context.Context, userID int64) string {
	stats := q.results.AggregateStats(ctx, userID)
	return quizStatsFormat(stats, q.categoryBests(ctx, userID))
}

func (q *QuizS) categoryBests(ctx context.Context, userID int64) []categoryBest {
	history := q.results.History(ctx, userID)

	bests := make([]categoryBest, 0, q.vocab.CategoryCount())
	for _, c := range q.vocab.Categories() {
		bests = append(bests, categoryBest{
			category: c,
			best:     bestOf(history[models.ResultKey(models.QuizCategory, c.Key)]),
		})
	}
	return bests
}

type categoryBest struct {
	category models.Category
	best     *models.QuizResult
}

func quizStatsFormat(stats models.QuizStats, bests []categoryBest) string {
	var sb strings.Builder

	sb.WriteString("🧠 *Ukończone quizy*: **")
	sb.WriteString(strconv.Itoa(stats.TotalQuizzes))
	sb.WriteString("**\n\n")

	sb.WriteString("📈 *Średni wynik*: **")
	sb.WriteString(strconv.Itoa(stats.AverageScorePercent))
	sb.WriteString("%**\n\n")

	sb.WriteString("✅ *Zaliczone kategorie*: **")
	sb.WriteString(strconv.Itoa(stats.CompletedCategories))
	sb.WriteString("/")
	sb.WriteString(strconv.Itoa(stats.TotalCategories))
	sb.WriteString("**")

	for _, b := range bests {
		sb.WriteString("\n")
		sb.WriteString(b.category.Icon)
		sb.WriteString(" ")
		sb.WriteString(b.category.Name)
		sb.WriteString(": ")
		if b.best == nil {
			sb.WriteString("—")
			continue
		}
		sb.WriteString(fmt.Sprintf("%d/%d", b.best.Score, b.best.Total))
		if b.best.Passed {
			sb.WriteString(" ✅")
		}
	}

	return sb.String()
}

func shareOf(share float64) func(n int) int {
	return func(n int) int {
		// epsilon absorbs float error such as 20*0.7 = 13.999...
		return int(math.Ceil(float64(n)*share - 1e-9))
	}
}

// stratify samples 40% easy, 40% medium and 20% hard words out of count.
func stratify(rnd Rand, words []models.Word, count int) []models.Word {
	groups := map[models.Difficulty][]models.Word{}
	for _, w := range words {
		groups[w.Level()] = append(groups[w.Level()], w)
	}

	easy := int(math.Round(float64(count) * finalEasyShare))
	medium := int(math.Round(float64(count) * finalMediumShare))
	quotas := []struct {
		level models.Difficulty
		n     int
	}{
		{models.DifficultyEasy, easy},
		{models.DifficultyMedium, medium},
		{models.DifficultyHard, count - easy - medium},
	}

	out := make([]models.Word, 0, count)
	for _, quota := range quotas {
		group := groups[quota.level]
		shuffle(rnd, group)
		out = append(out, group[:min(quota.n, len(group))]...)
	}
	shuffle(rnd, out)

	return out
}
