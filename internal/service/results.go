package service

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"github.com/DanRulev/vocaquiz/internal/models"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	KeyQuizResults   = "quiz-results"
	KeyUsedQuestions = "used-questions"

	maxResultsPerKey = 10
)

type ResultsS struct {
	repo  StorageRI
	vocab VocabularyI
	log   *zap.Logger
}

func NewResultsService(repo StorageRI, vocab VocabularyI, log *zap.Logger) *ResultsS {
	return &ResultsS{
		repo:  repo,
		vocab: vocab,
		log:   log,
	}
}

// History returns all retained results per key. Unreadable data is an empty history.
func (r *ResultsS) History(ctx context.Context, userID int64) map[string][]models.QuizResult {
	history, err := r.load(ctx, userID)
	if err != nil {
		r.log.Warn("quiz history unavailable, using empty history", zap.Int64("user_id", userID), zap.Error(err))
	}
	return history
}

// load fails only when storage cannot be reached. Undecodable data is an empty history.
func (r *ResultsS) load(ctx context.Context, userID int64) (map[string][]models.QuizResult, error) {
	history := make(map[string][]models.QuizResult)

	raw, found, err := r.repo.Value(ctx, userID, KeyQuizResults)
	if err != nil {
		return history, &StorageReadError{Key: KeyQuizResults, Err: err}
	}
	if !found {
		return history, nil
	}

	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		r.log.Warn("quiz history corrupted, using empty history", zap.Int64("user_id", userID),
			zap.Error(&StorageReadError{Key: KeyQuizResults, Err: err}))
		return make(map[string][]models.QuizResult), nil
	}

	return history, nil
}

// Record appends a result to its key, dropping the oldest beyond the cap.
// Nothing is written when the stored history cannot be read.
func (r *ResultsS) Record(ctx context.Context, userID int64, result models.QuizResult) error {
	history, err := r.load(ctx, userID)
	if err != nil {
		r.log.Error("quiz history unavailable, result not saved", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}

	key := result.Key()
	history[key] = capResults(append(history[key], result))

	return r.save(ctx, userID, history)
}

func (r *ResultsS) save(ctx context.Context, userID int64, history map[string][]models.QuizResult) error {
	data, err := json.Marshal(history)
	if err != nil {
		return &StorageWriteError{Key: KeyQuizResults, Err: err}
	}

	if err := r.repo.SetValue(ctx, userID, KeyQuizResults, string(data)); err != nil {
		r.log.Error("failed to save quiz history", zap.Int64("user_id", userID), zap.Error(err))
		return &StorageWriteError{Key: KeyQuizResults, Err: err}
	}

	return nil
}

// BestFor returns the highest score among retained results, the earliest on ties.
func (r *ResultsS) BestFor(ctx context.Context, userID int64, quizType models.QuizType, category string) *models.QuizResult {
	return bestOf(r.History(ctx, userID)[models.ResultKey(quizType, category)])
}

func (r *ResultsS) AggregateStats(ctx context.Context, userID int64) models.QuizStats {
	return aggregate(r.History(ctx, userID), r.vocab.CategoryCount())
}

// PassedCategories counts vocabulary categories whose best category-quiz result passed.
func (r *ResultsS) PassedCategories(ctx context.Context, userID int64) int {
	history := r.History(ctx, userID)

	return lo.CountBy(r.vocab.Categories(), func(c models.Category) bool {
		best := bestOf(history[models.ResultKey(models.QuizCategory, c.Key)])
		return best != nil && best.Passed
	})
}

// WordAccuracy aggregates answers per English word across every retained attempt.
func (r *ResultsS) WordAccuracy(ctx context.Context, userID int64) map[string]models.WordAccuracy {
	stats := make(map[string]models.WordAccuracy)

	for _, results := range r.History(ctx, userID) {
		for _, result := range results {
			for _, answer := range result.UserAnswers {
				key := strings.ToLower(answer.Question.Word.English)
				s := stats[key]
				s.English = answer.Question.Word.English
				s.Attempts++
				if answer.IsCorrect {
					s.Correct++
				}
				stats[key] = s
			}
		}
	}

	return stats
}

// Merge overwrites whole keys with the imported lists and keeps the rest.
func (r *ResultsS) Merge(ctx context.Context, userID int64, imported map[string][]models.QuizResult) error {
	history, err := r.load(ctx, userID)
	if err != nil {
		r.log.Error("quiz history unavailable, import skipped", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	for key, results := range imported {
		history[key] = capResults(results)
	}
	return r.save(ctx, userID, history)
}

func capResults(results []models.QuizResult) []models.QuizResult {
	if len(results) <= maxResultsPerKey {
		return results
	}
	return results[len(results)-maxResultsPerKey:]
}

func bestOf(results []models.QuizResult) *models.QuizResult {
	if len(results) == 0 {
		return nil
	}
	best := lo.MaxBy(results, func(a, b models.QuizResult) bool {
		return a.Score > b.Score
	})
	return &best
}

func aggregate(history map[string][]models.QuizResult, totalCategories int) models.QuizStats {
	stats := models.QuizStats{TotalCategories: totalCategories}

	var score, total int
	for key, results := range history {
		best := bestOf(results)
		if best == nil {
			continue
		}

		stats.TotalQuizzes++
		score += best.Score
		total += best.Total

		if strings.HasPrefix(key, string(models.QuizCategory)+"_") && best.Passed {
			stats.CompletedCategories++
		}
	}

	if total > 0 {
		stats.AverageScorePercent = int(math.Round(float64(score) / float64(total) * 100))
	}

	return stats
}
