package models

import (
	"fmt"
	"time"
)

type QuizType string

const (
	QuizCategory  QuizType = "category"
	QuizRandom    QuizType = "random"
	QuizDifficult QuizType = "difficult"
	QuizFinal     QuizType = "final"
)

type QuizResult struct {
	QuizType     QuizType       `json:"quizType"`
	Category     string         `json:"category"`
	CategoryName string         `json:"categoryName"`
	Score        int            `json:"score"`
	Total        int            `json:"total"`
	Percentage   int            `json:"percentage"`
	Passed       bool           `json:"passed"`
	PassScore    int            `json:"passScore"`
	Difficulty   Difficulty     `json:"difficulty"`
	Language     Direction      `json:"language"`
	UserAnswers  []AnswerRecord `json:"userAnswers"`
	CompletedAt  time.Time      `json:"completedAt"`
	TimeSpent    time.Duration  `json:"timeSpent"`
}

// ResultKey is the history bucket a result is stored under.
func ResultKey(quizType QuizType, category string) string {
	return fmt.Sprintf("%s_%s", quizType, category)
}

func (r QuizResult) Key() string {
	return ResultKey(r.QuizType, r.Category)
}

type QuizStats struct {
	TotalQuizzes        int `json:"totalQuizzes"`
	AverageScorePercent int `json:"averageScorePercent"`
	CompletedCategories int `json:"completedCategories"`
	TotalCategories     int `json:"totalCategories"`
}

type WordAccuracy struct {
	English  string `json:"english"`
	Attempts int    `json:"attempts"`
	Correct  int    `json:"correct"`
}

func (w WordAccuracy) Ratio() float64 {
	if w.Attempts == 0 {
		return 0
	}
	return float64(w.Correct) / float64(w.Attempts)
}
