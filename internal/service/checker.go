package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/DanRulev/vocaquiz/internal/models"
	"github.com/agext/levenshtein"
)

const (
	textSimilarityThreshold     = 0.80
	sentenceSimilarityThreshold = 0.70
	fuzzyMinLength              = 6
)

var (
	nonWordChars        = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	sentencePunctuation = regexp.MustCompile(`[.,!?;:]`)
)

type CheckResult struct {
	IsCorrect     bool
	CorrectAnswer string
}

// CheckAnswer grades a user answer against the question's canonical answer.
func CheckAnswer(userAnswer string, q models.Question) (CheckResult, error) {
	if strings.TrimSpace(userAnswer) == "" {
		return CheckResult{}, ErrEmptyAnswer
	}

	res := CheckResult{CorrectAnswer: q.CorrectAnswer}

	switch q.Type {
	case models.QuestionMultipleChoice:
		res.IsCorrect = normalizeAnswer(userAnswer) == normalizeAnswer(q.CorrectAnswer)
	case models.QuestionSentenceTranslation:
		res.IsCorrect = Similarity(normalizeSentence(userAnswer), normalizeSentence(q.CorrectAnswer)) > sentenceSimilarityThreshold
	default:
		res.IsCorrect = checkText(userAnswer, q.CorrectAnswer)
	}

	return res, nil
}

func checkText(userAnswer, correctAnswer string) bool {
	user := normalizeAnswer(userAnswer)
	correct := normalizeAnswer(correctAnswer)

	if user == correct {
		return true
	}

	if strings.Contains(correctAnswer, "/") {
		for _, alt := range strings.Split(correctAnswer, "/") {
			if normalizeAnswer(alt) == user {
				return true
			}
		}
	}

	if utf8.RuneCountInString(correct) > fuzzyMinLength {
		return Similarity(user, correct) > textSimilarityThreshold
	}

	return false
}

// Similarity is (maxLen - editDistance) / maxLen over runes; two empty strings are identical.
func Similarity(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1
	}

	distance := levenshtein.Distance(a, b, nil)
	return float64(maxLen-distance) / float64(maxLen)
}

func normalizeAnswer(s string) string {
	s = nonWordChars.ReplaceAllString(strings.ToLower(s), "")
	return strings.Join(strings.Fields(s), " ")
}

// normalizeSentence keeps apostrophes so contractions survive.
func normalizeSentence(s string) string {
	s = sentencePunctuation.ReplaceAllString(strings.ToLower(s), "")
	return strings.Join(strings.Fields(s), " ")
}
