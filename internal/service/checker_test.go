package service

import (
	"testing"

	"github.com/DanRulev/vocaquiz/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAnswer(t *testing.T) {
	t.Parallel()

	question := func(qType models.QuestionType, correct string) models.Question {
		return models.Question{Type: qType, CorrectAnswer: correct}
	}

	tests := []struct {
		name     string
		answer   string
		question models.Question
		want     bool
		wantErr  error
	}{
		{
			name:     "multiple choice exact",
			answer:   "Pies",
			question: question(models.QuestionMultipleChoice, "pies"),
			want:     true,
		},
		{
			name:     "multiple choice wrong option",
			answer:   "kot",
			question: question(models.QuestionMultipleChoice, "pies"),
			want:     false,
		},
		{
			name:     "text ignores punctuation and spacing",
			answer:   "  Dog!  ",
			question: question(models.QuestionTextInput, "dog"),
			want:     true,
		},
		{
			name:     "text keeps polish letters",
			answer:   "Żółw",
			question: question(models.QuestionTextInput, "żółw"),
			want:     true,
		},
		{
			name:     "text matches an alternative",
			answer:   "automobile",
			question: question(models.QuestionTextInput, "car/automobile"),
			want:     true,
		},
		{
			name:     "text typo on six letters is not fuzzy matched",
			answer:   "freind",
			question: question(models.QuestionTextInput, "friend"),
			want:     false,
		},
		{
			name:     "text typo on long word is fuzzy matched",
			answer:   "buterfly",
			question: question(models.QuestionTextInput, "butterfly"),
			want:     true,
		},
		{
			name:     "text below fuzzy threshold",
			answer:   "elefant",
			question: question(models.QuestionTextInput, "elephant"),
			want:     false,
		},
		{
			name:     "sentence keeps contractions",
			answer:   "I don't understand you",
			question: question(models.QuestionSentenceTranslation, "I don't understand you."),
			want:     true,
		},
		{
			name:     "sentence close enough",
			answer:   "the dog is sleping",
			question: question(models.QuestionSentenceTranslation, "The dog is sleeping."),
			want:     true,
		},
		{
			name:     "sentence too different",
			answer:   "I like trains",
			question: question(models.QuestionSentenceTranslation, "The dog is sleeping."),
			want:     false,
		},
		{
			name:     "blank answer rejected",
			answer:   "   ",
			question: question(models.QuestionTextInput, "dog"),
			wantErr:  ErrEmptyAnswer,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := CheckAnswer(tt.answer, tt.question)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.IsCorrect)
			assert.Equal(t, tt.question.CorrectAnswer, got.CorrectAnswer)
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	words := []string{"", "a", "friend", "freind", "żółw", "zolw", "butterfly", "the dog is sleeping"}

	for _, a := range words {
		assert.Equal(t, 1.0, Similarity(a, a), a)
		for _, b := range words {
			assert.Equal(t, Similarity(a, b), Similarity(b, a), "%q vs %q", a, b)
		}
	}

	assert.InDelta(t, 4.0/6.0, Similarity("friend", "freind"), 1e-9)
	assert.InDelta(t, 8.0/9.0, Similarity("butterfly", "buterfly"), 1e-9)
	assert.InDelta(t, 0.25, Similarity("żółw", "zolw"), 1e-9)
	assert.Equal(t, 0.0, Similarity("", "abc"))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello world", normalizeAnswer("  Hello,   World! "))
	assert.Equal(t, "dont", normalizeAnswer("don't"))
	assert.Equal(t, "don't stop", normalizeSentence("Don't   stop!"))
	assert.Equal(t, "snake_case 42", normalizeAnswer("snake_case #42"))
}
