package service

import (
	"math"
	"time"

	"github.com/DanRulev/vocaquiz/internal/models"
	"github.com/google/uuid"
)

type SessionState int

const (
	StateNotStarted SessionState = iota
	StateInProgress
	StateShowingFeedback
	StateCompleted
)

func (s SessionState) String() string {
	switch s {
	case StateInProgress:
		return "in-progress"
	case StateShowingFeedback:
		return "showing-feedback"
	case StateCompleted:
		return "completed"
	default:
		return "not-started"
	}
}

// Session is one quiz attempt. It is not safe for concurrent use.
type Session struct {
	ID           string
	Type         models.QuizType
	Category     string
	CategoryName string
	Questions    []models.Question
	PassScore    int
	TimeLimit    time.Duration
	Difficulty   models.Difficulty
	Language     models.Direction

	CurrentIndex int
	UserAnswers  []models.AnswerRecord
	Score        int
	State        SessionState

	StartedAt       time.Time
	QuestionShownAt time.Time
}

func newSession(p quizPlan, questions []models.Question, settings models.Settings, now time.Time) *Session {
	return &Session{
		ID:              uuid.NewString(),
		Type:            p.quizType,
		Category:        p.category,
		CategoryName:    p.categoryName,
		Questions:       questions,
		PassScore:       p.passScore(len(questions)),
		TimeLimit:       p.timeLimit,
		Difficulty:      settings.Difficulty,
		Language:        settings.Language,
		UserAnswers:     make([]models.AnswerRecord, 0, len(questions)),
		State:           StateInProgress,
		StartedAt:       now,
		QuestionShownAt: now,
	}
}

func (s *Session) TotalQuestions() int {
	return len(s.Questions)
}

func (s *Session) Current() (models.Question, error) {
	if s.State != StateInProgress && s.State != StateShowingFeedback {
		return models.Question{}, ErrInvalidState
	}
	return s.Questions[s.CurrentIndex], nil
}

// Expired reports whether a time-limited session ran past its deadline.
func (s *Session) Expired(now time.Time) bool {
	return s.TimeLimit > 0 && now.Sub(s.StartedAt) > s.TimeLimit
}

func (s *Session) Remaining(now time.Time) time.Duration {
	if s.TimeLimit == 0 {
		return 0
	}
	return max(s.TimeLimit-now.Sub(s.StartedAt), 0)
}

// Submit checks the answer to the current question and moves to feedback.
// Empty answers are rejected without touching the session.
func (s *Session) Submit(input string, now time.Time) (models.AnswerRecord, error) {
	if s.State != StateInProgress {
		return models.AnswerRecord{}, ErrInvalidState
	}

	q := s.Questions[s.CurrentIndex]

	res, err := CheckAnswer(input, q)
	if err != nil {
		return models.AnswerRecord{}, err
	}

	record := models.AnswerRecord{
		Question:      q,
		UserAnswer:    input,
		CorrectAnswer: res.CorrectAnswer,
		IsCorrect:     res.IsCorrect,
		AnswerType:    q.Type,
		TimeSpent:     now.Sub(s.QuestionShownAt),
	}

	s.UserAnswers = append(s.UserAnswers, record)
	if record.IsCorrect {
		s.Score++
	}
	s.State = StateShowingFeedback

	return record, nil
}

// Next advances past the feedback screen. It reports true when the quiz is over.
func (s *Session) Next(now time.Time) (bool, error) {
	if s.State != StateShowingFeedback {
		return false, ErrInvalidState
	}

	if s.CurrentIndex >= len(s.Questions)-1 {
		s.State = StateCompleted
		return true, nil
	}

	s.CurrentIndex++
	s.QuestionShownAt = now
	s.State = StateInProgress

	return false, nil
}

func (s *Session) Finish() {
	s.State = StateCompleted
}

func (s *Session) Progress(now time.Time) models.QuizProgress {
	return models.QuizProgress{
		SessionID:    s.ID,
		QuizType:     s.Type,
		CategoryName: s.CategoryName,
		Index:        s.CurrentIndex,
		Total:        len(s.Questions),
		Score:        s.Score,
		Question:     s.Questions[s.CurrentIndex],
		Remaining:    s.Remaining(now),
	}
}

// Result summarizes the session; unanswered questions count as wrong.
func (s *Session) Result(now time.Time) models.QuizResult {
	total := len(s.Questions)

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(s.Score) / float64(total) * 100))
	}

	answers := make([]models.AnswerRecord, len(s.UserAnswers))
	copy(answers, s.UserAnswers)

	return models.QuizResult{
		QuizType:     s.Type,
		Category:     s.Category,
		CategoryName: s.CategoryName,
		Score:        s.Score,
		Total:        total,
		Percentage:   percentage,
		Passed:       s.Score >= s.PassScore,
		PassScore:    s.PassScore,
		Difficulty:   s.Difficulty,
		Language:     s.Language,
		UserAnswers:  answers,
		CompletedAt:  now,
		TimeSpent:    now.Sub(s.StartedAt),
	}
}
