package models

import "time"

type QuestionType string

const (
	QuestionMultipleChoice      QuestionType = "multiple-choice"
	QuestionTextInput           QuestionType = "text-input"
	QuestionSentenceTranslation QuestionType = "sentence-translation"
)

type Direction string

const (
	DirectionEnPl  Direction = "en-pl"
	DirectionPlEn  Direction = "pl-en"
	DirectionMixed Direction = "mixed"
)

type Question struct {
	Type          QuestionType `json:"type"`
	Direction     Direction    `json:"direction"`
	Word          Word         `json:"word"`
	Prompt        string       `json:"prompt"`
	CorrectAnswer string       `json:"correctAnswer"`
	Options       []string     `json:"options,omitempty"`
}

type AnswerRecord struct {
	Question      Question      `json:"question"`
	UserAnswer    string        `json:"userAnswer"`
	CorrectAnswer string        `json:"correctAnswer"`
	IsCorrect     bool          `json:"isCorrect"`
	AnswerType    QuestionType  `json:"answerType"`
	TimeSpent     time.Duration `json:"timeSpent"`
}

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// QuizProgress is what a front end needs to show the current question.
type QuizProgress struct {
	SessionID    string
	QuizType     QuizType
	CategoryName string
	Index        int
	Total        int
	Score        int
	Question     Question
	Remaining    time.Duration
}

// Choice is a tapped answer option, tied to the question it was offered for.
type Choice struct {
	SessionID string
	Question  int
	Option    int
}

// Feedback follows a submitted answer. Result is set once the quiz is over.
type Feedback struct {
	Record   AnswerRecord
	Score    int
	Index    int
	Total    int
	Last     bool
	TimedOut bool
	Result   *QuizResult
}
