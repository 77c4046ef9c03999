package models

import "time"

type Settings struct {
	Difficulty Difficulty `json:"difficulty" validate:"oneof=easy medium hard"`
	Language   Direction  `json:"language" validate:"oneof=en-pl pl-en mixed"`
}

func DefaultSettings() Settings {
	return Settings{
		Difficulty: DifficultyMedium,
		Language:   DirectionMixed,
	}
}

type Backup struct {
	QuizResults map[string][]QuizResult `json:"quizResults"`
	Settings    Settings                `json:"settings"`
	ExportedAt  time.Time               `json:"exportedAt"`
}
