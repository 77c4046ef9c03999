package service

import (
	"context"

	"github.com/DanRulev/vocaquiz/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go

type StorageRI interface {
	Value(ctx context.Context, userID int64, key string) (string, bool, error)
	SetValue(ctx context.Context, userID int64, key, value string) error
}

type VocabularyI interface {
	Categories() []models.Category
	Category(key string) (models.Category, bool)
	Words() []models.Word
	CategoryCount() int
}

// Notifier delivers fire-and-forget messages to a user.
type Notifier interface {
	Notify(userID int64, message string, severity models.Severity)
}

type LogNotifier struct {
	Log *zap.Logger
}

func (n LogNotifier) Notify(userID int64, message string, severity models.Severity) {
	n.Log.Info(message, zap.Int64("user_id", userID), zap.String("severity", string(severity)))
}

type Stores struct {
	Sessions SessionStore
	Cursors  CursorStore
}

type Service struct {
	*QuizS
	*FlashcardS
	*SettingsS
	*BackupS
	Results *ResultsS
}

func InitServices(vocab VocabularyI, repo StorageRI, stores Stores, notifier Notifier, rnd Rand, log *zap.Logger) *Service {
	settings := NewSettingsService(repo, log)
	results := NewResultsService(repo, vocab, log)

	return &Service{
		QuizS:      NewQuizService(vocab, results, settings, stores.Sessions, notifier, rnd, log),
		FlashcardS: NewFlashcardService(vocab, settings, stores.Cursors, log),
		SettingsS:  settings,
		BackupS:    NewBackupService(results, settings, log),
		Results:    results,
	}
}
