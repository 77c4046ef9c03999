package service

import (
	"context"
	"time"

	"github.com/DanRulev/vocaquiz/internal/models"
	"github.com/DanRulev/vocaquiz/pkg/validator"
	"go.uber.org/zap"
)

type BackupS struct {
	results  *ResultsS
	settings *SettingsS
	now      func() time.Time
	log      *zap.Logger
}

func NewBackupService(results *ResultsS, settings *SettingsS, log *zap.Logger) *BackupS {
	return &BackupS{
		results:  results,
		settings: settings,
		now:      time.Now,
		log:      log,
	}
}

func (b *BackupS) Export(ctx context.Context, userID int64) models.Backup {
	return models.Backup{
		QuizResults: b.results.History(ctx, userID),
		Settings:    b.settings.Settings(ctx, userID),
		ExportedAt:  b.now().UTC(),
	}
}

// Import merges results key by key and applies settings when they are valid.
func (b *BackupS) Import(ctx context.Context, userID int64, backup models.Backup) error {
	if err := b.results.Merge(ctx, userID, backup.QuizResults); err != nil {
		return err
	}

	if err := validator.ValidateStruct(backup.Settings); err != nil {
		b.log.Info("backup carries no usable settings", zap.Int64("user_id", userID), zap.Error(err))
		return nil
	}

	return b.settings.SaveSettings(ctx, userID, backup.Settings)
}
