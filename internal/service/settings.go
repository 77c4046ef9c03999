package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/DanRulev/vocaquiz/internal/models"
	"github.com/DanRulev/vocaquiz/pkg/validator"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	KeySettings  = "settings"
	KeyBookmarks = "bookmarks"
)

type SettingsS struct {
	repo StorageRI
	log  *zap.Logger
}

func NewSettingsService(repo StorageRI, log *zap.Logger) *SettingsS {
	return &SettingsS{repo: repo, log: log}
}

// Settings returns stored settings, defaults when missing or unreadable.
func (s *SettingsS) Settings(ctx context.Context, userID int64) models.Settings {
	settings, err := s.current(ctx, userID)
	if err != nil {
		s.log.Warn("settings unavailable, using defaults", zap.Int64("user_id", userID), zap.Error(err))
	}
	return settings
}

func (s *SettingsS) current(ctx context.Context, userID int64) (models.Settings, error) {
	settings := models.DefaultSettings()
	found, err := s.load(ctx, userID, KeySettings, &settings)
	if err != nil || !found {
		return models.DefaultSettings(), err
	}

	if err := validator.ValidateStruct(settings); err != nil {
		s.log.Warn("invalid stored settings, using defaults", zap.Int64("user_id", userID), zap.Error(err))
		return models.DefaultSettings(), nil
	}

	return settings, nil
}

func (s *SettingsS) SaveSettings(ctx context.Context, userID int64, settings models.Settings) error {
	if err := validator.ValidateStruct(settings); err != nil {
		return err
	}
	return s.store(ctx, userID, KeySettings, settings)
}

func (s *SettingsS) SetDifficulty(ctx context.Context, userID int64, difficulty models.Difficulty) (models.Settings, error) {
	settings, err := s.current(ctx, userID)
	if err != nil {
		return settings, err
	}
	settings.Difficulty = difficulty
	return settings, s.SaveSettings(ctx, userID, settings)
}

func (s *SettingsS) SetLanguage(ctx context.Context, userID int64, language models.Direction) (models.Settings, error) {
	settings, err := s.current(ctx, userID)
	if err != nil {
		return settings, err
	}
	settings.Language = language
	return settings, s.SaveSettings(ctx, userID, settings)
}

// Bookmarks returns bookmarked English words, sorted.
func (s *SettingsS) Bookmarks(ctx context.Context, userID int64) []string {
	bookmarks, err := s.bookmarks(ctx, userID)
	if err != nil {
		s.log.Warn("bookmarks unavailable", zap.Int64("user_id", userID), zap.Error(err))
	}
	return bookmarks
}

func (s *SettingsS) bookmarks(ctx context.Context, userID int64) ([]string, error) {
	var bookmarks []string
	found, err := s.load(ctx, userID, KeyBookmarks, &bookmarks)
	if err != nil || !found {
		return []string{}, err
	}

	bookmarks = lo.Uniq(bookmarks)
	sort.Strings(bookmarks)
	return bookmarks, nil
}

func (s *SettingsS) IsBookmarked(ctx context.Context, userID int64, english string) bool {
	return lo.ContainsBy(s.Bookmarks(ctx, userID), func(b string) bool {
		return strings.EqualFold(b, english)
	})
}

// ToggleBookmark adds or removes a word and reports whether it is now bookmarked.
// The list is left alone when it cannot be read.
func (s *SettingsS) ToggleBookmark(ctx context.Context, userID int64, english string) (bool, error) {
	bookmarks, err := s.bookmarks(ctx, userID)
	if err != nil {
		return false, err
	}

	remaining := lo.Reject(bookmarks, func(b string, _ int) bool {
		return strings.EqualFold(b, english)
	})

	added := len(remaining) == len(bookmarks)
	if added {
		remaining = append(remaining, english)
	}

	if err := s.store(ctx, userID, KeyBookmarks, remaining); err != nil {
		return !added, err
	}

	return added, nil
}

// load reports whether key held a decodable value. Only an unreachable store is an error.
func (s *SettingsS) load(ctx context.Context, userID int64, key string, dest any) (bool, error) {
	raw, found, err := s.repo.Value(ctx, userID, key)
	if err != nil {
		return false, &StorageReadError{Key: key, Err: err}
	}
	if !found {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.log.Warn("stored value corrupted", zap.Int64("user_id", userID), zap.Error(&StorageReadError{Key: key, Err: err}))
		return false, nil
	}

	return true, nil
}

func (s *SettingsS) store(ctx context.Context, userID int64, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &StorageWriteError{Key: key, Err: fmt.Errorf("encode: %w", err)}
	}

	if err := s.repo.SetValue(ctx, userID, key, string(data)); err != nil {
		s.log.Error("failed to save", zap.Int64("user_id", userID), zap.String("key", key), zap.Error(err))
		return &StorageWriteError{Key: key, Err: err}
	}

	return nil
}
