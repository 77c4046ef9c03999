package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DanRulev/vocaquiz/internal/models"
	mock_service "github.com/DanRulev/vocaquiz/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSettingsS_Settings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stored string
		want   models.Settings
	}{
		{name: "missing", want: models.DefaultSettings()},
		{name: "stored", stored: `{"difficulty":"hard","language":"pl-en"}`, want: models.Settings{Difficulty: models.DifficultyHard, Language: models.DirectionPlEn}},
		{name: "corrupt", stored: `{"difficulty":`, want: models.DefaultSettings()},
		{name: "invalid values", stored: `{"difficulty":"insane","language":"de-pl"}`, want: models.DefaultSettings()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			storage := newMemStorage()
			if tt.stored != "" {
				storage.put(1, KeySettings, tt.stored)
			}

			s := NewSettingsService(storage, zap.NewNop())
			assert.Equal(t, tt.want, s.Settings(context.Background(), 1))
		})
	}
}

func TestSettingsS_Update(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewSettingsService(newMemStorage(), zap.NewNop())

	got, err := s.SetDifficulty(ctx, 1, models.DifficultyEasy)
	require.NoError(t, err)
	assert.Equal(t, models.Settings{Difficulty: models.DifficultyEasy, Language: models.DirectionMixed}, got)

	got, err = s.SetLanguage(ctx, 1, models.DirectionEnPl)
	require.NoError(t, err)
	assert.Equal(t, models.Settings{Difficulty: models.DifficultyEasy, Language: models.DirectionEnPl}, got)
	assert.Equal(t, got, s.Settings(ctx, 1))

	_, err = s.SetDifficulty(ctx, 1, "extreme")
	require.Error(t, err)
	assert.Equal(t, models.DifficultyEasy, s.Settings(ctx, 1).Difficulty)

	assert.Equal(t, models.DefaultSettings(), s.Settings(ctx, 2))
}

func TestSettingsS_Bookmarks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewSettingsService(newMemStorage(), zap.NewNop())

	assert.Empty(t, s.Bookmarks(ctx, 1))

	added, err := s.ToggleBookmark(ctx, 1, "dog")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.ToggleBookmark(ctx, 1, "cat")
	require.NoError(t, err)
	assert.True(t, added)

	assert.Equal(t, []string{"cat", "dog"}, s.Bookmarks(ctx, 1))
	assert.True(t, s.IsBookmarked(ctx, 1, "Dog"))

	added, err = s.ToggleBookmark(ctx, 1, "DOG")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{"cat"}, s.Bookmarks(ctx, 1))
	assert.False(t, s.IsBookmarked(ctx, 1, "dog"))
}

func TestSettingsS_BookmarkWriteError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock_service.NewMockStorageRI(ctrl)
	storage.EXPECT().Value(gomock.Any(), int64(1), KeyBookmarks).Return(`["cat"]`, true, nil)
	storage.EXPECT().SetValue(gomock.Any(), int64(1), KeyBookmarks, `["cat","dog"]`).Return(errors.New("read-only"))

	added, err := NewSettingsService(storage, zap.NewNop()).ToggleBookmark(context.Background(), 1, "dog")

	var writeErr *StorageWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, KeyBookmarks, writeErr.Key)
	assert.False(t, added)
}

func TestSettingsS_ReadErrorKeepsStoredValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storage := newMemStorage()
	s := NewSettingsService(storage, zap.NewNop())

	_, err := s.ToggleBookmark(ctx, 1, "cat")
	require.NoError(t, err)
	_, err = s.SetLanguage(ctx, 1, models.DirectionPlEn)
	require.NoError(t, err)

	storage.failNextReads(1)
	_, err = s.ToggleBookmark(ctx, 1, "dog")
	var readErr *StorageReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, KeyBookmarks, readErr.Key)

	storage.failNextReads(1)
	_, err = s.SetDifficulty(ctx, 1, models.DifficultyHard)
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, KeySettings, readErr.Key)

	assert.Equal(t, []string{"cat"}, s.Bookmarks(ctx, 1))
	assert.Equal(t, models.Settings{Difficulty: models.DifficultyMedium, Language: models.DirectionPlEn}, s.Settings(ctx, 1))
}
