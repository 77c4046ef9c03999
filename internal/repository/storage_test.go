package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DanRulev/vocaquiz/internal/config"
	mock_repository "github.com/DanRulev/vocaquiz/internal/repository/mock"
	"github.com/DanRulev/vocaquiz/internal/storage/db"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorageMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *StorageR {
	db := mock_repository.NewMockQueryI(ctrl)
	db.EXPECT().Rebind(gomock.Any()).DoAndReturn(func(q string) string { return q }).AnyTimes()
	if setupMock != nil {
		setupMock(db)
	}

	return &StorageR{db: db}
}

func TestStorageR_Value(t *testing.T) {
	t.Parallel()

	type args struct {
		ctx    context.Context
		userID int64
		key    string
	}
	tests := []struct {
		name      string
		args      args
		f         func(*mock_repository.MockQueryI)
		want      string
		wantFound bool
		wantErr   bool
	}{
		{
			name: "success",
			args: args{ctx: context.Background(), userID: 1, key: "settings"},
			f: func(mqi *mock_repository.MockQueryI) {
				var value string
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&value), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*string) = `{"difficulty":"hard"}`
						return nil
					})
			},
			want:      `{"difficulty":"hard"}`,
			wantFound: true,
		},
		{
			name: "missing key",
			args: args{ctx: context.Background(), userID: 1, key: "bookmarks"},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
			wantFound: false,
		},
		{
			name: "db error",
			args: args{ctx: context.Background(), userID: 1, key: "quiz-results"},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newStorageMock(t, ctrl, tt.f)

			got, found, err := repo.Value(tt.args.ctx, tt.args.userID, tt.args.key)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStorageR_SetValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
		},
		{
			name: "failed exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newStorageMock(t, ctrl, tt.f)

			err := repo.SetValue(context.Background(), 1, "settings", "{}")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestStorageR_Users(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newStorageMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		var users []int64
		mqi.EXPECT().SelectContext(gomock.Any(), gomock.AssignableToTypeOf(&users), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
				slice := dest.(*[]int64)
				*slice = append(*slice, 7, 9)
				return nil
			})
	})

	users, err := repo.Users(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 9}, users)
}

func TestStorageR_SQLite(t *testing.T) {
	t.Parallel()

	conn, err := db.InitDB(config.DBConfig{
		Driver: "sqlite3",
		DSN:    filepath.Join(t.TempDir(), "storage.db"),
		Cfg:    config.DBCfg{MaxOpenConns: 1, MaxIdleConns: 1},
	})
	require.NoError(t, err)
	defer conn.Close()

	ctx := context.Background()
	repo := NewRepository(conn)

	_, found, err := repo.Value(ctx, 1, "settings")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SetValue(ctx, 1, "settings", "first"))
	require.NoError(t, repo.SetValue(ctx, 1, "settings", "second"))
	require.NoError(t, repo.SetValue(ctx, 2, "settings", "other"))

	got, found, err := repo.Value(ctx, 1, "settings")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", got)

	users, err := repo.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, users)

	require.NoError(t, repo.DeleteValue(ctx, 1, "settings"))
	_, found, err = repo.Value(ctx, 1, "settings")
	require.NoError(t, err)
	assert.False(t, found)
}
