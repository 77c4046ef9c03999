package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// StorageR keeps opaque per-user values, one row per (user_id, storage_key).
type StorageR struct {
	db QueryI
}

func NewStorageRepository(db QueryI) *StorageR {
	return &StorageR{db: db}
}

// Value returns the stored text and whether the key exists.
func (s *StorageR) Value(ctx context.Context, userID int64, key string) (string, bool, error) {
	query := s.db.Rebind(`
		SELECT storage_value
		FROM user_storage
		WHERE user_id = ? AND storage_key = ?
	`)

	var value string
	err := s.db.GetContext(ctx, &value, query, userID, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %q for user %d: %w", key, userID, err)
	}

	return value, true, nil
}

func (s *StorageR) SetValue(ctx context.Context, userID int64, key, value string) error {
	query := s.db.Rebind(`
		INSERT INTO user_storage (user_id, storage_key, storage_value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, storage_key)
		DO UPDATE SET
			storage_value = EXCLUDED.storage_value,
			updated_at = CURRENT_TIMESTAMP
	`)

	_, err := s.db.ExecContext(ctx, query, userID, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %q for user %d: %w", key, userID, err)
	}

	return nil
}

func (s *StorageR) DeleteValue(ctx context.Context, userID int64, key string) error {
	query := s.db.Rebind(`DELETE FROM user_storage WHERE user_id = ? AND storage_key = ?`)

	_, err := s.db.ExecContext(ctx, query, userID, key)
	if err != nil {
		return fmt.Errorf("failed to delete %q for user %d: %w", key, userID, err)
	}

	return nil
}

// Users lists every user with stored data.
func (s *StorageR) Users(ctx context.Context) ([]int64, error) {
	query := `SELECT DISTINCT user_id FROM user_storage ORDER BY user_id`

	users := make([]int64, 0)
	if err := s.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
