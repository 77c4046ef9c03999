package repository

import (
	"context"
	"database/sql"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

type Repository struct {
	*StorageR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		StorageR: NewStorageRepository(db),
	}
}
