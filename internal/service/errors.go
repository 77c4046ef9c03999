package service

import (
	"errors"
	"fmt"

	"github.com/DanRulev/vocaquiz/internal/models"
)

var (
	ErrEmptyAnswer     = errors.New("empty answer")
	ErrInvalidState    = errors.New("invalid quiz state")
	ErrNoSession       = errors.New("no active quiz")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownOption   = errors.New("unknown answer option")
)

// InsufficientDataError means the requested quiz cannot start with the data at hand.
type InsufficientDataError struct {
	QuizType models.QuizType
	Reason   string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("cannot start %s quiz: %s", e.QuizType, e.Reason)
}

type StorageReadError struct {
	Key string
	Err error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Key, e.Err)
}

func (e *StorageReadError) Unwrap() error {
	return e.Err
}

type StorageWriteError struct {
	Key string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Key, e.Err)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Err
}
