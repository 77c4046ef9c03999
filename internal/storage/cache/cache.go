package cache

import (
	"sync"
)

// Store keeps one value per user in memory.
type Store[T any] struct {
	mu    sync.Mutex
	items map[int64]T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		items: make(map[int64]T),
	}
}

func (s *Store[T]) Set(userID int64, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[userID] = item
}

func (s *Store[T]) Get(userID int64) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, exists := s.items[userID]
	return item, exists
}

func (s *Store[T]) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, userID)
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
