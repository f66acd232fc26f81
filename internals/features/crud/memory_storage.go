// file: internals/features/crud/memory_storage.go
package crud

import (
	"context"
	"sync"

	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"
)

// MemoryStorage keeps rows in process memory (DB_DRIVER=memory, tests).
// Errors mirror GORM's sentinels so classification stays identical.
// Listing keeps insertion order; order=desc reverses it.
type MemoryStorage[T any, K comparable] struct {
	mu    sync.RWMutex
	keyOf func(*T) K
	clone func(*T)
	rows  map[K]T
	order []K
}

func NewMemoryStorage[T any, K comparable](def Definition[T, K]) *MemoryStorage[T, K] {
	return &MemoryStorage[T, K]{
		keyOf: def.KeyOf,
		clone: def.Clone,
		rows:  make(map[K]T),
	}
}

// copyOf: salinan row yang tidak berbagi slice dengan aslinya.
func (s *MemoryStorage[T, K]) copyOf(row T) T {
	if s.clone != nil {
		s.clone(&row)
	}
	return row
}

func (s *MemoryStorage[T, K]) Create(ctx context.Context, row *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.keyOf(row)
	if _, ok := s.rows[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	s.rows[key] = s.copyOf(*row)
	s.order = append(s.order, key)
	return nil
}

func (s *MemoryStorage[T, K]) RetrieveByID(ctx context.Context, key K) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[key]
	if !ok {
		return zero, gorm.ErrRecordNotFound
	}
	return s.copyOf(row), nil
}

func (s *MemoryStorage[T, K]) RetrieveAll(ctx context.Context, p helper.Params) ([]T, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]K, len(s.order))
	copy(keys, s.order)
	if p.SortOrder == "desc" {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}

	total := int64(len(keys))
	start, end := 0, len(keys)
	if !p.All && p.PerPage > 0 {
		start = min(p.Offset(), len(keys))
		end = min(start+p.Limit(), len(keys))
	}

	out := make([]T, 0, end-start)
	for _, k := range keys[start:end] {
		out = append(out, s.copyOf(s.rows[k]))
	}
	return out, total, nil
}

func (s *MemoryStorage[T, K]) Update(ctx context.Context, row *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.keyOf(row)
	if _, ok := s.rows[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.rows[key] = s.copyOf(*row)
	return nil
}

func (s *MemoryStorage[T, K]) Delete(ctx context.Context, key K) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.rows, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
