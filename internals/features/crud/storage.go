// file: internals/features/crud/storage.go
package crud

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helper "schoolku_backend/internals/helpers"
)

// Storage is the persistence collaborator. Implementations return raw errors
// (gorm.ErrRecordNotFound, driver errors); the service classifies them.
type Storage[T any, K comparable] interface {
	Create(ctx context.Context, row *T) error
	RetrieveByID(ctx context.Context, key K) (T, error)
	RetrieveAll(ctx context.Context, p helper.Params) ([]T, int64, error)
	Update(ctx context.Context, row *T) error
	Delete(ctx context.Context, key K) error
}

// NewStorage: GORM kalau db tersedia, selain itu in-memory (DB_DRIVER=memory).
func NewStorage[T any, K comparable](db *gorm.DB, def Definition[T, K]) Storage[T, K] {
	if db == nil {
		return NewMemoryStorage(def)
	}
	return NewGormStorage(db, def)
}

/* =======================================================
   GORM (PostgreSQL)
   ======================================================= */

type GormStorage[T any, K comparable] struct {
	DB  *gorm.DB
	Def Definition[T, K]
}

func NewGormStorage[T any, K comparable](db *gorm.DB, def Definition[T, K]) *GormStorage[T, K] {
	return &GormStorage[T, K]{DB: db, Def: def}
}

func (s *GormStorage[T, K]) Create(ctx context.Context, row *T) error {
	return s.DB.WithContext(ctx).Create(row).Error
}

func (s *GormStorage[T, K]) RetrieveByID(ctx context.Context, key K) (T, error) {
	var row T
	q, args := s.Def.KeyWhere(key)
	err := s.DB.WithContext(ctx).Where(q, args...).First(&row).Error
	return row, err
}

func (s *GormStorage[T, K]) RetrieveAll(ctx context.Context, p helper.Params) ([]T, int64, error) {
	db := s.DB.WithContext(ctx).Model(new(T))

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// kolom sudah di-whitelist lewat SortColumns, aman untuk concat
	if col, dir := p.OrderColumn(s.Def.SortColumns, s.Def.DefaultSort); col != "" {
		db = db.Order(col + " " + dir)
	}
	if !p.All {
		db = db.Limit(p.Limit()).Offset(p.Offset())
	}

	var rows []T
	if err := db.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Update writes every column of row (zero values included).
func (s *GormStorage[T, K]) Update(ctx context.Context, row *T) error {
	res := s.DB.WithContext(ctx).Model(row).Select("*").Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete soft-deletes one row. The row is locked NOWAIT first so a row held by
// another transaction fails fast (SQLSTATE 55P03) instead of blocking.
func (s *GormStorage[T, K]) Delete(ctx context.Context, key K) error {
	q, args := s.Def.KeyWhere(key)
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row T
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "NOWAIT"}).
			Where(q, args...).
			First(&row).Error; err != nil {
			return err
		}
		res := tx.Where(q, args...).Delete(new(T))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
