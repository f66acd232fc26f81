// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/crud"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

// UserFinder: pencarian user untuk login (email atau user_name).
// Return gorm.ErrRecordNotFound kalau tidak ada.
type UserFinder interface {
	FindUserByEmailOrUsername(ctx context.Context, identifier string) (*userModel.UserModel, error)
}

// NewUserFinder: query langsung ke DB kalau ada, selain itu scan storage yang dipakai /api/users.
func NewUserFinder(db *gorm.DB, store crud.Storage[userModel.UserModel, uuid.UUID]) UserFinder {
	if db == nil {
		return &StorageFinder{Store: store}
	}
	return &GormFinder{DB: db}
}

/* ====================== GORM ====================== */

type GormFinder struct {
	DB *gorm.DB
}

func (r *GormFinder) FindUserByEmailOrUsername(ctx context.Context, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.DB.WithContext(ctx).
		Where("user_email = ? OR user_name = ?", strings.ToLower(identifier), identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

/* ====================== STORAGE (memory) ====================== */

type StorageFinder struct {
	Store crud.Storage[userModel.UserModel, uuid.UUID]
}

func (r *StorageFinder) FindUserByEmailOrUsername(ctx context.Context, identifier string) (*userModel.UserModel, error) {
	rows, _, err := r.Store.RetrieveAll(ctx, helper.Params{All: true})
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if strings.EqualFold(rows[i].UserEmail, identifier) || rows[i].UserName == identifier {
			return &rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
