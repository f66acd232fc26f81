package model

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/crud"
)

// UserModel merepresentasikan tabel users di database.
// Password hanya masuk lewat request (create / ganti password), tidak pernah keluar.
// Keunikan user_name & LOWER(user_email) = partial index di migrasi 00001_init.sql.
type UserModel struct {
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id"`
	UserName     string    `json:"user_name" gorm:"size:50;not null;column:user_name" validate:"required,min=3,max=50"`
	UserEmail    string    `json:"user_email" gorm:"size:255;not null;column:user_email" validate:"required,email,max=255"`
	UserFullName *string   `json:"user_full_name,omitempty" gorm:"size:100;column:user_full_name" validate:"omitempty,max=100"`
	UserPhone    *string   `json:"user_phone,omitempty" gorm:"size:20;column:user_phone" validate:"omitempty,max=20"`
	UserIsActive *bool     `json:"user_is_active,omitempty" gorm:"not null;default:true;column:user_is_active"`

	UserPassword     string `json:"user_password,omitempty" gorm:"-" validate:"omitempty,min=8,max=72"`
	UserPasswordHash string `json:"-" gorm:"not null;column:user_password_hash"`

	crud.Audit `gorm:"embedded;embeddedPrefix:user_"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) Active() bool {
	return u.UserIsActive == nil || *u.UserIsActive
}
