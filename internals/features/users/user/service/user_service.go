package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/crud"
	authHelper "schoolku_backend/internals/features/users/auth/helper"
	"schoolku_backend/internals/features/users/user/model"
	"schoolku_backend/internals/helpers/apperr"
)

const entityName = "user"

var Definition = crud.Definition[model.UserModel, uuid.UUID]{
	Name:      entityName,
	Audit:     func(m *model.UserModel) *crud.Audit { return &m.Audit },
	KeyOf:     func(m *model.UserModel) uuid.UUID { return m.UserID },
	NewKey:    func(m *model.UserModel) { crud.AssignUUID(&m.UserID) },
	KeyParams: "/:id",
	ParseKey:  crud.ParseUUIDParam("id"),
	KeyWhere:  crud.WhereUUID("user_id"),
	Check:     checkUser,
	Prepare:   prepareUser,
	Present:   sanitizeUser,
	Clone:     cloneUser,
	SortColumns: map[string]string{
		"user_name":    "user_name",
		"email":        "user_email",
		"created_date": "user_created_date",
	},
	DefaultSort: "created_date",
}

func NewUserService(store crud.Storage[model.UserModel, uuid.UUID]) *crud.Service[model.UserModel, uuid.UUID] {
	return crud.NewService(Definition, store, nil)
}

func cloneUser(u *model.UserModel) {
	u.UserFullName = crud.ClonePtr(u.UserFullName)
	u.UserPhone = crud.ClonePtr(u.UserPhone)
	u.UserIsActive = crud.ClonePtr(u.UserIsActive)
}

// validator menghitung rune, bcrypt menghitung byte
func checkUser(u *model.UserModel) map[string]string {
	if len(u.UserPassword) > authHelper.MaxPasswordBytes {
		return map[string]string{"user_password": "must be at most 72 bytes"}
	}
	return nil
}

// helper: sanitasi field sensitif sebelum kirim ke client
func sanitizeUser(u *model.UserModel) {
	u.UserPassword = ""
	u.UserPasswordHash = ""
}

// prepareUser: hash password baru; saat modify tanpa password, hash lama dipertahankan.
func prepareUser(_ context.Context, u *model.UserModel, stored *model.UserModel) error {
	u.UserName = strings.TrimSpace(u.UserName)
	u.UserEmail = strings.ToLower(strings.TrimSpace(u.UserEmail))
	if u.UserIsActive == nil {
		active := true
		if stored != nil && stored.UserIsActive != nil {
			active = *stored.UserIsActive
		}
		u.UserIsActive = &active
	}

	switch {
	case u.UserPassword != "":
		hashed, err := authHelper.HashPassword(u.UserPassword)
		if errors.Is(err, authHelper.ErrPasswordTooLong) {
			return apperr.Validation(entityName,
				apperr.InvalidInput(entityName, map[string]string{"user_password": "must be at most 72 bytes"}))
		}
		if err != nil {
			return err
		}
		u.UserPasswordHash = hashed
	case stored != nil:
		u.UserPasswordHash = stored.UserPasswordHash
	default:
		return apperr.Validation(entityName,
			apperr.InvalidInput(entityName, map[string]string{"user_password": "is required"}))
	}
	u.UserPassword = ""
	return nil
}
