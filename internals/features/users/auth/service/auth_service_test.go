package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/crud"
	authRepo "schoolku_backend/internals/features/users/auth/repository"
	"schoolku_backend/internals/features/users/auth/service"
	userModel "schoolku_backend/internals/features/users/user/model"
	userService "schoolku_backend/internals/features/users/user/service"
	"schoolku_backend/internals/helpers/apperr"
)

const secret = "test-secret"

type fixture struct {
	users *crud.Service[userModel.UserModel, uuid.UUID]
	auth  *service.AuthService
	user  userModel.UserModel
}

func setup(t *testing.T, secret string) fixture {
	t.Helper()
	store := crud.NewMemoryStorage(userService.Definition)
	users := userService.NewUserService(store)

	ctx := crud.WithActor(context.Background(), uuid.New())
	u, err := users.Create(ctx, userModel.UserModel{
		UserName:     "guru01",
		UserEmail:    "guru01@sekolah.id",
		UserPassword: "rahasia123",
	})
	require.NoError(t, err)

	return fixture{
		users: users,
		auth:  service.NewAuthService(authRepo.NewUserFinder(nil, store), secret, time.Hour),
		user:  u,
	}
}

func TestLogin_Success(t *testing.T) {
	f := setup(t, secret)

	for _, identifier := range []string{"guru01", "GURU01@sekolah.id"} {
		res, err := f.auth.Login(context.Background(), identifier, "rahasia123")
		require.NoError(t, err, identifier)

		assert.Equal(t, "Bearer", res.TokenType)
		assert.Equal(t, f.user.UserID, res.User.UserID)
		assert.Empty(t, res.User.UserPasswordHash)

		tok, err := jwt.Parse(res.AccessToken, func(*jwt.Token) (any, error) { return []byte(secret), nil })
		require.NoError(t, err)
		claims := tok.Claims.(jwt.MapClaims)
		assert.Equal(t, f.user.UserID.String(), claims["id"])
		assert.Equal(t, "guru01", claims["user_name"])
		assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, time.Minute)
	}
}

func TestLogin_Failures(t *testing.T) {
	f := setup(t, secret)

	tests := []struct {
		name       string
		identifier string
		password   string
		status     int
		message    string
	}{
		{"missing fields", "", "", 400, "Invalid login. identifier is required; password is required."},
		{"unknown user", "nobody", "rahasia123", 400, "Invalid identifier or password."},
		{"wrong password", "guru01", "salah-salah", 400, "Invalid identifier or password."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.auth.Login(context.Background(), tc.identifier, tc.password)

			out := apperr.Resolve(err)
			assert.Equal(t, tc.status, out.Status)
			assert.Equal(t, tc.message, out.Message)
		})
	}
}

func TestLogin_LockedUser(t *testing.T) {
	f := setup(t, secret)
	_, err := f.users.SetLocked(crud.WithActor(context.Background(), uuid.New()), f.user.UserID, true)
	require.NoError(t, err)

	_, err = f.auth.Login(context.Background(), "guru01", "rahasia123")

	assert.True(t, apperr.Is(err, apperr.CategoryDependency, apperr.KindLocked))
	assert.Equal(t, 423, apperr.Resolve(err).Status)
}

func TestLogin_InactiveUser(t *testing.T) {
	f := setup(t, secret)
	inactive := false
	_, err := f.users.Modify(crud.WithActor(context.Background(), uuid.New()), userModel.UserModel{
		UserID:       f.user.UserID,
		UserName:     "guru01",
		UserEmail:    "guru01@sekolah.id",
		UserIsActive: &inactive,
	})
	require.NoError(t, err)

	_, err = f.auth.Login(context.Background(), "guru01", "rahasia123")

	out := apperr.Resolve(err)
	assert.Equal(t, 400, out.Status)
	assert.Equal(t, "Account is deactivated.", out.Message)
}

func TestLogin_MissingSecret(t *testing.T) {
	f := setup(t, "  ")

	_, err := f.auth.Login(context.Background(), "guru01", "rahasia123")

	out := apperr.Resolve(err)
	assert.Equal(t, 500, out.Status)
	assert.Equal(t, "Login service error occurred, contact support.", out.Message)
}

type brokenFinder struct{}

func (brokenFinder) FindUserByEmailOrUsername(context.Context, string) (*userModel.UserModel, error) {
	return nil, errors.New("connection reset by peer")
}

func TestLogin_RepositoryFailure(t *testing.T) {
	svc := service.NewAuthService(brokenFinder{}, secret, 0)

	_, err := svc.Login(context.Background(), "guru01", "rahasia123")

	assert.True(t, apperr.Is(err, apperr.CategoryDependency, apperr.KindFailed))
	assert.Equal(t, "User dependency error occurred, contact support.", apperr.Resolve(err).Message)
}
