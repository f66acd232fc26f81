package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authHelper "schoolku_backend/internals/features/users/auth/helper"
	authRepo "schoolku_backend/internals/features/users/auth/repository"
	userModel "schoolku_backend/internals/features/users/user/model"
	"schoolku_backend/internals/helpers/apperr"
)

/* ==========================
   Const & Types
========================== */

const (
	entityName       = "login"
	accessTTLDefault = 24 * time.Hour
)

var errMissingSecret = errors.New("JWT_SECRET belum diset")

type LoginResult struct {
	AccessToken string              `json:"access_token"`
	TokenType   string              `json:"token_type"`
	ExpiresAt   time.Time           `json:"expires_at"`
	User        userModel.UserModel `json:"user"`
}

type AuthService struct {
	Users  authRepo.UserFinder
	Secret string
	TTL    time.Duration
	now    func() time.Time
}

func NewAuthService(users authRepo.UserFinder, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = accessTTLDefault
	}
	return &AuthService{
		Users:  users,
		Secret: strings.TrimSpace(secret),
		TTL:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func invalidCredentials() error {
	return apperr.Validation(entityName, apperr.InvalidInputf("Invalid identifier or password."))
}

/* ==========================
   LOGIN
========================== */

func (s *AuthService) Login(ctx context.Context, identifier, password string) (LoginResult, error) {
	identifier = strings.TrimSpace(identifier)
	if fields := authHelper.ValidateLoginInput(identifier, password); len(fields) > 0 {
		return LoginResult{}, apperr.Validation(entityName, apperr.InvalidInput(entityName, fields))
	}

	user, err := s.Users.FindUserByEmailOrUsername(ctx, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResult{}, invalidCredentials()
		}
		return LoginResult{}, apperr.FromStorage("user", identifier, err)
	}
	if err := authHelper.CheckPasswordHash(user.UserPasswordHash, password); err != nil {
		return LoginResult{}, invalidCredentials()
	}
	if user.IsLocked {
		return LoginResult{}, apperr.Dependency("user", apperr.Locked("user", user.UserID, nil))
	}
	if !user.Active() {
		return LoginResult{}, apperr.Validation(entityName, apperr.InvalidInputf("Account is deactivated."))
	}

	if s.Secret == "" {
		return LoginResult{}, apperr.Service(entityName, errMissingSecret)
	}

	now := s.now()
	exp := now.Add(s.TTL)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user.UserID, user.UserName, now, exp)).
		SignedString([]byte(s.Secret))
	if err != nil {
		return LoginResult{}, apperr.Service(entityName, err)
	}

	user.UserPassword = ""
	user.UserPasswordHash = ""
	return LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   exp,
		User:        *user,
	}, nil
}

func buildAccessClaims(userID uuid.UUID, userName string, now, exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":        userID.String(),
		"user_name": userName,
		"iat":       now.Unix(),
		"exp":       exp.Unix(),
	}
}
