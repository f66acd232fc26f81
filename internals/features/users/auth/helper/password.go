package helpers

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt hanya memakai 72 byte pertama
const MaxPasswordBytes = 72

var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

// Validasi input login
func ValidateLoginInput(identifier, password string) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(identifier) == "" {
		fields["identifier"] = "is required"
	}
	if password == "" {
		fields["password"] = "is required"
	}
	return fields
}
