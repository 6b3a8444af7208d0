package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDisabled           = errors.New("admin login disabled")
)

const minPasswordLength = 8

type LoginInput struct {
	Username string
	Password string
}

// Service checks the single admin credential pair from configuration.
type Service struct {
	username     string
	passwordHash []byte
}

func NewService(username, passwordHash string) *Service {
	return &Service{
		username:     strings.TrimSpace(username),
		passwordHash: []byte(strings.TrimSpace(passwordHash)),
	}
}

func (s *Service) Enabled() bool {
	return s != nil && s.username != "" && len(s.passwordHash) > 0
}

func (s *Service) Authenticate(in LoginInput) (string, error) {
	if !s.Enabled() {
		return "", ErrDisabled
	}
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return "", ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(in.Password)); err != nil || !userOK {
		return "", ErrInvalidCredentials
	}
	return s.username, nil
}

// HashPassword produces the bcrypt hash expected in ADMIN_PASSWORD_HASH.
func HashPassword(pw string) (string, error) {
	if !isValidPassword(pw) {
		return "", ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func isValidPassword(pw string) bool {
	pw = strings.TrimSpace(pw)
	return len(pw) >= minPasswordLength
}
