package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/pkg/jwt"
	ucauth "github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/usecase/auth"
)

func newTestAuth(t *testing.T) *Auth {
	t.Helper()
	hash, err := ucauth.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return NewAuthUsecase(
		ucauth.NewService("admin", hash),
		jwt.NewHMACService("secret", "portfolio", time.Hour),
		nil,
		nil,
	)
}

func TestAuth_LoginSuccess(t *testing.T) {
	uc := newTestAuth(t)

	tok, err := uc.Login(context.Background(), ucauth.LoginInput{Username: "admin", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tok.AccessToken == "" || tok.ExpiresAt.IsZero() {
		t.Fatalf("expected token, got %+v", tok)
	}
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	uc := newTestAuth(t)

	_, err := uc.Login(context.Background(), ucauth.LoginInput{Username: "admin", Password: "wrong-horse"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuth_LoginDisabled(t *testing.T) {
	uc := NewAuthUsecase(ucauth.NewService("", ""), jwt.NewHMACService("secret", "", time.Hour), nil, nil)

	_, err := uc.Login(context.Background(), ucauth.LoginInput{Username: "admin", Password: "whatever1"})
	if !errors.Is(err, ErrAuthDisabled) {
		t.Fatalf("expected ErrAuthDisabled, got %v", err)
	}
}

func TestHashPassword_TooShort(t *testing.T) {
	if _, err := ucauth.HashPassword("short"); !errors.Is(err, ucauth.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
