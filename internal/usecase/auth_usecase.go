package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/pkg/jwt"
	ucauth "github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/usecase/auth"
)

var ErrAuthDisabled = errors.New("admin login disabled")

type AdminToken struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type AuthUsecase interface {
	Login(ctx context.Context, in ucauth.LoginInput) (AdminToken, error)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
	metrics *Metrics
	logger  *log.Logger
}

func NewAuthUsecase(authSvc *ucauth.Service, jwtSvc jwt.Service, metrics *Metrics, logger *log.Logger) *Auth {
	return &Auth{authSvc: authSvc, jwt: jwtSvc, metrics: metrics, logger: logger}
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (AdminToken, error) {
	if err := ctx.Err(); err != nil {
		return AdminToken{}, err
	}
	if u.jwt == nil {
		u.metrics.login("disabled")
		return AdminToken{}, ErrAuthDisabled
	}

	username, err := u.authSvc.Authenticate(in)
	if err != nil {
		switch {
		case errors.Is(err, ucauth.ErrDisabled):
			u.metrics.login("disabled")
			return AdminToken{}, ErrAuthDisabled
		case errors.Is(err, ucauth.ErrInvalidCredentials):
			u.metrics.login("rejected")
			if u.logger != nil {
				u.logger.Printf("[Auth] Login rejected username=%q", in.Username)
			}
			return AdminToken{}, ErrUnauthorized
		default:
			u.metrics.login("error")
			return AdminToken{}, ErrInternal
		}
	}

	tok, exp, err := u.jwt.GenerateAdminToken(username)
	if err != nil {
		u.metrics.login("error")
		return AdminToken{}, ErrInternal
	}
	u.metrics.login("ok")
	return AdminToken{AccessToken: tok, ExpiresAt: exp}, nil
}
