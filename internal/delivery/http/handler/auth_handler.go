package handler

import (
	"errors"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/delivery/http/middleware"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/pkg/response"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/usecase"
	ucauth "github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc      usecase.AuthUsecase
	limiter fiber.Handler
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewAuthHandler wraps login with limiter when one is given.
func NewAuthHandler(uc usecase.AuthUsecase, limiter fiber.Handler) *AuthHandler {
	return &AuthHandler{uc: uc, limiter: limiter}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/auth")
	if h.limiter != nil {
		grp.Post("/login", h.limiter, h.Login)
		return
	}
	grp.Post("/login", h.Login)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	tok, err := h.uc.Login(c.Context(), ucauth.LoginInput{Username: req.Username, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, tok)
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrAuthDisabled):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Admin API disabled", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
