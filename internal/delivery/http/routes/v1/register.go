package v1

import (
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/delivery/http/handler"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Handlers is everything mounted under /api/v1. Nil entries are skipped.
type Handlers struct {
	Content     *handler.ContentHandler
	Preferences *handler.PreferencesHandler
	Auth        *handler.AuthHandler
	Admin       *handler.AdminHandler

	AuthMiddleware *middleware.AuthMiddleware
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Content != nil {
		h.Content.RegisterRoutes(r)
	}
	if h.Preferences != nil {
		h.Preferences.RegisterRoutes(r)
	}
	if h.Auth != nil {
		h.Auth.RegisterRoutes(r)
	}

	if h.Admin == nil {
		return
	}
	authMw := h.AuthMiddleware
	if authMw == nil {
		authMw = middleware.NewAuthMiddleware(nil)
	}
	protected := r.Group("/admin", authMw.Middleware())
	h.Admin.RegisterRoutes(protected)
}
