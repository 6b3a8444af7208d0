package handler

import (
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/pkg/response"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// AdminHandler serves cache and validation endpoints. Routes are expected
// to sit behind the auth middleware.
type AdminHandler struct {
	uc usecase.ContentUsecase
}

func NewAdminHandler(uc usecase.ContentUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/cache/clear", h.ClearCache)
	r.Delete("/cache/:key", h.ClearCacheEntry)
	r.Get("/validation", h.Validation)
}

func (h *AdminHandler) ClearCache(c fiber.Ctx) error {
	if err := h.uc.ClearCache(c.Context()); err != nil {
		return mapContentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Cache cleared", nil)
}

func (h *AdminHandler) ClearCacheEntry(c fiber.Ctx) error {
	key := c.Params("key")
	if err := h.uc.ClearCacheEntry(c.Context(), key); err != nil {
		return mapContentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Cache entry cleared", map[string]string{"key": key})
}

func (h *AdminHandler) Validation(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.Validate())
}
