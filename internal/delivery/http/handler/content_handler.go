package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/delivery/http/middleware"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/pkg/response"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ContentHandler struct {
	uc usecase.ContentUsecase
}

func NewContentHandler(uc usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

func (h *ContentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.Profile)
	r.Get("/skills", h.Skills)
	r.Get("/projects", h.Projects)
	r.Get("/categories", h.Categories)
	r.Get("/tournaments", h.Tournaments)
	r.Get("/achievements", h.Achievements)
	r.Get("/stats", h.Stats)
	r.Get("/data", h.Data)
}

func (h *ContentHandler) Profile(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.Profile())
}

func (h *ContentHandler) Categories(c fiber.Ctx) error {
	return response.List(c, h.uc.Categories())
}

func (h *ContentHandler) Skills(c fiber.Ctx) error {
	items, err := h.uc.Skills(c.Context(), parseSkillQuery(c))
	if err != nil {
		return mapContentUsecaseError(err)
	}
	return response.List(c, items)
}

func (h *ContentHandler) Projects(c fiber.Ctx) error {
	items, err := h.uc.Projects(c.Context(), parseProjectQuery(c))
	if err != nil {
		return mapContentUsecaseError(err)
	}
	return response.List(c, items)
}

func (h *ContentHandler) Tournaments(c fiber.Ctx) error {
	items, err := h.uc.Tournaments(c.Context(), parseTournamentQuery(c))
	if err != nil {
		return mapContentUsecaseError(err)
	}
	return response.List(c, items)
}

func (h *ContentHandler) Achievements(c fiber.Ctx) error {
	items, err := h.uc.Achievements(c.Context(), parseAchievementQuery(c))
	if err != nil {
		return mapContentUsecaseError(err)
	}
	return response.List(c, items)
}

func (h *ContentHandler) Stats(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.Stats())
}

// Data serves the composite snapshot; ?cache=false forces a fresh one.
func (h *ContentHandler) Data(c fiber.Ctx) error {
	useCache := true
	if raw := c.Query("cache"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			useCache = v
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.AllData(useCache))
}

func mapContentUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Request canceled", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
