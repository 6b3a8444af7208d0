package handler

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/delivery/http/middleware"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/pkg/response"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PreferencesHandler struct {
	uc usecase.PreferencesUsecase
}

type updatePreferenceRequest struct {
	Value json.RawMessage `json:"value"`
}

type preferenceResponse struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

func NewPreferencesHandler(uc usecase.PreferencesUsecase) *PreferencesHandler {
	return &PreferencesHandler{uc: uc}
}

func (h *PreferencesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/preferences")
	grp.Get("/", h.All)
	grp.Post("/reset", h.Reset)
	grp.Get("/:key", h.Get)
	grp.Put("/:key", h.Update)
}

func (h *PreferencesHandler) All(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.All())
}

func (h *PreferencesHandler) Get(c fiber.Ctx) error {
	key := c.Params("key")
	v, err := h.uc.Get(key)
	if err != nil {
		return mapPreferencesUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, preferenceResponse{Key: key, Value: v})
}

// Update expects {"value": <any JSON value>}; a missing value is rejected.
func (h *PreferencesHandler) Update(c fiber.Ctx) error {
	var req updatePreferenceRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	raw := bytes.TrimSpace(req.Value)
	if len(raw) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing value", nil, nil)
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Update(c.Context(), c.Params("key"), value)
	if err != nil {
		return mapPreferencesUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, preferenceWriteMessage(res), res)
}

func (h *PreferencesHandler) Reset(c fiber.Ctx) error {
	res, err := h.uc.Reset(c.Context())
	if err != nil {
		return mapPreferencesUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, preferenceWriteMessage(res), res)
}

func preferenceWriteMessage(res usecase.PreferenceWrite) string {
	if res.Persisted {
		return "Preferences saved"
	}
	return "Preferences applied but not persisted"
}

func mapPreferencesUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Preference not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
