package handler

import (
	"context"
	"sort"
	"time"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	appName string
	checks  map[string]HealthCheck
}

type healthResponse struct {
	App    string            `json:"app"`
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func NewHealthHandler(appName string, checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{appName: appName, checks: checks}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health always answers 200: degraded dependencies have fallbacks, so they
// are reported rather than failing the probe.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	res := healthResponse{App: h.appName, Status: "ok", Checks: map[string]string{}}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			res.Checks[name] = "degraded: " + err.Error()
			res.Status = "degraded"
			continue
		}
		res.Checks[name] = "ok"
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
