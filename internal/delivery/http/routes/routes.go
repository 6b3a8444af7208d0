package routes

import (
	"net/http"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/delivery/http/handler"
	v1 "github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

type Registry struct {
	health  *handler.HealthHandler
	metrics http.Handler
	v1      v1.Handlers
}

// NewRegistry mounts /metrics only when metrics is non-nil.
func NewRegistry(health *handler.HealthHandler, metrics http.Handler, api v1.Handlers) *Registry {
	return &Registry{health: health, metrics: metrics, v1: api}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerMetrics(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerMetrics(app *fiber.App) {
	if r.metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(r.metrics))
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1)
}
