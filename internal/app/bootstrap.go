package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/config"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/delivery/http/handler"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/delivery/http/middleware"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/delivery/http/routes"
	v1 "github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/delivery/http/routes/v1"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	Fiber *fiber.App
	// WS serves the event feed; nil when WS_PORT is unset.
	WS        *http.Server
	Container *Container
}

func New(c *Container) *App {
	cfg := c.Config
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, cfg, c.Logger)
	registerRoutes(f, c)

	a := &App{Fiber: f, Container: c}
	if cfg.App.WSPort != "" {
		addr, err := ListenAddr(cfg.App.WSPort)
		if err == nil {
			a.WS = &http.Server{
				Addr:              addr,
				Handler:           ws.NewMux(ws.NewHandler(c.Hub, cfg.App.CORSOrigins, c.Logger)),
				ReadHeaderTimeout: 10 * time.Second,
			}
		}
	}
	return a
}

func Bootstrap(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger *log.Logger) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())

	corsCfg := cors.Config{}
	if len(cfg.App.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.App.CORSOrigins
	}
	app.Use(cors.New(corsCfg))
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	checks := map[string]handler.HealthCheck{}
	if c.DB != nil {
		checks["database"] = c.DB.Ping
	}
	if c.Config.Redis.Enabled {
		checks["redis"] = c.Cache.Ping
	}

	loginLimiter := middleware.NewRateLimitMiddleware(2*time.Second, 5, 10*time.Minute)

	reg := routes.NewRegistry(
		handler.NewHealthHandler(c.Config.App.AppName, checks),
		promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{Registry: c.Registry}),
		v1.Handlers{
			Content:        handler.NewContentHandler(c.Content),
			Preferences:    handler.NewPreferencesHandler(c.Preferences),
			Auth:           handler.NewAuthHandler(c.Auth, loginLimiter.Middleware()),
			Admin:          handler.NewAdminHandler(c.Content),
			AuthMiddleware: middleware.NewAuthMiddleware(c.JWT),
		},
	)
	reg.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
