package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/cache"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/config"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/database"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/database/migration"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/database/migrations"
	dbpostgres "github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/database/postgres"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/database/seeder"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
	infracache "github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/infrastructure/cache"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/loader"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/pkg/jwt"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/preference"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/query"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/repository"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/storage"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/usecase"
	ucauth "github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/usecase/auth"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/validation"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/ws"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Container struct {
	Config config.Config
	Logger *log.Logger

	// DB is nil unless content or preferences live in Postgres.
	DB       database.DB
	Cache    *infracache.Redis
	Storage  storage.Storage
	Registry *prometheus.Registry
	Metrics  *usecase.Metrics
	Hub      *ws.Hub
	JWT      jwt.Service

	Content     *usecase.Content
	Preferences *usecase.Preferences
	Auth        *usecase.Auth

	closers []func() error
}

func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}
	c := &Container{Config: cfg, Logger: logger}

	if needsDatabase(cfg) {
		if err := c.openDatabase(ctx); err != nil {
			_ = c.Close()
			return nil, err
		}
	}

	c.Cache = infracache.NewRedis(ctx, cfg.Redis, logger)
	c.closers = append(c.closers, c.Cache.Close)

	st, err := c.openStorage(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Storage = st

	data, err := c.loadContent(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	c.Registry = prometheus.NewRegistry()
	c.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.Metrics = usecase.NewMetrics(c.Registry)

	c.Hub = ws.NewHub(logger)
	notifier := ws.NewNotifier(c.Hub)

	opts := []usecase.ContentOption{
		usecase.WithContentMetrics(c.Metrics),
		usecase.WithContentNotifier(notifier),
		usecase.WithContentLogger(logger),
	}
	if c.Cache.Available() {
		opts = append(opts, usecase.WithQueryCache(c.Cache, cfg.Redis.TTL))
	}
	c.Content = usecase.NewContentUsecase(query.NewEngine(data), cache.NewSnapshots[*usecase.CompositeSnapshot](), opts...)

	store := preference.NewStore(c.Storage, cfg.Storage.Namespace, logger)
	if _, err := store.Load(ctx); err != nil {
		logger.Printf("[Preferences] load failed, using defaults: %v", err)
	}
	c.Preferences = usecase.NewPreferencesUsecase(store, notifier, c.Metrics, logger)

	if cfg.Auth.Enabled() {
		c.JWT = jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.App.AppName, cfg.Auth.TokenTTL)
	} else {
		logger.Printf("[Auth] admin credentials not configured, admin API disabled")
	}
	c.Auth = usecase.NewAuthUsecase(
		ucauth.NewService(cfg.Auth.AdminUsername, cfg.Auth.AdminPasswordHash),
		c.JWT,
		c.Metrics,
		logger,
	)

	return c, nil
}

func needsDatabase(cfg config.Config) bool {
	return cfg.Content.Source == config.ContentSourcePostgres || cfg.Storage.Driver == config.StorageDriverPostgres
}

func (c *Container) openDatabase(ctx context.Context) error {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, c.Config.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	c.DB = db
	c.closers = append(c.closers, db.Close)

	n, err := migration.Runner{FS: migrations.FS, Logger: c.Logger}.Run(ctx, db.SQLDB())
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	c.Logger.Printf("[DB] migrations applied=%d", n)
	return nil
}

func (c *Container) openStorage(ctx context.Context) (storage.Storage, error) {
	switch c.Config.Storage.Driver {
	case config.StorageDriverSQLite:
		s, err := storage.OpenSQLite(ctx, c.Config.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, s.Close)
		return s, nil
	case config.StorageDriverRedis:
		client := c.Cache.Client()
		if client == nil {
			c.Logger.Printf("[Preferences] redis unavailable, keeping preferences in memory")
			return storage.NewMemory(), nil
		}
		return storage.NewRedis(client, ""), nil
	case config.StorageDriverPostgres:
		return storage.NewPostgres(c.DB), nil
	default:
		return storage.NewMemory(), nil
	}
}

func (c *Container) loadContent(ctx context.Context) (data content.Collections, err error) {
	var src loader.Loader
	switch c.Config.Content.Source {
	case config.ContentSourceFile:
		src = loader.File{Path: c.Config.Content.Path}
	case config.ContentSourcePostgres:
		src = loader.Postgres{Repo: repository.NewPostgresContentRepository(c.DB)}
	default:
		src = loader.Static{}
	}

	l := loader.Validated{Next: src, Validator: validation.New(), Logger: c.Logger}
	data, err = l.Load(ctx)
	if errors.Is(err, repository.ErrNoContent) {
		c.Logger.Printf("[Content] database empty, seeding built-in portfolio")
		if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, c.DB); err != nil {
			return data, fmt.Errorf("seed content: %w", err)
		}
		data, err = l.Load(ctx)
	}
	if err != nil {
		return data, fmt.Errorf("load content: %w", err)
	}
	return data, nil
}

// Close releases resources in reverse order of acquisition.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
