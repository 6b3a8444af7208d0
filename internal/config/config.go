package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Content  ContentConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	WSPort      string
	CORSOrigins []string
}

const (
	ContentSourceStatic   = "static"
	ContentSourceFile     = "file"
	ContentSourcePostgres = "postgres"
)

type ContentConfig struct {
	Source string
	Path   string
}

const (
	StorageDriverMemory   = "memory"
	StorageDriverSQLite   = "sqlite"
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
)

type StorageConfig struct {
	Driver     string
	SQLitePath string
	Namespace  string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

// Configured reports whether enough is set to attempt a connection.
func (c DatabaseConfig) Configured() bool {
	return c.DBHost != "" && c.DBName != ""
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type AuthConfig struct {
	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string
	TokenTTL          time.Duration
}

// Enabled reports whether the admin API can issue and verify tokens.
func (c AuthConfig) Enabled() bool {
	return c.AdminUsername != "" && c.AdminPasswordHash != "" && c.JWTSecret != ""
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optDefault := func(key, def string) string {
		if v := opt(key); v != "" {
			return v
		}
		return def
	}
	optInt := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optSeconds := func(key string, def time.Duration) time.Duration {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			invalid = append(invalid, key)
			return def
		}
		return time.Duration(v) * time.Second
	}
	oneOf := func(key, def string, allowed ...string) string {
		v := strings.ToLower(optDefault(key, def))
		for _, a := range allowed {
			if v == a {
				return v
			}
		}
		invalid = append(invalid, key)
		return def
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		WSPort:      opt("WS_PORT"),
		CORSOrigins: splitList(opt("CORS_ORIGINS")),
	}

	cfg.Content = ContentConfig{
		Source: oneOf("CONTENT_SOURCE", ContentSourceStatic, ContentSourceStatic, ContentSourceFile, ContentSourcePostgres),
		Path:   opt("CONTENT_PATH"),
	}

	cfg.Storage = StorageConfig{
		Driver:     oneOf("STORAGE_DRIVER", StorageDriverMemory, StorageDriverMemory, StorageDriverSQLite, StorageDriverRedis, StorageDriverPostgres),
		SQLitePath: optDefault("STORAGE_SQLITE_PATH", "portfolio.db"),
		Namespace:  optDefault("STORAGE_NAMESPACE", "gaming-portfolio"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     optDefault("DB_PORT", "5432"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  optDefault("DB_SSL_MODE", "disable"),

		ConnectTimeout:        optSeconds("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optSeconds("DB_POOL_MAX_CONN_LIFETIME", time.Hour),
		PoolMaxConnIdleTime:   optSeconds("DB_POOL_MAX_CONN_IDLE_TIME", 30*time.Minute),
		PoolHealthCheckPeriod: optSeconds("DB_POOL_HEALTH_CHECK_PERIOD", time.Minute),
	}

	cfg.Redis = RedisConfig{
		Enabled:  opt("REDIS_HOST") != "",
		Host:     optDefault("REDIS_HOST", "localhost"),
		Port:     optDefault("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
		DB:       optInt("REDIS_DB", 0),
		TTL:      optSeconds("REDIS_TTL", 600*time.Second),
	}

	cfg.Auth = AuthConfig{
		AdminUsername:     opt("ADMIN_USERNAME"),
		AdminPasswordHash: opt("ADMIN_PASSWORD_HASH"),
		JWTSecret:         opt("JWT_SECRET"),
		TokenTTL:          optSeconds("JWT_TTL", time.Hour),
	}

	if cfg.Content.Source == ContentSourceFile && cfg.Content.Path == "" {
		missing = append(missing, "CONTENT_PATH")
	}
	if cfg.Content.Source == ContentSourcePostgres || cfg.Storage.Driver == StorageDriverPostgres {
		if cfg.Database.DBHost == "" {
			missing = append(missing, "DB_HOST")
		}
		if cfg.Database.DBName == "" {
			missing = append(missing, "DB_NAME")
		}
	}
	if cfg.Storage.Driver == StorageDriverRedis && !cfg.Redis.Enabled {
		missing = append(missing, "REDIS_HOST")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
