package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "portfolio")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("CONTENT_SOURCE", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_TTL", "")
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
	for _, k := range []string{"APP_NAME", "APP_ENV", "HTTP_PORT"} {
		if !strings.Contains(err.Error(), k) {
			t.Fatalf("expected %s in error, got %q", k, err.Error())
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Content.Source != ContentSourceStatic {
		t.Fatalf("expected static source, got %q", cfg.Content.Source)
	}
	if cfg.Storage.Driver != StorageDriverMemory {
		t.Fatalf("expected memory driver, got %q", cfg.Storage.Driver)
	}
	if cfg.Storage.Namespace != "gaming-portfolio" {
		t.Fatalf("unexpected namespace %q", cfg.Storage.Namespace)
	}
	if cfg.Redis.Enabled {
		t.Fatalf("expected redis disabled without REDIS_HOST")
	}
	if cfg.Redis.TTL != 600*time.Second {
		t.Fatalf("unexpected ttl %s", cfg.Redis.TTL)
	}
	if len(cfg.App.CORSOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.App.CORSOrigins)
	}
}

func TestLoad_FileSourceRequiresPath(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CONTENT_SOURCE", "file")
	t.Setenv("CONTENT_PATH", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) || !strings.Contains(err.Error(), "CONTENT_PATH") {
		t.Fatalf("expected missing CONTENT_PATH, got %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORAGE_DRIVER", "floppy")
	t.Setenv("REDIS_TTL", "soon")

	_, err := Load()
	if !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected errInvalidEnv, got %v", err)
	}
	if !strings.Contains(err.Error(), "STORAGE_DRIVER") || !strings.Contains(err.Error(), "REDIS_TTL") {
		t.Fatalf("unexpected error %q", err.Error())
	}
}

func TestAuthConfig_Enabled(t *testing.T) {
	if (AuthConfig{AdminUsername: "admin", JWTSecret: "s"}).Enabled() {
		t.Fatalf("expected disabled without password hash")
	}
	if !(AuthConfig{AdminUsername: "admin", AdminPasswordHash: "h", JWTSecret: "s"}).Enabled() {
		t.Fatalf("expected enabled")
	}
}
