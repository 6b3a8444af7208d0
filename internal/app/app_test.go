package app

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		App:     config.AppConfig{AppName: "portfolio-test", Environment: "test", HTTPPort: "0", WSPort: "0"},
		Content: config.ContentConfig{Source: config.ContentSourceStatic},
		Storage: config.StorageConfig{Driver: config.StorageDriverMemory, Namespace: "test"},
		Redis:   config.RedisConfig{TTL: time.Minute},
	}
}

func bootstrap(t *testing.T, cfg config.Config) *App {
	t.Helper()
	a, cleanup, err := Bootstrap(context.Background(), cfg, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	t.Cleanup(func() { _ = cleanup() })
	return a
}

func get(t *testing.T, a *App, method, target string) (*http.Response, string) {
	t.Helper()
	res, err := a.Fiber.Test(httptest.NewRequest(method, target, nil))
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer res.Body.Close()
	b, _ := io.ReadAll(res.Body)
	return res, string(b)
}

func TestBootstrap_ServesContentAndMetrics(t *testing.T) {
	a := bootstrap(t, testConfig())

	if res, _ := get(t, a, http.MethodGet, "/health"); res.StatusCode != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", res.StatusCode)
	}
	if res, _ := get(t, a, http.MethodGet, "/api/v1/skills?limit=1"); res.StatusCode != http.StatusOK {
		t.Fatalf("skills: expected 200, got %d", res.StatusCode)
	}

	res, body := get(t, a, http.MethodGet, "/metrics")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", res.StatusCode)
	}
	if !strings.Contains(body, "portfolio_query_requests_total") {
		t.Fatalf("expected query counter in metrics output")
	}
}

func TestBootstrap_AdminDisabledWithoutCredentials(t *testing.T) {
	a := bootstrap(t, testConfig())

	if res, _ := get(t, a, http.MethodPost, "/api/v1/auth/login"); res.StatusCode != http.StatusBadRequest && res.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("login: unexpected status %d", res.StatusCode)
	}
	if res, _ := get(t, a, http.MethodPost, "/api/v1/admin/cache/clear"); res.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("admin: expected 503, got %d", res.StatusCode)
	}
}

func TestBootstrap_FileSourceMissingFails(t *testing.T) {
	cfg := testConfig()
	cfg.Content = config.ContentConfig{Source: config.ContentSourceFile, Path: "/nonexistent/content.yaml"}

	if _, _, err := Bootstrap(context.Background(), cfg, log.New(io.Discard, "", 0)); err == nil {
		t.Fatalf("expected load failure")
	}
}

func TestBootstrap_WSServerOnlyWithPort(t *testing.T) {
	cfg := testConfig()
	if a := bootstrap(t, cfg); a.WS == nil || a.WS.Addr != ":0" {
		t.Fatalf("expected ws server on :0")
	}

	cfg.App.WSPort = ""
	if a := bootstrap(t, cfg); a.WS != nil {
		t.Fatalf("expected no ws server")
	}
}

func TestListenAddr(t *testing.T) {
	cases := map[string]string{"8080": ":8080", ":9090": ":9090", " 80 ": ":80"}
	for in, want := range cases {
		got, err := ListenAddr(in)
		if err != nil || got != want {
			t.Fatalf("ListenAddr(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ListenAddr(" "); err == nil {
		t.Fatalf("expected error for empty port")
	}
}
