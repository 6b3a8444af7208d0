package cache

import (
	"bytes"
	"context"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/config"

	"github.com/redis/go-redis/v9"
)

func TestRedis_DisabledBypasses(t *testing.T) {
	var buf bytes.Buffer
	r := NewRedis(context.Background(), config.RedisConfig{}, log.New(&buf, "", 0))

	if r.Available() {
		t.Fatalf("expected bypassing cache")
	}
	if r.Client() != nil {
		t.Fatalf("expected nil client")
	}

	var out map[string]int
	hit, err := r.GetJSON(context.Background(), "k", &out)
	if err != nil || hit {
		t.Fatalf("expected miss without error, got hit=%v err=%v", hit, err)
	}
	if err := r.SetJSON(context.Background(), "k", map[string]int{"a": 1}, 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n, err := r.DeleteByPattern(context.Background(), "k*"); err != nil || n != 0 {
		t.Fatalf("unexpected delete result n=%d err=%v", n, err)
	}
	if err := r.Ping(context.Background()); err != ErrUnavailable {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if !strings.Contains(buf.String(), "[Cache]") {
		t.Fatalf("expected bypass log line, got %q", buf.String())
	}
}

func TestRedis_NilReceiver(t *testing.T) {
	var r *Redis
	if err := r.Delete(context.Background(), "k"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestRedis_RoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	r := NewRedisWithClient(client, time.Minute, nil)
	defer r.Close()

	key := "portfolio:test:" + time.Now().Format("150405.000000")
	if err := r.SetJSON(ctx, key, []string{"a", "b"}, 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	var got []string
	hit, err := r.GetJSON(ctx, key, &got)
	if err != nil || !hit || len(got) != 2 {
		t.Fatalf("unexpected get hit=%v err=%v got=%v", hit, err, got)
	}
	n, err := r.DeleteByPattern(ctx, key+"*")
	if err != nil || n != 1 {
		t.Fatalf("unexpected delete n=%d err=%v", n, err)
	}
}
