package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles requests per client IP with a token bucket.
type RateLimitMiddleware struct {
	limit rate.Limit
	burst int
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	clients map[string]*limiterEntry
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimitMiddleware allows burst requests at once and one more every
// interval per IP. Idle clients are forgotten after ttl.
func NewRateLimitMiddleware(interval time.Duration, burst int, ttl time.Duration) *RateLimitMiddleware {
	if burst <= 0 {
		burst = 1
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RateLimitMiddleware{
		limit:   rate.Every(interval),
		burst:   burst,
		ttl:     ttl,
		now:     time.Now,
		clients: map[string]*limiterEntry{},
	}
}

func (m *RateLimitMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if !m.allow(c.IP()) {
			return NewAppError(fiber.StatusTooManyRequests, "Too many requests", nil, nil)
		}
		return c.Next()
	}
}

func (m *RateLimitMiddleware) allow(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for k, e := range m.clients {
		if now.Sub(e.lastSeen) > m.ttl {
			delete(m.clients, k)
		}
	}

	e, ok := m.clients[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.clients[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}
