package usecase

import (
	"context"
	"time"
)

// QueryCache is the shared result cache consulted before the engine runs a
// query. Implementations bypass silently when their backend is down.
type QueryCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) (int, error)
}
