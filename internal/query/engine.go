// Package query filters, searches, sorts and aggregates the portfolio
// collections. Every operation is a pure read over the loaded dataset and
// returns freshly allocated slices.
package query

import (
	"time"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
)

type Engine struct {
	data content.Collections
	now  func() time.Time
}

type Option func(*Engine)

// WithClock replaces the clock used as the default upper bound of date ranges.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(data content.Collections, opts ...Option) *Engine {
	e := &Engine{data: data, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Data returns a copy of the collections the engine reads from.
func (e *Engine) Data() content.Collections {
	return e.data.Clone()
}

func (e *Engine) Profile() content.UserProfile {
	p := e.data.Profile
	p.Achievements = append([]content.Achievement(nil), p.Achievements...)
	return p
}

func (e *Engine) Categories() []content.Category {
	out := make([]content.Category, len(e.data.Categories))
	copy(out, e.data.Categories)
	return out
}

func applyLimit[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
