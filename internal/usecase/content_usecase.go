package usecase

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/cache"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/query"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/validation"
)

// SnapshotKeyAllData names the composite snapshot in the snapshot cache.
const SnapshotKeyAllData = "all-data"

// CompositeSnapshot bundles every collection with the time it was built.
// Cached snapshots are shared between callers and must not be modified.
type CompositeSnapshot struct {
	Profile      content.UserProfile   `json:"profile"`
	Skills       []content.Skill       `json:"skills"`
	Projects     []content.Project     `json:"projects"`
	Categories   []content.Category    `json:"categories"`
	Tournaments  []content.Tournament  `json:"tournaments"`
	Achievements []content.Achievement `json:"achievements"`
	Stats        query.StatsSnapshot   `json:"stats"`
	GeneratedAt  time.Time             `json:"generatedAt"`
}

type ContentUsecase interface {
	Profile() content.UserProfile
	Categories() []content.Category
	Skills(ctx context.Context, q query.SkillQuery) ([]content.Skill, error)
	Projects(ctx context.Context, q query.ProjectQuery) ([]content.Project, error)
	Tournaments(ctx context.Context, q query.TournamentQuery) ([]content.Tournament, error)
	Achievements(ctx context.Context, q query.AchievementQuery) ([]content.Achievement, error)
	Stats() query.StatsSnapshot
	AllData(useCache bool) *CompositeSnapshot
	ClearCache(ctx context.Context) error
	ClearCacheEntry(ctx context.Context, key string) error
	Validate() validation.Report
}

type ContentOption func(*Content)

func WithContentClock(now func() time.Time) ContentOption {
	return func(c *Content) {
		if now != nil {
			c.now = now
		}
	}
}

func WithQueryCache(qc QueryCache, ttl time.Duration) ContentOption {
	return func(c *Content) {
		c.cache = qc
		c.ttl = ttl
	}
}

func WithContentMetrics(m *Metrics) ContentOption {
	return func(c *Content) { c.metrics = m }
}

func WithContentNotifier(n Notifier) ContentOption {
	return func(c *Content) {
		if n != nil {
			c.notifier = n
		}
	}
}

func WithContentLogger(logger *log.Logger) ContentOption {
	return func(c *Content) { c.logger = logger }
}

type Content struct {
	engine      *query.Engine
	validator   *validation.Validator
	snapshots   *cache.Snapshots[*CompositeSnapshot]
	cache       QueryCache
	ttl         time.Duration
	fingerprint string
	metrics     *Metrics
	notifier    Notifier
	logger      *log.Logger
	now         func() time.Time

	stampMu   sync.Mutex
	lastStamp time.Time
}

func NewContentUsecase(engine *query.Engine, snapshots *cache.Snapshots[*CompositeSnapshot], opts ...ContentOption) *Content {
	if snapshots == nil {
		snapshots = cache.NewSnapshots[*CompositeSnapshot]()
	}
	c := &Content{
		engine:      engine,
		validator:   validation.New(),
		snapshots:   snapshots,
		fingerprint: Fingerprint(engine.Data()),
		notifier:    noopNotifier{},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (u *Content) Profile() content.UserProfile {
	return u.engine.Profile()
}

func (u *Content) Categories() []content.Category {
	return u.engine.Categories()
}

func (u *Content) Skills(ctx context.Context, q query.SkillQuery) ([]content.Skill, error) {
	return cachedQuery(ctx, u, QueryKindSkills, SkillsCacheKey(u.fingerprint, q), func() []content.Skill {
		return u.engine.Skills(q)
	})
}

func (u *Content) Projects(ctx context.Context, q query.ProjectQuery) ([]content.Project, error) {
	return cachedQuery(ctx, u, QueryKindProjects, ProjectsCacheKey(u.fingerprint, q), func() []content.Project {
		return u.engine.Projects(q)
	})
}

func (u *Content) Tournaments(ctx context.Context, q query.TournamentQuery) ([]content.Tournament, error) {
	return cachedQuery(ctx, u, QueryKindTournaments, TournamentsCacheKey(u.fingerprint, q), func() []content.Tournament {
		return u.engine.Tournaments(q)
	})
}

func (u *Content) Achievements(ctx context.Context, q query.AchievementQuery) ([]content.Achievement, error) {
	return cachedQuery(ctx, u, QueryKindAchievements, AchievementsCacheKey(u.fingerprint, q), func() []content.Achievement {
		return u.engine.Achievements(q)
	})
}

// cachedQuery serves a query from the shared cache when possible. Cache
// failures only cost a recomputation; they never fail the query.
func cachedQuery[T any](ctx context.Context, u *Content, kind, key string, run func() []T) ([]T, error) {
	started := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if u.cache == nil {
		out := run()
		u.metrics.observeQuery(kind, "bypass", started)
		return out, nil
	}

	var cached []T
	hit, err := u.cache.GetJSON(ctx, key, &cached)
	if err == nil && hit {
		u.logf("[Content] Cache HIT: %s", key)
		u.metrics.observeQuery(kind, "hit", started)
		return cached, nil
	}
	u.logf("[Content] Cache MISS: %s", key)

	out := run()
	if err := u.cache.SetJSON(ctx, key, out, u.ttl); err != nil {
		u.logf("[Content] Cache SET failed key=%s err=%v", key, err)
	}
	u.metrics.observeQuery(kind, "miss", started)
	return out, nil
}

func (u *Content) Stats() query.StatsSnapshot {
	return u.engine.ContentStats()
}

// AllData returns the composite snapshot. With useCache the memoized
// snapshot is returned as is, built on first use; without it a new snapshot
// is built and the memo is left untouched.
func (u *Content) AllData(useCache bool) *CompositeSnapshot {
	if !useCache {
		u.metrics.snapshot("bypass")
		return u.buildSnapshot()
	}

	snap, hit := u.snapshots.GetOrCompute(SnapshotKeyAllData, u.buildSnapshot)
	if hit {
		u.metrics.snapshot("hit")
	} else {
		u.metrics.snapshot("miss")
	}
	return snap
}

func (u *Content) buildSnapshot() *CompositeSnapshot {
	d := u.engine.Data()
	return &CompositeSnapshot{
		Profile:      d.Profile,
		Skills:       d.Skills,
		Projects:     d.Projects,
		Categories:   d.Categories,
		Tournaments:  d.Tournaments,
		Achievements: d.Achievements(),
		Stats:        u.engine.ContentStats(),
		GeneratedAt:  u.stamp(),
	}
}

// stamp returns a strictly increasing timestamp so successive snapshots are
// always distinguishable.
func (u *Content) stamp() time.Time {
	u.stampMu.Lock()
	defer u.stampMu.Unlock()
	t := u.now().UTC()
	if !t.After(u.lastStamp) {
		t = u.lastStamp.Add(time.Nanosecond)
	}
	u.lastStamp = t
	return t
}

// ClearCache drops every snapshot and every shared query result.
func (u *Content) ClearCache(ctx context.Context) error {
	dropped := u.snapshots.Clear()
	removed := 0
	if u.cache != nil {
		n, err := u.cache.DeleteByPattern(ctx, QueryCachePattern(""))
		if err != nil {
			u.logf("[Content] Cache clear failed: %v", err)
			return ErrInternal
		}
		removed = n
	}
	u.logf("[Content] Cache cleared snapshots=%d query_results=%d", dropped, removed)
	u.metrics.cacheCleared()
	u.notifier.CacheCleared("")
	return nil
}

// ClearCacheEntry drops one snapshot by name, or every cached result for a
// query kind when key names one.
func (u *Content) ClearCacheEntry(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrInvalidInput
	}

	u.snapshots.Delete(key)
	switch key {
	case QueryKindSkills, QueryKindProjects, QueryKindTournaments, QueryKindAchievements:
		if u.cache != nil {
			if _, err := u.cache.DeleteByPattern(ctx, QueryCachePattern(key)); err != nil {
				u.logf("[Content] Cache clear failed key=%s err=%v", key, err)
				return ErrInternal
			}
		}
	}
	u.logf("[Content] Cache entry cleared key=%s", key)
	u.metrics.cacheCleared()
	u.notifier.CacheCleared(key)
	return nil
}

func (u *Content) Validate() validation.Report {
	return u.validator.Collections(u.engine.Data())
}

func (u *Content) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
