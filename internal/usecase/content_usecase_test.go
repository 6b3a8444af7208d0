package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/cache"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/dataset"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/query"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type mockQueryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	hits    int
	sets    int
	getErr  error
	delErr  error
}

func newMockQueryCache() *mockQueryCache {
	return &mockQueryCache{entries: map[string][]byte{}}
}

func (m *mockQueryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return false, m.getErr
	}
	b, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	m.hits++
	return true, json.Unmarshal(b, out)
}

func (m *mockQueryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = b
	m.sets++
	return nil
}

func (m *mockQueryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *mockQueryCache) DeleteByPattern(_ context.Context, pattern string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.delErr != nil {
		return 0, m.delErr
	}
	n := 0
	for k := range m.entries {
		if ok, _ := path.Match(pattern, k); ok {
			delete(m.entries, k)
			n++
		}
	}
	return n, nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	updated []string
	resets  int
	cleared []string
}

func (n *recordingNotifier) PreferencesUpdated(key string, _ any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.updated = append(n.updated, key)
}

func (n *recordingNotifier) PreferencesReset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.resets++
}

func (n *recordingNotifier) CacheCleared(key string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cleared = append(n.cleared, key)
}

func newTestContent(opts ...ContentOption) *Content {
	return NewContentUsecase(query.NewEngine(dataset.Default()), cache.NewSnapshots[*CompositeSnapshot](), opts...)
}

func TestContent_AllDataCachedReturnsSamePointer(t *testing.T) {
	uc := newTestContent()

	a := uc.AllData(true)
	b := uc.AllData(true)
	if a != b {
		t.Fatalf("expected the same snapshot pointer")
	}
	if len(a.Skills) != len(dataset.Default().Skills) {
		t.Fatalf("unexpected skill count %d", len(a.Skills))
	}
	if a.Stats.TotalSkills != len(a.Skills) {
		t.Fatalf("stats disagree with snapshot")
	}
}

func TestContent_AllDataUncachedIsFreshEveryTime(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	uc := newTestContent(WithContentClock(func() time.Time { return fixed }))

	a := uc.AllData(false)
	b := uc.AllData(false)
	if a == b {
		t.Fatalf("expected distinct snapshots")
	}
	if !b.GeneratedAt.After(a.GeneratedAt) {
		t.Fatalf("expected increasing timestamps, got %s then %s", a.GeneratedAt, b.GeneratedAt)
	}

	cached := uc.AllData(true)
	if cached == a || cached == b {
		t.Fatalf("uncached snapshots must not populate the memo")
	}
	if uc.AllData(true) != cached {
		t.Fatalf("expected memoized snapshot")
	}
}

func TestContent_ClearCacheRecomputesSnapshot(t *testing.T) {
	qc := newMockQueryCache()
	n := &recordingNotifier{}
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	uc := newTestContent(WithQueryCache(qc, time.Minute), WithContentNotifier(n), WithContentMetrics(m))
	ctx := context.Background()

	before := uc.AllData(true)
	if _, err := uc.Skills(ctx, query.SkillQuery{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(qc.entries) != 1 {
		t.Fatalf("expected one cached query, got %d", len(qc.entries))
	}

	if err := uc.ClearCache(ctx); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(qc.entries) != 0 {
		t.Fatalf("expected query cache emptied")
	}
	if uc.AllData(true) == before {
		t.Fatalf("expected a recomputed snapshot after clear")
	}
	if len(n.cleared) != 1 || n.cleared[0] != "" {
		t.Fatalf("unexpected notifications %v", n.cleared)
	}
	if got := testutil.ToFloat64(m.cacheClears); got != 1 {
		t.Fatalf("expected 1 clear recorded, got %v", got)
	}
}

func TestContent_ClearCacheBackendFailure(t *testing.T) {
	qc := newMockQueryCache()
	qc.delErr = errors.New("connection refused")
	uc := newTestContent(WithQueryCache(qc, 0))

	if err := uc.ClearCache(context.Background()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestContent_ClearCacheEntry(t *testing.T) {
	qc := newMockQueryCache()
	uc := newTestContent(WithQueryCache(qc, time.Minute))
	ctx := context.Background()

	if _, err := uc.Skills(ctx, query.SkillQuery{Search: "go"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Projects(ctx, query.ProjectQuery{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	snap := uc.AllData(true)

	if err := uc.ClearCacheEntry(ctx, QueryKindSkills); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(qc.entries) != 1 {
		t.Fatalf("expected only the projects result to remain, got %d", len(qc.entries))
	}
	if uc.AllData(true) != snap {
		t.Fatalf("clearing a query kind must keep the snapshot")
	}

	if err := uc.ClearCacheEntry(ctx, SnapshotKeyAllData); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if uc.AllData(true) == snap {
		t.Fatalf("expected snapshot dropped")
	}

	if err := uc.ClearCacheEntry(ctx, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestContent_QueryServedFromCache(t *testing.T) {
	qc := newMockQueryCache()
	uc := newTestContent(WithQueryCache(qc, time.Minute))
	ctx := context.Background()
	medal := content.MedalGold

	first, err := uc.Tournaments(ctx, query.TournamentQuery{Achievement: &medal})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := uc.Tournaments(ctx, query.TournamentQuery{Achievement: &medal})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if qc.sets != 1 || qc.hits != 1 {
		t.Fatalf("expected one set and one hit, got sets=%d hits=%d", qc.sets, qc.hits)
	}
	if len(first) != len(second) {
		t.Fatalf("cached result differs: %d vs %d", len(first), len(second))
	}
	for _, tr := range second {
		if tr.Achievement != content.MedalGold {
			t.Fatalf("unexpected medal %q", tr.Achievement)
		}
	}
}

func TestContent_QueryCacheErrorFallsBackToEngine(t *testing.T) {
	qc := newMockQueryCache()
	qc.getErr = errors.New("timeout")
	uc := newTestContent(WithQueryCache(qc, time.Minute))

	items, err := uc.Achievements(context.Background(), query.AchievementQuery{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != len(dataset.Default().Achievements()) {
		t.Fatalf("unexpected achievement count %d", len(items))
	}
}

func TestContent_CanceledContext(t *testing.T) {
	uc := newTestContent()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := uc.Skills(ctx, query.SkillQuery{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestContent_CacheKeysNormalizeSearch(t *testing.T) {
	fp := Fingerprint(dataset.Default())
	a := SkillsCacheKey(fp, query.SkillQuery{Search: "  React "})
	b := SkillsCacheKey(fp, query.SkillQuery{Search: "react"})
	if a != b {
		t.Fatalf("expected normalized keys to match")
	}
	c := SkillsCacheKey(fp, query.SkillQuery{Search: "react", Sort: query.Sort{By: "name"}})
	if a == c {
		t.Fatalf("expected sort to change the key")
	}
	if SkillsCacheKey("other", query.SkillQuery{}) == SkillsCacheKey(fp, query.SkillQuery{}) {
		t.Fatalf("expected fingerprint to change the key")
	}
}

func TestContent_ValidateDefaultDataset(t *testing.T) {
	rep := newTestContent().Validate()
	if !rep.Valid {
		t.Fatalf("expected valid dataset, got %v", rep.Errors)
	}
	if len(rep.Warnings) == 0 {
		t.Fatalf("expected consistency warnings for the default dataset")
	}
}
