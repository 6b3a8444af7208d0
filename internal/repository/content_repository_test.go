package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/database"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/dataset"
)

type mockRows struct {
	rows [][]any
	i    int
	err  error
}

func (m *mockRows) Close()     {}
func (m *mockRows) Err() error { return m.err }
func (m *mockRows) Next() bool {
	if m.i >= len(m.rows) {
		return false
	}
	m.i++
	return true
}
func (m *mockRows) Scan(dest ...any) error {
	row := m.rows[m.i-1]
	*(dest[0].(*string)) = row[0].(string)
	*(dest[1].(*string)) = row[1].(string)
	*(dest[2].(*[]byte)) = []byte(row[2].(string))
	return nil
}

type execCall struct {
	query string
	args  []any
}

type mockTx struct {
	calls     []execCall
	committed bool
}

func (t *mockTx) Exec(_ context.Context, q string, args ...any) (int64, error) {
	t.calls = append(t.calls, execCall{query: q, args: args})
	return 1, nil
}
func (t *mockTx) Query(context.Context, string, ...any) (database.Rows, error) { return nil, nil }
func (t *mockTx) QueryRow(context.Context, string, ...any) database.Row        { return nil }
func (t *mockTx) Commit(context.Context) error {
	t.committed = true
	return nil
}
func (t *mockTx) Rollback(context.Context) error { return nil }

type mockDB struct {
	database.DB
	rows *mockRows
	tx   *mockTx
}

func (m mockDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return m.rows, nil
}

func (m mockDB) Begin(context.Context) (database.Tx, error) {
	return m.tx, nil
}

func TestPostgresContentRepository_ReplaceAllThenLoad(t *testing.T) {
	data := dataset.Default()
	tx := &mockTx{}
	repo := NewPostgresContentRepository(mockDB{tx: tx})

	if err := repo.ReplaceAll(context.Background(), data); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !tx.committed {
		t.Fatalf("expected commit")
	}

	want := 1 + len(data.Skills) + len(data.Projects) + len(data.Categories) + len(data.Tournaments) + len(data.GamingAchievements)
	if len(tx.calls) != want+1 {
		t.Fatalf("expected delete plus %d inserts, got %d calls", want, len(tx.calls))
	}

	rows := &mockRows{}
	for _, c := range tx.calls[1:] {
		rows.rows = append(rows.rows, []any{c.args[0], c.args[1], c.args[3]})
	}
	loaded, err := NewPostgresContentRepository(mockDB{rows: rows}).LoadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if loaded.Profile.Name != data.Profile.Name {
		t.Fatalf("unexpected profile %q", loaded.Profile.Name)
	}
	if len(loaded.Skills) != len(data.Skills) || loaded.Skills[0].ID != data.Skills[0].ID {
		t.Fatalf("skills not restored in order")
	}
	if len(loaded.GamingAchievements) != len(data.GamingAchievements) {
		t.Fatalf("unexpected gaming achievements %d", len(loaded.GamingAchievements))
	}
}

func TestPostgresContentRepository_LoadEmpty(t *testing.T) {
	repo := NewPostgresContentRepository(mockDB{rows: &mockRows{}})
	if _, err := repo.LoadAll(context.Background()); !errors.Is(err, ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
}

func TestPostgresContentRepository_UnknownKind(t *testing.T) {
	rows := &mockRows{rows: [][]any{{"relic", "x", `{}`}}}
	repo := NewPostgresContentRepository(mockDB{rows: rows})
	if _, err := repo.LoadAll(context.Background()); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
