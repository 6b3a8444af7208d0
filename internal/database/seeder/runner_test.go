package seeder

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/database"
)

type mockSeeder struct {
	name string
	err  error
	runs *[]string
}

func (m mockSeeder) Name() string { return m.name }

func (m mockSeeder) Run(context.Context, database.DB) error {
	*m.runs = append(*m.runs, m.name)
	return m.err
}

type stubDB struct{ database.DB }

func TestRunner_RunsInOrderAndStopsOnError(t *testing.T) {
	var runs []string
	boom := errors.New("boom")
	r := Runner{Seeders: []Seeder{
		mockSeeder{name: "first", runs: &runs},
		nil,
		mockSeeder{name: "second", err: boom, runs: &runs},
		mockSeeder{name: "third", runs: &runs},
	}}

	err := r.Run(context.Background(), stubDB{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if !strings.Contains(err.Error(), "seed second") {
		t.Fatalf("expected seeder name in error, got %q", err.Error())
	}
	if strings.Join(runs, ",") != "first,second" {
		t.Fatalf("unexpected runs %v", runs)
	}
}

func TestRunner_NilDB(t *testing.T) {
	if err := (Runner{}).Run(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
}

func TestDefaults_SeedsContent(t *testing.T) {
	ds := Defaults()
	if len(ds) != 1 || ds[0].Name() != "portfolio_content" {
		t.Fatalf("unexpected defaults %v", ds)
	}
}
