package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/preference"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/storage"
)

type brokenStorage struct{}

func (brokenStorage) Get(context.Context, string) (string, bool, error) {
	return "", false, storage.ErrUnavailable
}
func (brokenStorage) Set(context.Context, string, string) error { return storage.ErrUnavailable }
func (brokenStorage) Remove(context.Context, string) error      { return storage.ErrUnavailable }

func TestPreferences_UpdateNotifies(t *testing.T) {
	n := &recordingNotifier{}
	uc := NewPreferencesUsecase(preference.NewStore(storage.NewMemory(), "", nil), n, nil, nil)

	res, err := uc.Update(context.Background(), preference.KeyTheme, "light")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.Persisted {
		t.Fatalf("expected persisted write")
	}
	if res.Preferences[preference.KeyTheme] != "light" {
		t.Fatalf("unexpected theme %v", res.Preferences[preference.KeyTheme])
	}
	if len(n.updated) != 1 || n.updated[0] != preference.KeyTheme {
		t.Fatalf("unexpected notifications %v", n.updated)
	}
}

func TestPreferences_UpdateWithBrokenStorageStillApplies(t *testing.T) {
	uc := NewPreferencesUsecase(preference.NewStore(brokenStorage{}, "", nil), nil, nil, nil)

	res, err := uc.Update(context.Background(), preference.KeyVolume, 0.9)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Persisted {
		t.Fatalf("expected write reported as not persisted")
	}
	v, err := uc.Get(preference.KeyVolume)
	if err != nil || v != 0.9 {
		t.Fatalf("expected in-memory value 0.9, got %v err=%v", v, err)
	}
}

func TestPreferences_RejectsEmptyKey(t *testing.T) {
	uc := NewPreferencesUsecase(preference.NewStore(storage.NewMemory(), "", nil), nil, nil, nil)

	if _, err := uc.Update(context.Background(), "", true); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.Get(" "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPreferences_GetUnknownKey(t *testing.T) {
	uc := NewPreferencesUsecase(preference.NewStore(nil, "", nil), nil, nil, nil)
	if _, err := uc.Get("fontSize"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPreferences_Reset(t *testing.T) {
	n := &recordingNotifier{}
	uc := NewPreferencesUsecase(preference.NewStore(storage.NewMemory(), "", nil), n, nil, nil)
	ctx := context.Background()

	if _, err := uc.Update(ctx, preference.KeyReducedMotion, true); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	res, err := uc.Reset(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Preferences[preference.KeyReducedMotion] != false {
		t.Fatalf("expected default reducedMotion")
	}
	if n.resets != 1 {
		t.Fatalf("expected one reset notification, got %d", n.resets)
	}
}
