package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/preference"
)

// PreferenceWrite is the outcome of a preference change. Persisted is false
// when storage rejected the write; the change still applies in memory.
type PreferenceWrite struct {
	Preferences preference.Map `json:"preferences"`
	Persisted   bool           `json:"persisted"`
}

type PreferencesUsecase interface {
	All() preference.Map
	Get(key string) (any, error)
	Update(ctx context.Context, key string, value any) (PreferenceWrite, error)
	Reset(ctx context.Context) (PreferenceWrite, error)
}

type Preferences struct {
	store    *preference.Store
	notifier Notifier
	metrics  *Metrics
	logger   *log.Logger
}

func NewPreferencesUsecase(store *preference.Store, notifier Notifier, metrics *Metrics, logger *log.Logger) *Preferences {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Preferences{store: store, notifier: notifier, metrics: metrics, logger: logger}
}

func (u *Preferences) All() preference.Map {
	return u.store.All()
}

func (u *Preferences) Get(key string) (any, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrInvalidInput
	}
	all := u.store.All()
	v, ok := all[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (u *Preferences) Update(ctx context.Context, key string, value any) (PreferenceWrite, error) {
	key = strings.TrimSpace(key)
	err := u.store.Update(ctx, key, value)
	persisted, err := u.classify("update", err)
	if err != nil {
		return PreferenceWrite{}, err
	}
	u.notifier.PreferencesUpdated(key, value)
	return PreferenceWrite{Preferences: u.store.All(), Persisted: persisted}, nil
}

func (u *Preferences) Reset(ctx context.Context) (PreferenceWrite, error) {
	persisted, err := u.classify("reset", u.store.Reset(ctx))
	if err != nil {
		return PreferenceWrite{}, err
	}
	u.notifier.PreferencesReset()
	return PreferenceWrite{Preferences: u.store.All(), Persisted: persisted}, nil
}

// classify separates rejected writes from writes that only failed to persist.
func (u *Preferences) classify(op string, err error) (bool, error) {
	if err == nil {
		u.metrics.preferenceWrite(op, "ok")
		return true, nil
	}
	if errors.Is(err, preference.ErrEmptyKey) {
		u.metrics.preferenceWrite(op, "rejected")
		return false, ErrInvalidInput
	}

	var serr *preference.StorageError
	if errors.As(err, &serr) {
		if serr.Op == "encode" {
			u.metrics.preferenceWrite(op, "rejected")
			return false, ErrInvalidInput
		}
		if u.logger != nil {
			u.logger.Printf("[Preferences] %s applied in memory only: %v", op, serr)
		}
		u.metrics.preferenceWrite(op, "not_persisted")
		return false, nil
	}

	u.metrics.preferenceWrite(op, "rejected")
	return false, ErrInternal
}
