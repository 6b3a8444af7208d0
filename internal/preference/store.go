// Package preference keeps user display preferences in memory and persists
// the whole set as one JSON document after every change.
//
// Persistence is best effort. Load always yields a usable map and Update
// always applies in memory; storage failures come back as *StorageError
// values that describe the fallback taken, and are already logged.
package preference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/storage"
)

const DefaultNamespace = "gaming-portfolio"

var ErrEmptyKey = errors.New("preference key is empty")

type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("preference %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

type Store struct {
	storage storage.Storage
	key     string
	logger  *log.Logger

	mu    sync.RWMutex
	prefs Map
}

// NewStore creates a store holding the defaults until Load is called.
func NewStore(s storage.Storage, namespace string, logger *log.Logger) *Store {
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Store{
		storage: s,
		key:     namespace + ":preferences",
		logger:  logger,
		prefs:   Defaults(),
	}
}

// StorageKey is the key the preference document is stored under.
func (s *Store) StorageKey() string {
	return s.key
}

// Load rehydrates preferences from storage. Stored values are laid over the
// defaults; a missing document is created from the defaults.
func (s *Store) Load(ctx context.Context) (Map, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs = Defaults()
	if s.storage == nil {
		return s.prefs.clone(), nil
	}

	raw, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		serr := &StorageError{Op: "load", Key: s.key, Err: err}
		s.logf("[Preferences] load failed, using defaults: %v", serr)
		return s.prefs.clone(), serr
	}
	if !ok {
		return s.prefs.clone(), s.persistLocked(ctx)
	}

	var stored Map
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		serr := &StorageError{Op: "decode", Key: s.key, Err: err}
		s.logf("[Preferences] stored document unreadable, using defaults: %v", serr)
		return s.prefs.clone(), serr
	}
	for k, v := range stored {
		s.prefs[k] = v
	}
	return s.prefs.clone(), nil
}

func (s *Store) Get(key string, def any) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.prefs[key]; ok {
		return v
	}
	return def
}

func (s *Store) All() Map {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.clone()
}

// Update sets one preference and writes the full set back to storage.
func (s *Store) Update(ctx context.Context, key string, value any) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.prefs[key]
	s.prefs[key] = value
	if _, err := json.Marshal(s.prefs); err != nil {
		if had {
			s.prefs[key] = prev
		} else {
			delete(s.prefs, key)
		}
		return &StorageError{Op: "encode", Key: key, Err: err}
	}
	return s.persistLocked(ctx)
}

// Reset restores the defaults and persists them.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs = Defaults()
	return s.persistLocked(ctx)
}

func (s *Store) persistLocked(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}
	b, err := json.Marshal(s.prefs)
	if err != nil {
		return &StorageError{Op: "encode", Key: s.key, Err: err}
	}
	if err := s.storage.Set(ctx, s.key, string(b)); err != nil {
		serr := &StorageError{Op: "save", Key: s.key, Err: err}
		s.logf("[Preferences] save failed, keeping in-memory value: %v", serr)
		return serr
	}
	return nil
}

func (s *Store) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
