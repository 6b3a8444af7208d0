package preference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/storage"
)

type failingStorage struct {
	getErr error
	setErr error
	sets   int
}

func (f *failingStorage) Get(context.Context, string) (string, bool, error) {
	return "", false, f.getErr
}

func (f *failingStorage) Set(context.Context, string, string) error {
	f.sets++
	return f.setErr
}

func (f *failingStorage) Remove(context.Context, string) error { return nil }

func TestLoad_FirstRunPersistsDefaults(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	s := NewStore(mem, "", nil)

	prefs, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), prefs)
	assert.Equal(t, "gaming-portfolio:preferences", s.StorageKey())

	raw, ok, err := mem.Get(ctx, s.StorageKey())
	require.NoError(t, err)
	require.True(t, ok)

	var stored Map
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, "dark", stored[KeyTheme])
}

func TestLoad_MergesStoredOverDefaults(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	require.NoError(t, mem.Set(ctx, "gaming-portfolio:preferences", `{"theme":"light","volume":0.2,"custom":"x"}`))

	prefs, err := NewStore(mem, "", nil).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", prefs[KeyTheme])
	assert.Equal(t, 0.2, prefs[KeyVolume])
	assert.Equal(t, "x", prefs["custom"])
	assert.Equal(t, true, prefs[KeySoundEnabled])
	assert.Equal(t, "difficulty", prefs[KeyProjectSortBy])
}

func TestLoad_CorruptDocumentFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	require.NoError(t, mem.Set(ctx, "gaming-portfolio:preferences", "{not json"))

	var buf bytes.Buffer
	s := NewStore(mem, "", log.New(&buf, "", 0))
	prefs, err := s.Load(ctx)

	var serr *StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "decode", serr.Op)
	assert.Equal(t, Defaults(), prefs)
	assert.Equal(t, "dark", s.Get(KeyTheme, nil))
	assert.Contains(t, buf.String(), "[Preferences]")
}

func TestLoad_StorageUnavailable(t *testing.T) {
	s := NewStore(&failingStorage{getErr: storage.ErrUnavailable}, "", nil)
	prefs, err := s.Load(context.Background())

	assert.ErrorIs(t, err, storage.ErrUnavailable)
	assert.Equal(t, Defaults(), prefs)
}

func TestGet_ReturnsFallbackForUnknownKey(t *testing.T) {
	s := NewStore(nil, "", nil)
	assert.Equal(t, 0.5, s.Get(KeyVolume, 1.0))
	assert.Equal(t, "fallback", s.Get("nope", "fallback"))
	assert.Nil(t, s.Get("nope", nil))
}

func TestUpdate_PersistsAndSurvivesReload(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	s := NewStore(mem, "arcade", nil)
	_, err := s.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, KeyTheme, "light"))
	assert.Equal(t, "light", s.Get(KeyTheme, nil))

	reloaded := NewStore(mem, "arcade", nil)
	prefs, err := reloaded.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", prefs[KeyTheme])
	assert.Equal(t, "arcade:preferences", reloaded.StorageKey())
}

func TestUpdate_SaveFailureKeepsInMemoryValue(t *testing.T) {
	fs := &failingStorage{setErr: errors.New("quota exceeded")}
	s := NewStore(fs, "", nil)

	err := s.Update(context.Background(), KeySoundEnabled, false)

	var serr *StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "save", serr.Op)
	assert.Equal(t, false, s.Get(KeySoundEnabled, true))
	assert.Equal(t, 1, fs.sets)
}

func TestUpdate_RejectsEmptyKey(t *testing.T) {
	s := NewStore(storage.NewMemory(), "", nil)
	assert.ErrorIs(t, s.Update(context.Background(), "  ", "x"), ErrEmptyKey)
}

func TestUpdate_UnencodableValueIsRolledBack(t *testing.T) {
	s := NewStore(storage.NewMemory(), "", nil)

	err := s.Update(context.Background(), KeyTheme, make(chan int))

	var serr *StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "encode", serr.Op)
	assert.Equal(t, "dark", s.Get(KeyTheme, nil))
}

func TestReset_RestoresDefaults(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	s := NewStore(mem, "", nil)
	require.NoError(t, s.Update(ctx, KeyTheme, "light"))
	require.NoError(t, s.Update(ctx, "extra", 3))

	require.NoError(t, s.Reset(ctx))
	assert.Equal(t, Defaults(), s.All())

	prefs, err := NewStore(mem, "", nil).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), prefs)
}

func TestAll_ReturnsCopy(t *testing.T) {
	s := NewStore(nil, "", nil)
	all := s.All()
	all[KeyTheme] = "mutated"
	assert.Equal(t, "dark", s.Get(KeyTheme, nil))
}
