package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/dataset"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
)

const yamlDoc = `
profile:
  name: Ada
  title: Engine Programmer
  level: 3
  xp: 1200
  stats:
    projectsCompleted: 1
    tournamentsPlayed: 1
  achievements:
    - id: first-commit
      name: First Commit
      description: Pushed the first commit
      icon: "*"
      unlocked: true
      unlockedDate: 2021-02-03
      rarity: common
skills:
  - id: go
    name: Go
    category: backend
    proficiency: 80
    yearsExperience: 3
    level: Advanced
    unlocked: true
categories:
  - id: tool
    name: Tools
projects:
  - id: kv
    title: KV Store
    category: tool
    status: completed
    difficulty: Rare
    description: A tiny key value store
    technologies: [Go]
    rewards:
      xp: 300
tournaments:
  - id: cup
    name: Local Cup
    game: Chess
    date: 2022-05-01
    placement: 1st
    participants: 16
    achievement: gold
gamingAchievements: []
`

type staticRepo struct {
	data content.Collections
	err  error
}

func (r staticRepo) LoadAll(context.Context) (content.Collections, error) { return r.data, r.err }
func (r staticRepo) ReplaceAll(context.Context, content.Collections) error {
	return nil
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestStatic(t *testing.T) {
	data, err := Static{}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(dataset.Default().Skills), len(data.Skills))
}

func TestFile_YAML(t *testing.T) {
	p := writeFile(t, "portfolio.yaml", yamlDoc)

	data, err := File{Path: p}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ada", data.Profile.Name)
	require.Len(t, data.Tournaments, 1)
	assert.Equal(t, "2022-05-01", data.Tournaments[0].Date)
	assert.Equal(t, content.MedalGold, data.Tournaments[0].Achievement)
	require.Len(t, data.Profile.Achievements, 1)
	assert.Equal(t, "2021-02-03", data.Profile.Achievements[0].UnlockedDate)
	assert.Equal(t, 300, data.Projects[0].Rewards.XP)
}

func TestFile_JSONRoundTripOfDefaultDataset(t *testing.T) {
	b, err := json.Marshal(dataset.Default())
	require.NoError(t, err)
	p := writeFile(t, "portfolio.json", string(b))

	data, err := File{Path: p}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dataset.Default().Skills, data.Skills)
}

func TestFile_RejectsUnknownFieldsAndExtensions(t *testing.T) {
	p := writeFile(t, "portfolio.json", `{"profile":{},"bogus":1}`)
	_, err := File{Path: p}.Load(context.Background())
	assert.Error(t, err)

	p = writeFile(t, "portfolio.toml", `x = 1`)
	_, err = File{Path: p}.Load(context.Background())
	assert.ErrorContains(t, err, "unsupported extension")

	_, err = File{Path: filepath.Join(t.TempDir(), "missing.json")}.Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPostgres(t *testing.T) {
	data, err := Postgres{Repo: staticRepo{data: dataset.Default()}}.Load(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, data.Projects)

	boom := errors.New("boom")
	_, err = Postgres{Repo: staticRepo{err: boom}}.Load(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = Postgres{}.Load(context.Background())
	assert.Error(t, err)
}

func TestValidated_LogsWarningsAndPasses(t *testing.T) {
	var buf bytes.Buffer
	data, err := Validated{Next: Static{}, Logger: log.New(&buf, "", 0)}.Load(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, data.Skills)
	assert.Contains(t, buf.String(), "profile_tournaments_mismatch")
	assert.Contains(t, buf.String(), "[Content] loaded")
}

func TestValidated_RejectsInvalidContent(t *testing.T) {
	bad := dataset.Default()
	bad.Skills[0].Proficiency = 140

	_, err := Validated{Next: Postgres{Repo: staticRepo{data: bad}}}.Load(context.Background())
	assert.ErrorIs(t, err, ErrInvalidContent)
}
