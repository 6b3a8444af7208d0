package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/query"
)

const queryCachePrefix = "portfolio:query:"

const (
	QueryKindSkills       = "skills"
	QueryKindProjects     = "projects"
	QueryKindTournaments  = "tournaments"
	QueryKindAchievements = "achievements"
)

type sortKeyInput struct {
	By    string `json:"by,omitempty"`
	Order string `json:"order,omitempty"`
}

type skillCacheKeyInput struct {
	Category       string       `json:"category,omitempty"`
	Level          string       `json:"level,omitempty"`
	MinProficiency *int         `json:"min_proficiency,omitempty"`
	Unlocked       *bool        `json:"unlocked,omitempty"`
	Search         string       `json:"search,omitempty"`
	Sort           sortKeyInput `json:"sort"`
	Limit          int          `json:"limit,omitempty"`
}

type projectCacheKeyInput struct {
	Category   *string      `json:"category,omitempty"`
	Status     string       `json:"status,omitempty"`
	Difficulty string       `json:"difficulty,omitempty"`
	Technology string       `json:"technology,omitempty"`
	Search     string       `json:"search,omitempty"`
	Sort       sortKeyInput `json:"sort"`
	Limit      int          `json:"limit,omitempty"`
}

type tournamentCacheKeyInput struct {
	Achievement string       `json:"achievement,omitempty"`
	Game        string       `json:"game,omitempty"`
	DateFrom    string       `json:"date_from,omitempty"`
	DateTo      string       `json:"date_to,omitempty"`
	Search      string       `json:"search,omitempty"`
	Sort        sortKeyInput `json:"sort"`
	Limit       int          `json:"limit,omitempty"`
}

type achievementCacheKeyInput struct {
	Rarity   string       `json:"rarity,omitempty"`
	Unlocked *bool        `json:"unlocked,omitempty"`
	Source   string       `json:"source,omitempty"`
	Search   string       `json:"search,omitempty"`
	Sort     sortKeyInput `json:"sort"`
	Limit    int          `json:"limit,omitempty"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func normalizeSort(s query.Sort) sortKeyInput {
	if s.By == "" {
		return sortKeyInput{}
	}
	order := string(query.SortDesc)
	if s.Order == query.SortAsc {
		order = string(query.SortAsc)
	}
	return sortKeyInput{By: s.By, Order: order}
}

func normalizeLimit(limit int) int {
	if limit < 0 {
		return 0
	}
	return limit
}

func deref[T ~string](p *T) string {
	if p == nil {
		return ""
	}
	return string(*p)
}

func SkillsCacheKey(fingerprint string, q query.SkillQuery) string {
	return hashedKey(fingerprint, QueryKindSkills, skillCacheKeyInput{
		Category:       deref(q.Category),
		Level:          deref(q.Level),
		MinProficiency: q.MinProficiency,
		Unlocked:       q.Unlocked,
		Search:         normalizeSearchValue(q.Search),
		Sort:           normalizeSort(q.Sort),
		Limit:          normalizeLimit(q.Limit),
	})
}

func ProjectsCacheKey(fingerprint string, q query.ProjectQuery) string {
	return hashedKey(fingerprint, QueryKindProjects, projectCacheKeyInput{
		Category:   q.Category,
		Status:     deref(q.Status),
		Difficulty: deref(q.Difficulty),
		Technology: normalizeSearchValue(q.Technology),
		Search:     normalizeSearchValue(q.Search),
		Sort:       normalizeSort(q.Sort),
		Limit:      normalizeLimit(q.Limit),
	})
}

func TournamentsCacheKey(fingerprint string, q query.TournamentQuery) string {
	return hashedKey(fingerprint, QueryKindTournaments, tournamentCacheKeyInput{
		Achievement: deref(q.Achievement),
		Game:        normalizeSearchValue(q.Game),
		DateFrom:    strings.TrimSpace(q.DateFrom),
		DateTo:      strings.TrimSpace(q.DateTo),
		Search:      normalizeSearchValue(q.Search),
		Sort:        normalizeSort(q.Sort),
		Limit:       normalizeLimit(q.Limit),
	})
}

func AchievementsCacheKey(fingerprint string, q query.AchievementQuery) string {
	return hashedKey(fingerprint, QueryKindAchievements, achievementCacheKeyInput{
		Rarity:   deref(q.Rarity),
		Unlocked: q.Unlocked,
		Source:   string(q.Source),
		Search:   normalizeSearchValue(q.Search),
		Sort:     normalizeSort(q.Sort),
		Limit:    normalizeLimit(q.Limit),
	})
}

// QueryCachePattern matches every cached result of kind, or of all kinds
// when kind is empty.
func QueryCachePattern(kind string) string {
	if kind == "" {
		return queryCachePrefix + "*"
	}
	return queryCachePrefix + "*:" + kind + ":*"
}

func hashedKey(fingerprint, kind string, in any) string {
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return queryCachePrefix + fingerprint + ":" + kind + ":" + hex.EncodeToString(sum[:])
}

// Fingerprint identifies a loaded dataset so cached results from a previous
// load are never served for a new one.
func Fingerprint(data content.Collections) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "unknown"
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:6])
}
