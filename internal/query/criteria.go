package query

import (
	"strconv"
	"strings"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
)

// Values is a read-only view of string criteria such as url.Values.
//
// Parsing never fails: values that do not parse are dropped and the matching
// filter is simply not applied.
type Values interface {
	Get(key string) string
}

func optionalString[T ~string](v Values, key string) *T {
	s := strings.TrimSpace(v.Get(key))
	if s == "" {
		return nil
	}
	out := T(s)
	return &out
}

func optionalInt(v Values, key string) *int {
	s := strings.TrimSpace(v.Get(key))
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func optionalBool(v Values, key string) *bool {
	s := strings.TrimSpace(v.Get(key))
	if s == "" {
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &b
}

func parseLimit(v Values) int {
	if n := optionalInt(v, "limit"); n != nil {
		return *n
	}
	return 0
}

func parseSort(v Values) Sort {
	s := Sort{By: strings.TrimSpace(v.Get("sortBy")), Order: SortDesc}
	if strings.EqualFold(strings.TrimSpace(v.Get("sortOrder")), string(SortAsc)) {
		s.Order = SortAsc
	}
	return s
}

func ParseSkillQuery(v Values) SkillQuery {
	return SkillQuery{
		Category:       optionalString[content.SkillCategory](v, "category"),
		Level:          optionalString[content.SkillLevel](v, "level"),
		MinProficiency: optionalInt(v, "minProficiency"),
		Unlocked:       optionalBool(v, "unlocked"),
		Search:         v.Get("search"),
		Sort:           parseSort(v),
		Limit:          parseLimit(v),
	}
}

func ParseProjectQuery(v Values) ProjectQuery {
	return ProjectQuery{
		Category:   optionalString[string](v, "category"),
		Status:     optionalString[content.ProjectStatus](v, "status"),
		Difficulty: optionalString[content.Difficulty](v, "difficulty"),
		Technology: v.Get("technology"),
		Search:     v.Get("search"),
		Sort:       parseSort(v),
		Limit:      parseLimit(v),
	}
}

func ParseTournamentQuery(v Values) TournamentQuery {
	return TournamentQuery{
		Achievement: optionalString[content.Medal](v, "achievement"),
		Game:        v.Get("game"),
		DateFrom:    strings.TrimSpace(v.Get("dateFrom")),
		DateTo:      strings.TrimSpace(v.Get("dateTo")),
		Search:      v.Get("search"),
		Sort:        parseSort(v),
		Limit:       parseLimit(v),
	}
}

// ParseAchievementQuery accepts only the profile and gaming sources; any
// other value queries both.
func ParseAchievementQuery(v Values) AchievementQuery {
	q := AchievementQuery{
		Rarity:   optionalString[content.Rarity](v, "rarity"),
		Unlocked: optionalBool(v, "unlocked"),
		Search:   v.Get("search"),
		Sort:     parseSort(v),
		Limit:    parseLimit(v),
	}
	switch src := content.AchievementSource(strings.TrimSpace(v.Get("source"))); src {
	case content.SourceProfile, content.SourceGaming:
		q.Source = src
	}
	return q
}
