package query

import (
	"cmp"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
)

type SkillQuery struct {
	Category       *content.SkillCategory
	Level          *content.SkillLevel
	MinProficiency *int
	Unlocked       *bool
	Search         string
	Sort           Sort
	Limit          int
}

var skillComparators = map[string]comparator[content.Skill]{
	"name": func(a, b content.Skill) int { return compareFold(a.Name, b.Name) },
	"category": func(a, b content.Skill) int {
		return compareFold(string(a.Category), string(b.Category))
	},
	"proficiency": func(a, b content.Skill) int { return cmp.Compare(a.Proficiency, b.Proficiency) },
	"yearsExperience": func(a, b content.Skill) int {
		return cmp.Compare(a.YearsExperience, b.YearsExperience)
	},
	"level": func(a, b content.Skill) int { return compareRank(content.SkillLevelRank, a.Level, b.Level) },
}

func (e *Engine) Skills(q SkillQuery) []content.Skill {
	term := normalizeTerm(q.Search)
	minProf, useMin := validProficiency(q.MinProficiency)

	out := make([]content.Skill, 0, len(e.data.Skills))
	for _, s := range e.data.Skills {
		if q.Category != nil && s.Category != *q.Category {
			continue
		}
		if q.Level != nil && s.Level != *q.Level {
			continue
		}
		if useMin && s.Proficiency < minProf {
			continue
		}
		if q.Unlocked != nil && s.Unlocked != *q.Unlocked {
			continue
		}
		if term != "" && !skillMatches(s, term) {
			continue
		}
		out = append(out, s)
	}

	sortStable(out, q.Sort, skillComparators)
	return applyLimit(out, q.Limit)
}

func skillMatches(s content.Skill, term string) bool {
	return containsFold(s.Name, term) ||
		containsFold(s.Description, term) ||
		anyContainsFold(s.Certifications, term) ||
		anyContainsFold(s.Projects, term)
}

func validProficiency(v *int) (int, bool) {
	if v == nil || *v < 0 || *v > 100 {
		return 0, false
	}
	return *v, true
}
