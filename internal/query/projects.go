package query

import (
	"cmp"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
)

type ProjectQuery struct {
	Category   *string
	Status     *content.ProjectStatus
	Difficulty *content.Difficulty
	Technology string
	Search     string
	Sort       Sort
	Limit      int
}

var projectComparators = map[string]comparator[content.Project]{
	"title":    func(a, b content.Project) int { return compareFold(a.Title, b.Title) },
	"category": func(a, b content.Project) int { return compareFold(a.Category, b.Category) },
	"status": func(a, b content.Project) int {
		return compareRank(content.ProjectStatusRank, a.Status, b.Status)
	},
	"difficulty": func(a, b content.Project) int {
		return compareRank(content.DifficultyRank, a.Difficulty, b.Difficulty)
	},
	"xp": func(a, b content.Project) int { return cmp.Compare(a.Rewards.XP, b.Rewards.XP) },
}

func (e *Engine) Projects(q ProjectQuery) []content.Project {
	tech := normalizeTerm(q.Technology)
	term := normalizeTerm(q.Search)

	out := make([]content.Project, 0, len(e.data.Projects))
	for _, p := range e.data.Projects {
		if q.Category != nil && p.Category != *q.Category {
			continue
		}
		if q.Status != nil && p.Status != *q.Status {
			continue
		}
		if q.Difficulty != nil && p.Difficulty != *q.Difficulty {
			continue
		}
		if tech != "" && !anyContainsFold(p.Technologies, tech) {
			continue
		}
		if term != "" && !projectMatches(p, term) {
			continue
		}
		out = append(out, p)
	}

	sortStable(out, q.Sort, projectComparators)
	return applyLimit(out, q.Limit)
}

func projectMatches(p content.Project, term string) bool {
	return containsFold(p.Title, term) ||
		containsFold(p.Description, term) ||
		anyContainsFold(p.Technologies, term)
}
