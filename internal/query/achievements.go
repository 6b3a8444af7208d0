package query

import (
	"cmp"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
)

type AchievementQuery struct {
	Rarity   *content.Rarity
	Unlocked *bool
	Source   content.AchievementSource
	Search   string
	Sort     Sort
	Limit    int
}

var achievementComparators = map[string]comparator[content.Achievement]{
	"name": func(a, b content.Achievement) int { return compareFold(a.Name, b.Name) },
	"rarity": func(a, b content.Achievement) int {
		return compareRank(content.RarityRank, a.Rarity, b.Rarity)
	},
	"unlockedDate": func(a, b content.Achievement) int {
		da, okA := a.ParsedUnlockedDate()
		db, okB := b.ParsedUnlockedDate()
		return compareDates(da, okA, db, okB)
	},
	"progress": func(a, b content.Achievement) int {
		return cmp.Compare(progressRatio(a), progressRatio(b))
	},
}

// Achievements queries profile and gaming achievements as one collection.
func (e *Engine) Achievements(q AchievementQuery) []content.Achievement {
	term := normalizeTerm(q.Search)

	all := e.data.Achievements()
	out := all[:0]
	for _, a := range all {
		if q.Rarity != nil && a.Rarity != *q.Rarity {
			continue
		}
		if q.Unlocked != nil && a.Unlocked != *q.Unlocked {
			continue
		}
		if q.Source != "" && a.Source != q.Source {
			continue
		}
		if term != "" && !containsFold(a.Name, term) && !containsFold(a.Description, term) {
			continue
		}
		out = append(out, a)
	}

	sortStable(out, q.Sort, achievementComparators)
	return applyLimit(out, q.Limit)
}

// progressRatio treats unlocked achievements without counters as complete.
func progressRatio(a content.Achievement) float64 {
	if a.Progress == nil || a.MaxProgress == nil || *a.MaxProgress <= 0 {
		if a.Unlocked {
			return 1
		}
		return 0
	}
	r := float64(*a.Progress) / float64(*a.MaxProgress)
	if r > 1 {
		return 1
	}
	return r
}
