package query

import (
	"cmp"
	"time"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
)

type TournamentQuery struct {
	Achievement *content.Medal
	Game        string
	DateFrom    string
	DateTo      string
	Search      string
	Sort        Sort
	Limit       int
}

var tournamentComparators = map[string]comparator[content.Tournament]{
	"name": func(a, b content.Tournament) int { return compareFold(a.Name, b.Name) },
	"game": func(a, b content.Tournament) int { return compareFold(a.Game, b.Game) },
	"date": func(a, b content.Tournament) int {
		da, okA := a.ParsedDate()
		db, okB := b.ParsedDate()
		return compareDates(da, okA, db, okB)
	},
	"participants": func(a, b content.Tournament) int {
		return cmp.Compare(a.Participants, b.Participants)
	},
	"achievement": func(a, b content.Tournament) int {
		return compareRank(content.MedalRank, a.Achievement, b.Achievement)
	},
}

func (e *Engine) Tournaments(q TournamentQuery) []content.Tournament {
	game := normalizeTerm(q.Game)
	term := normalizeTerm(q.Search)
	dates := newDateRange(q.DateFrom, q.DateTo, e.now())

	out := make([]content.Tournament, 0, len(e.data.Tournaments))
	for _, t := range e.data.Tournaments {
		if q.Achievement != nil && t.Achievement != *q.Achievement {
			continue
		}
		if game != "" && !containsFold(t.Game, game) {
			continue
		}
		if dates.active {
			d, ok := t.ParsedDate()
			if !ok || !dates.contains(d) {
				continue
			}
		}
		if term != "" && !tournamentMatches(t, term) {
			continue
		}
		out = append(out, t)
	}

	sortStable(out, q.Sort, tournamentComparators)
	return applyLimit(out, q.Limit)
}

func tournamentMatches(t content.Tournament, term string) bool {
	return containsFold(t.Name, term) ||
		containsFold(t.Game, term) ||
		anyContainsFold(t.Skills, term)
}

// compareDates orders dates chronologically; missing dates sort first.
func compareDates(a time.Time, okA bool, b time.Time, okB bool) int {
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	}
	return a.Compare(b)
}
