package query

import (
	"math"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
)

type StatsSnapshot struct {
	TotalSkills             int                   `json:"totalSkills"`
	UnlockedSkills          int                   `json:"unlockedSkills"`
	TotalProjects           int                   `json:"totalProjects"`
	CompletedProjects       int                   `json:"completedProjects"`
	InProgressProjects      int                   `json:"inProgressProjects"`
	PlannedProjects         int                   `json:"plannedProjects"`
	TotalTournaments        int                   `json:"totalTournaments"`
	TournamentMedals        map[content.Medal]int `json:"tournamentMedals"`
	TotalAchievements       int                   `json:"totalAchievements"`
	UnlockedAchievements    int                   `json:"unlockedAchievements"`
	TotalCategories         int                   `json:"totalCategories"`
	SkillsByCategory        map[string]int        `json:"skillsByCategory"`
	ProjectsByCategory      map[string]int        `json:"projectsByCategory"`
	TotalXP                 int                   `json:"totalXP"`
	AverageSkillProficiency int                   `json:"averageSkillProficiency"`
}

// ContentStats recomputes the summary from the collections on every call.
func (e *Engine) ContentStats() StatsSnapshot {
	d := e.data
	st := StatsSnapshot{
		TotalSkills:        len(d.Skills),
		TotalProjects:      len(d.Projects),
		TotalTournaments:   len(d.Tournaments),
		TotalCategories:    len(d.Categories),
		TournamentMedals:   make(map[content.Medal]int),
		SkillsByCategory:   make(map[string]int),
		ProjectsByCategory: make(map[string]int),
	}

	profSum := 0
	for _, s := range d.Skills {
		if s.Unlocked {
			st.UnlockedSkills++
		}
		st.SkillsByCategory[string(s.Category)]++
		profSum += s.Proficiency
	}
	st.AverageSkillProficiency = averageProficiency(profSum, len(d.Skills))

	for _, p := range d.Projects {
		switch p.Status {
		case content.StatusCompleted:
			st.CompletedProjects++
		case content.StatusInProgress:
			st.InProgressProjects++
		case content.StatusPlanned:
			st.PlannedProjects++
		}
		st.ProjectsByCategory[p.Category]++
		st.TotalXP += p.Rewards.XP
	}

	for _, t := range d.Tournaments {
		st.TournamentMedals[t.Achievement]++
	}

	for _, a := range d.Achievements() {
		st.TotalAchievements++
		if a.Unlocked {
			st.UnlockedAchievements++
		}
	}

	return st
}

func averageProficiency(sum, n int) int {
	if n == 0 {
		return 0
	}
	avg := int(math.Round(float64(sum) / float64(n)))
	if avg < 0 {
		return 0
	}
	if avg > 100 {
		return 100
	}
	return avg
}
