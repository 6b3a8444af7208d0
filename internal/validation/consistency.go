package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
)

const (
	WarnUnknownRewardSkill    = "unknown_reward_skill"
	WarnUnknownPrerequisite   = "unknown_prerequisite"
	WarnPrerequisiteCycle     = "prerequisite_cycle"
	WarnProfileTournaments    = "profile_tournaments_mismatch"
	WarnProfileTournamentsWon = "profile_tournaments_won_mismatch"
	WarnProfileProjects       = "profile_projects_mismatch"
)

type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CheckConsistency reports references and declared counters that disagree
// with the collections. Counters are reported, not corrected.
func CheckConsistency(c content.Collections) []Warning {
	out := []Warning{}

	skillNames := make(map[string]struct{}, len(c.Skills))
	skillIDs := make(map[string]struct{}, len(c.Skills))
	for _, s := range c.Skills {
		skillNames[strings.ToLower(strings.TrimSpace(s.Name))] = struct{}{}
		skillIDs[s.ID] = struct{}{}
	}

	for _, p := range c.Projects {
		for _, name := range p.Rewards.Skills {
			if _, ok := skillNames[strings.ToLower(strings.TrimSpace(name))]; !ok {
				out = append(out, Warning{
					Code:    WarnUnknownRewardSkill,
					Message: fmt.Sprintf("project %s rewards skill %q which matches no skill", p.ID, name),
				})
			}
		}
	}

	for _, s := range c.Skills {
		for _, pre := range s.Prerequisites {
			if _, ok := skillIDs[pre]; !ok {
				out = append(out, Warning{
					Code:    WarnUnknownPrerequisite,
					Message: fmt.Sprintf("skill %s requires unknown skill %q", s.ID, pre),
				})
			}
		}
	}

	for _, cycle := range prerequisiteCycles(c.Skills) {
		out = append(out, Warning{
			Code:    WarnPrerequisiteCycle,
			Message: "skill prerequisites form a cycle: " + strings.Join(cycle, " -> "),
		})
	}

	stats := c.Profile.Stats
	if stats.TournamentsPlayed != len(c.Tournaments) {
		out = append(out, Warning{
			Code: WarnProfileTournaments,
			Message: fmt.Sprintf("profile reports %d tournaments played, collection has %d",
				stats.TournamentsPlayed, len(c.Tournaments)),
		})
	}

	won := 0
	for _, t := range c.Tournaments {
		if t.Achievement == content.MedalGold {
			won++
		}
	}
	if stats.TournamentsWon != won {
		out = append(out, Warning{
			Code:    WarnProfileTournamentsWon,
			Message: fmt.Sprintf("profile reports %d tournaments won, collection has %d gold placements", stats.TournamentsWon, won),
		})
	}

	completed := 0
	for _, p := range c.Projects {
		if p.Status == content.StatusCompleted {
			completed++
		}
	}
	if stats.ProjectsCompleted != completed {
		out = append(out, Warning{
			Code:    WarnProfileProjects,
			Message: fmt.Sprintf("profile reports %d projects completed, collection has %d", stats.ProjectsCompleted, completed),
		})
	}

	return out
}

// prerequisiteCycles returns each distinct cycle in the prerequisite graph,
// starting from its lexically smallest skill id.
func prerequisiteCycles(skills []content.Skill) [][]string {
	edges := make(map[string][]string, len(skills))
	for _, s := range skills {
		edges[s.ID] = s.Prerequisites
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(skills))
	seen := map[string]struct{}{}
	var cycles [][]string
	var stack []string

	var visit func(id string)
	visit = func(id string) {
		state[id] = visiting
		stack = append(stack, id)
		for _, next := range edges[id] {
			if _, known := edges[next]; !known {
				continue
			}
			switch state[next] {
			case unvisited:
				visit(next)
			case visiting:
				cycle := extractCycle(stack, next)
				key := strings.Join(cycle, ",")
				if _, dup := seen[key]; !dup {
					seen[key] = struct{}{}
					cycles = append(cycles, append(cycle, cycle[0]))
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[id] = done
	}

	ids := make([]string, 0, len(edges))
	for id := range edges {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if state[id] == unvisited {
			visit(id)
		}
	}
	return cycles
}

func extractCycle(stack []string, start string) []string {
	i := len(stack) - 1
	for i >= 0 && stack[i] != start {
		i--
	}
	cycle := stack[i:]

	first := 0
	for j := range cycle {
		if cycle[j] < cycle[first] {
			first = j
		}
	}
	out := make([]string, 0, len(cycle)+1)
	out = append(out, cycle[first:]...)
	return append(out, cycle[:first]...)
}
