package validation

import (
	"fmt"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
)

// Report is the outcome of validating a whole dataset.
type Report struct {
	Valid    bool      `json:"valid"`
	Errors   []string  `json:"errors"`
	Warnings []Warning `json:"warnings"`
}

func (v *Validator) Collections(c content.Collections) Report {
	rep := Report{Valid: true, Errors: []string{}, Warnings: CheckConsistency(c)}
	add := func(kind, id string, res Result) {
		for _, e := range res.Errors {
			rep.Errors = append(rep.Errors, fmt.Sprintf("%s %s: %s", kind, id, e))
		}
	}

	add("profile", c.Profile.Name, v.Profile(c.Profile))

	for _, s := range c.Skills {
		add("skill", s.ID, v.Skill(s))
	}
	for _, cat := range c.Categories {
		add("category", cat.ID, v.Category(cat))
	}
	declared := c.CategoryIDs()
	for _, p := range c.Projects {
		add("project", p.ID, v.Project(p, declared))
	}
	for _, t := range c.Tournaments {
		add("tournament", t.ID, v.Tournament(t))
	}
	for _, a := range c.Achievements() {
		add("achievement", a.ID, v.Achievement(a))
	}

	rep.Errors = append(rep.Errors, duplicateIDs("skill", c.Skills, func(s content.Skill) string { return s.ID })...)
	rep.Errors = append(rep.Errors, duplicateIDs("project", c.Projects, func(p content.Project) string { return p.ID })...)
	rep.Errors = append(rep.Errors, duplicateIDs("category", c.Categories, func(cat content.Category) string { return cat.ID })...)
	rep.Errors = append(rep.Errors, duplicateIDs("tournament", c.Tournaments, func(t content.Tournament) string { return t.ID })...)
	rep.Errors = append(rep.Errors, duplicateIDs("achievement", c.Achievements(), func(a content.Achievement) string { return a.ID })...)

	rep.Valid = len(rep.Errors) == 0
	return rep
}

func duplicateIDs[T any](kind string, items []T, id func(T) string) []string {
	seen := make(map[string]int, len(items))
	var out []string
	for _, it := range items {
		k := id(it)
		if k == "" {
			continue
		}
		seen[k]++
		if seen[k] == 2 {
			out = append(out, fmt.Sprintf("duplicate %s id %q", kind, k))
		}
	}
	return out
}
