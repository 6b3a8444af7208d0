package content

// Collections is the full portfolio dataset as delivered by a loader.
// Nothing in it is modified after load.
type Collections struct {
	Profile            UserProfile   `json:"profile"`
	Skills             []Skill       `json:"skills"`
	Projects           []Project     `json:"projects"`
	Categories         []Category    `json:"categories"`
	Tournaments        []Tournament  `json:"tournaments"`
	GamingAchievements []Achievement `json:"gamingAchievements"`
}

// Achievements merges profile and gaming achievements, profile first, each
// tagged with its source.
func (c Collections) Achievements() []Achievement {
	out := make([]Achievement, 0, len(c.Profile.Achievements)+len(c.GamingAchievements))
	for _, a := range c.Profile.Achievements {
		a.Source = SourceProfile
		out = append(out, a)
	}
	for _, a := range c.GamingAchievements {
		a.Source = SourceGaming
		out = append(out, a)
	}
	return out
}

// CategoryIDs returns the set of declared project category ids.
func (c Collections) CategoryIDs() map[string]struct{} {
	out := make(map[string]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		out[cat.ID] = struct{}{}
	}
	return out
}

// Clone copies the top-level slices so callers can hand them out without
// sharing backing arrays with the loaded dataset.
func (c Collections) Clone() Collections {
	out := c
	out.Skills = append([]Skill(nil), c.Skills...)
	out.Projects = append([]Project(nil), c.Projects...)
	out.Categories = append([]Category(nil), c.Categories...)
	out.Tournaments = append([]Tournament(nil), c.Tournaments...)
	out.GamingAchievements = append([]Achievement(nil), c.GamingAchievements...)
	out.Profile.Achievements = append([]Achievement(nil), c.Profile.Achievements...)
	return out
}
