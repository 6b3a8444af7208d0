package preference

// Map holds display preferences keyed by name. Values are JSON scalars.
type Map map[string]any

const (
	KeyTheme             = "theme"
	KeySoundEnabled      = "soundEnabled"
	KeyVolume            = "volume"
	KeyAnimationsEnabled = "animationsEnabled"
	KeyParticlesEnabled  = "particlesEnabled"
	KeyReducedMotion     = "reducedMotion"
	KeySkillsView        = "skillsView"
	KeyProjectsView      = "projectsView"
	KeyProjectSortBy     = "projectSortBy"
	KeySortOrder         = "sortOrder"
)

// Defaults returns a fresh copy of the built-in preference set.
func Defaults() Map {
	return Map{
		KeyTheme:             "dark",
		KeySoundEnabled:      true,
		KeyVolume:            0.5,
		KeyAnimationsEnabled: true,
		KeyParticlesEnabled:  true,
		KeyReducedMotion:     false,
		KeySkillsView:        "grid",
		KeyProjectsView:      "grid",
		KeyProjectSortBy:     "difficulty",
		KeySortOrder:         "desc",
	}
}

func (m Map) clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
