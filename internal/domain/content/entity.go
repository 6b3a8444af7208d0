package content

import "time"

// DateLayout is the calendar date format used by tournaments and unlock dates.
const DateLayout = "2006-01-02"

type Skill struct {
	ID              string        `json:"id" validate:"required"`
	Name            string        `json:"name" validate:"required"`
	Category        SkillCategory `json:"category" validate:"required,oneof=frontend backend database tools frameworks"`
	Proficiency     int           `json:"proficiency" validate:"min=0,max=100"`
	YearsExperience float64       `json:"yearsExperience" validate:"gte=0"`
	Level           SkillLevel    `json:"level" validate:"required,oneof=Beginner Intermediate Advanced Expert"`
	Icon            string        `json:"icon,omitempty"`
	Description     string        `json:"description,omitempty"`
	Certifications  []string      `json:"certifications"`
	Projects        []string      `json:"projects"`
	Prerequisites   []string      `json:"prerequisites" validate:"dive,required"`
	Unlocked        bool          `json:"unlocked"`
}

type ProjectLinks struct {
	GitHub string `json:"github,omitempty" validate:"omitempty,url"`
	Live   string `json:"live,omitempty" validate:"omitempty,url"`
}

type Rewards struct {
	XP     int      `json:"xp" validate:"gte=0"`
	Badges []string `json:"badges"`
	Skills []string `json:"skills"`
}

type Project struct {
	ID              string        `json:"id" validate:"required"`
	Title           string        `json:"title" validate:"required"`
	Category        string        `json:"category" validate:"required"`
	Status          ProjectStatus `json:"status" validate:"required,oneof=completed in-progress planned"`
	Difficulty      Difficulty    `json:"difficulty" validate:"required,oneof=Common Rare Epic Legendary"`
	Description     string        `json:"description" validate:"required"`
	LongDescription string        `json:"longDescription,omitempty"`
	Technologies    []string      `json:"technologies"`
	Features        []string      `json:"features"`
	Achievements    []string      `json:"achievements"`
	Images          []string      `json:"images"`
	Links           ProjectLinks  `json:"links"`
	Rewards         Rewards       `json:"rewards"`
}

type Category struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

type Tournament struct {
	ID           string   `json:"id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Game         string   `json:"game" validate:"required"`
	Date         string   `json:"date" validate:"required,datetime=2006-01-02"`
	Placement    string   `json:"placement"`
	Participants int      `json:"participants" validate:"gt=0"`
	Achievement  Medal    `json:"achievement" validate:"required,oneof=gold silver bronze participation"`
	Skills       []string `json:"skills"`
}

// ParsedDate returns the tournament date, or false when it is not a calendar date.
func (t Tournament) ParsedDate() (time.Time, bool) {
	return parseDate(t.Date)
}

type Achievement struct {
	ID           string            `json:"id" validate:"required"`
	Name         string            `json:"name" validate:"required"`
	Description  string            `json:"description"`
	Icon         string            `json:"icon,omitempty"`
	Unlocked     bool              `json:"unlocked"`
	UnlockedDate string            `json:"unlockedDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Rarity       Rarity            `json:"rarity" validate:"required,oneof=common rare epic legendary"`
	Progress     *int              `json:"progress,omitempty" validate:"omitempty,gte=0"`
	MaxProgress  *int              `json:"maxProgress,omitempty" validate:"omitempty,gt=0"`
	Source       AchievementSource `json:"source,omitempty"`
}

func (a Achievement) ParsedUnlockedDate() (time.Time, bool) {
	return parseDate(a.UnlockedDate)
}

type ProfileStats struct {
	ProjectsCompleted  int `json:"projectsCompleted"`
	TournamentsPlayed  int `json:"tournamentsPlayed"`
	TournamentsWon     int `json:"tournamentsWon"`
	YearsCoding        int `json:"yearsCoding"`
	TechnologiesLearnt int `json:"technologiesLearnt"`
	HoursGaming        int `json:"hoursGaming"`
}

type Background struct {
	Summary   string   `json:"summary"`
	Education string   `json:"education,omitempty"`
	Location  string   `json:"location,omitempty"`
	Interests []string `json:"interests"`
}

type UserProfile struct {
	Name           string         `json:"name" validate:"required"`
	Title          string         `json:"title" validate:"required"`
	Tagline        string         `json:"tagline,omitempty"`
	Avatar         string         `json:"avatar,omitempty"`
	Level          int            `json:"level" validate:"gte=0"`
	XP             int            `json:"xp" validate:"gte=0"`
	Stats          ProfileStats   `json:"stats"`
	Background     Background     `json:"background"`
	CharacterStats map[string]int `json:"characterStats"`
	Achievements   []Achievement  `json:"achievements"`
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
