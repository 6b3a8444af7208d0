package content

type SkillCategory string

const (
	CategoryFrontend   SkillCategory = "frontend"
	CategoryBackend    SkillCategory = "backend"
	CategoryDatabase   SkillCategory = "database"
	CategoryTools      SkillCategory = "tools"
	CategoryFrameworks SkillCategory = "frameworks"
)

var SkillCategories = []SkillCategory{
	CategoryFrontend,
	CategoryBackend,
	CategoryDatabase,
	CategoryTools,
	CategoryFrameworks,
}

func (c SkillCategory) Valid() bool {
	for _, v := range SkillCategories {
		if v == c {
			return true
		}
	}
	return false
}

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// SkillLevelRank orders levels from least to most experienced.
var SkillLevelRank = map[SkillLevel]int{
	LevelBeginner:     1,
	LevelIntermediate: 2,
	LevelAdvanced:     3,
	LevelExpert:       4,
}

func (l SkillLevel) Valid() bool {
	_, ok := SkillLevelRank[l]
	return ok
}

type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "completed"
	StatusInProgress ProjectStatus = "in-progress"
	StatusPlanned    ProjectStatus = "planned"
)

var ProjectStatusRank = map[ProjectStatus]int{
	StatusPlanned:    1,
	StatusInProgress: 2,
	StatusCompleted:  3,
}

func (s ProjectStatus) Valid() bool {
	_, ok := ProjectStatusRank[s]
	return ok
}

type Difficulty string

const (
	DifficultyCommon    Difficulty = "Common"
	DifficultyRare      Difficulty = "Rare"
	DifficultyEpic      Difficulty = "Epic"
	DifficultyLegendary Difficulty = "Legendary"
)

var DifficultyRank = map[Difficulty]int{
	DifficultyCommon:    1,
	DifficultyRare:      2,
	DifficultyEpic:      3,
	DifficultyLegendary: 4,
}

func (d Difficulty) Valid() bool {
	_, ok := DifficultyRank[d]
	return ok
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

var RarityRank = map[Rarity]int{
	RarityCommon:    1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
}

func (r Rarity) Valid() bool {
	_, ok := RarityRank[r]
	return ok
}

type Medal string

const (
	MedalGold          Medal = "gold"
	MedalSilver        Medal = "silver"
	MedalBronze        Medal = "bronze"
	MedalParticipation Medal = "participation"
)

var MedalRank = map[Medal]int{
	MedalParticipation: 1,
	MedalBronze:        2,
	MedalSilver:        3,
	MedalGold:          4,
}

func (m Medal) Valid() bool {
	_, ok := MedalRank[m]
	return ok
}

type AchievementSource string

const (
	SourceProfile AchievementSource = "profile"
	SourceGaming  AchievementSource = "gaming"
)
