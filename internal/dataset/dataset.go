// Package dataset holds the built-in portfolio content served when no
// external source is configured.
package dataset

import "github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"

func intPtr(v int) *int { return &v }

// Default returns a fresh copy of the built-in collections.
func Default() content.Collections {
	return content.Collections{
		Profile:            profile(),
		Skills:             skills(),
		Projects:           projects(),
		Categories:         categories(),
		Tournaments:        tournaments(),
		GamingAchievements: gamingAchievements(),
	}
}

func profile() content.UserProfile {
	return content.UserProfile{
		Name:    "Jaydeep",
		Title:   "Full-Stack Developer & Competitive Gamer",
		Tagline: "Shipping code by day, climbing ladders by night.",
		Avatar:  "/images/avatar.png",
		Level:   27,
		XP:      8450,
		Stats: content.ProfileStats{
			ProjectsCompleted:  4,
			TournamentsPlayed:  2,
			TournamentsWon:     1,
			YearsCoding:        4,
			TechnologiesLearnt: 18,
			HoursGaming:        3200,
		},
		Background: content.Background{
			Summary:   "Self-taught developer who found programming through game modding and never looked back.",
			Education: "B.Tech in Computer Engineering",
			Location:  "Gujarat, India",
			Interests: []string{"Esports", "Open source", "Game design", "Pixel art"},
		},
		CharacterStats: map[string]int{
			"strength":     78,
			"intelligence": 88,
			"agility":      82,
			"creativity":   91,
			"teamwork":     85,
		},
		Achievements: []content.Achievement{
			{ID: "first-deploy", Name: "First Deploy", Description: "Shipped a project to production", Icon: "🚀", Unlocked: true, UnlockedDate: "2021-02-14", Rarity: content.RarityCommon},
			{ID: "full-stack", Name: "Full-Stack Hero", Description: "Completed projects on both sides of the stack", Icon: "🛡️", Unlocked: true, UnlockedDate: "2022-08-30", Rarity: content.RarityRare},
			{ID: "open-source", Name: "Open Source Contributor", Description: "Merged pull requests into public repositories", Icon: "🌍", Unlocked: true, UnlockedDate: "2023-04-09", Rarity: content.RarityEpic},
			{ID: "bug-hunter", Name: "Bug Hunter", Description: "Closed 100 issues across projects", Icon: "🐛", Unlocked: false, Rarity: content.RarityEpic, Progress: intPtr(64), MaxProgress: intPtr(100)},
			{ID: "architect", Name: "System Architect", Description: "Designed a distributed system end to end", Icon: "🏛️", Unlocked: false, Rarity: content.RarityLegendary, Progress: intPtr(1), MaxProgress: intPtr(3)},
		},
	}
}

func skills() []content.Skill {
	return []content.Skill{
		{ID: "html-css", Name: "HTML & CSS", Category: content.CategoryFrontend, Proficiency: 92, YearsExperience: 4, Level: content.LevelExpert, Icon: "🎨", Description: "Semantic markup, responsive layouts and animation.", Certifications: []string{"freeCodeCamp Responsive Web Design"}, Projects: []string{"Gaming Portfolio"}, Prerequisites: []string{}, Unlocked: true},
		{ID: "javascript", Name: "JavaScript", Category: content.CategoryFrontend, Proficiency: 88, YearsExperience: 4, Level: content.LevelExpert, Icon: "⚡", Description: "Modern ES modules, async patterns and tooling.", Certifications: []string{"freeCodeCamp JavaScript Algorithms"}, Projects: []string{"Gaming Portfolio", "Tournament Tracker"}, Prerequisites: []string{"html-css"}, Unlocked: true},
		{ID: "react", Name: "React", Category: content.CategoryFrameworks, Proficiency: 85, YearsExperience: 3, Level: content.LevelAdvanced, Icon: "⚛️", Description: "Component architecture, hooks and context.", Certifications: []string{"Meta Front-End Developer"}, Projects: []string{"Gaming Portfolio", "Squad Finder"}, Prerequisites: []string{"javascript"}, Unlocked: true},
		{ID: "typescript", Name: "TypeScript", Category: content.CategoryFrontend, Proficiency: 74, YearsExperience: 2, Level: content.LevelAdvanced, Icon: "🔷", Description: "Typed front-end and Node.js codebases.", Certifications: []string{}, Projects: []string{"Squad Finder"}, Prerequisites: []string{"javascript"}, Unlocked: true},
		{ID: "nodejs", Name: "Node.js", Category: content.CategoryBackend, Proficiency: 80, YearsExperience: 3, Level: content.LevelAdvanced, Icon: "🟢", Description: "REST APIs, websockets and background jobs.", Certifications: []string{}, Projects: []string{"Tournament Tracker", "Discord Stat Bot"}, Prerequisites: []string{"javascript"}, Unlocked: true},
		{ID: "go", Name: "Go", Category: content.CategoryBackend, Proficiency: 58, YearsExperience: 1, Level: content.LevelIntermediate, Icon: "🐹", Description: "Concurrent services and CLIs.", Certifications: []string{}, Projects: []string{"Match Replay Parser"}, Prerequisites: []string{}, Unlocked: true},
		{ID: "mongodb", Name: "MongoDB", Category: content.CategoryDatabase, Proficiency: 72, YearsExperience: 2.5, Level: content.LevelAdvanced, Icon: "🍃", Description: "Document modelling and aggregation pipelines.", Certifications: []string{"MongoDB Associate Developer"}, Projects: []string{"Tournament Tracker"}, Prerequisites: []string{"nodejs"}, Unlocked: true},
		{ID: "postgresql", Name: "PostgreSQL", Category: content.CategoryDatabase, Proficiency: 64, YearsExperience: 1.5, Level: content.LevelIntermediate, Icon: "🐘", Description: "Relational schemas, indexes and JSONB.", Certifications: []string{}, Projects: []string{"Squad Finder"}, Prerequisites: []string{}, Unlocked: true},
		{ID: "docker", Name: "Docker", Category: content.CategoryTools, Proficiency: 70, YearsExperience: 2, Level: content.LevelAdvanced, Icon: "🐳", Description: "Containerised development and deployment.", Certifications: []string{}, Projects: []string{"Discord Stat Bot"}, Prerequisites: []string{}, Unlocked: true},
		{ID: "git", Name: "Git", Category: content.CategoryTools, Proficiency: 86, YearsExperience: 4, Level: content.LevelExpert, Icon: "🌿", Description: "Branching strategies and release automation.", Certifications: []string{}, Projects: []string{}, Prerequisites: []string{}, Unlocked: true},
		{ID: "threejs", Name: "Three.js", Category: content.CategoryFrameworks, Proficiency: 35, YearsExperience: 0.5, Level: content.LevelBeginner, Icon: "🧊", Description: "3D scenes and shaders in the browser.", Certifications: []string{}, Projects: []string{"Pixel Arena"}, Prerequisites: []string{"javascript"}, Unlocked: false},
		{ID: "kubernetes", Name: "Kubernetes", Category: content.CategoryTools, Proficiency: 20, YearsExperience: 0, Level: content.LevelBeginner, Icon: "☸️", Description: "Next on the skill tree.", Certifications: []string{}, Projects: []string{}, Prerequisites: []string{"docker"}, Unlocked: false},
	}
}

func categories() []content.Category {
	return []content.Category{
		{ID: "web", Name: "Web Apps", Icon: "🌐", Description: "Full-stack web applications"},
		{ID: "game", Name: "Games", Icon: "🎮", Description: "Browser games and gaming tools"},
		{ID: "bot", Name: "Bots & Automation", Icon: "🤖", Description: "Chat bots and automation scripts"},
		{ID: "tool", Name: "Developer Tools", Icon: "🛠️", Description: "CLIs and libraries"},
	}
}

func projects() []content.Project {
	return []content.Project{
		{
			ID: "gaming-portfolio", Title: "Gaming Portfolio", Category: "web", Status: content.StatusCompleted, Difficulty: content.DifficultyEpic,
			Description:     "A themed, animated portfolio that presents a developer profile as a game HUD.",
			LongDescription: "Quest-style navigation, an unlockable skill tree, achievement toasts and a tournament trophy room.",
			Technologies:    []string{"React", "Framer Motion", "Tailwind CSS", "Howler.js"},
			Features:        []string{"Skill tree", "Achievement system", "Theme switcher", "Sound effects"},
			Achievements:    []string{"Lighthouse score 98", "Featured on a dev showcase"},
			Images:          []string{"/images/projects/portfolio-1.png", "/images/projects/portfolio-2.png"},
			Links:           content.ProjectLinks{GitHub: "https://github.com/example/gaming-portfolio", Live: "https://example.dev"},
			Rewards:         content.Rewards{XP: 500, Badges: []string{"UI Wizard"}, Skills: []string{"React", "HTML & CSS"}},
		},
		{
			ID: "tournament-tracker", Title: "Tournament Tracker", Category: "game", Status: content.StatusCompleted, Difficulty: content.DifficultyLegendary,
			Description:     "Bracket management and live standings for community esports events.",
			LongDescription: "Double elimination brackets, check-ins and realtime score reporting over websockets.",
			Technologies:    []string{"Node.js", "Express", "MongoDB", "Socket.IO"},
			Features:        []string{"Bracket generator", "Live scores", "Player check-in"},
			Achievements:    []string{"Used by 12 community events"},
			Images:          []string{"/images/projects/tracker.png"},
			Links:           content.ProjectLinks{GitHub: "https://github.com/example/tournament-tracker"},
			Rewards:         content.Rewards{XP: 750, Badges: []string{"Event Organizer"}, Skills: []string{"Node.js", "MongoDB", "WebSockets"}},
		},
		{
			ID: "discord-stat-bot", Title: "Discord Stat Bot", Category: "bot", Status: content.StatusCompleted, Difficulty: content.DifficultyRare,
			Description:  "Discord bot that posts match statistics and ranked progress for a guild.",
			Technologies: []string{"Node.js", "Discord.js", "Docker"},
			Features:     []string{"Slash commands", "Scheduled reports"},
			Achievements: []string{"Serving 40 servers"},
			Images:       []string{},
			Links:        content.ProjectLinks{GitHub: "https://github.com/example/discord-stat-bot"},
			Rewards:      content.Rewards{XP: 300, Badges: []string{"Bot Tamer"}, Skills: []string{"Node.js", "Docker"}},
		},
		{
			ID: "squad-finder", Title: "Squad Finder", Category: "web", Status: content.StatusInProgress, Difficulty: content.DifficultyEpic,
			Description:  "Matchmaking board for finding teammates by rank, role and schedule.",
			Technologies: []string{"React", "TypeScript", "PostgreSQL"},
			Features:     []string{"Role filters", "Availability calendar"},
			Achievements: []string{},
			Images:       []string{},
			Links:        content.ProjectLinks{GitHub: "https://github.com/example/squad-finder"},
			Rewards:      content.Rewards{XP: 400, Badges: []string{}, Skills: []string{"TypeScript", "PostgreSQL"}},
		},
		{
			ID: "match-replay-parser", Title: "Match Replay Parser", Category: "tool", Status: content.StatusInProgress, Difficulty: content.DifficultyRare,
			Description:  "Command-line parser that turns replay files into per-round timelines.",
			Technologies: []string{"Go"},
			Features:     []string{"Streaming decoder", "JSON export"},
			Achievements: []string{},
			Images:       []string{},
			Links:        content.ProjectLinks{},
			Rewards:      content.Rewards{XP: 250, Badges: []string{}, Skills: []string{"Go"}},
		},
		{
			ID: "pixel-arena", Title: "Pixel Arena", Category: "game", Status: content.StatusPlanned, Difficulty: content.DifficultyCommon,
			Description:  "Browser arena shooter with pixel-art sprites.",
			Technologies: []string{"Three.js", "WebGL"},
			Features:     []string{"Local multiplayer"},
			Achievements: []string{},
			Images:       []string{},
			Links:        content.ProjectLinks{},
			Rewards:      content.Rewards{XP: 150, Badges: []string{}, Skills: []string{"Three.js", "Game Design"}},
		},
	}
}

func tournaments() []content.Tournament {
	return []content.Tournament{
		{ID: "valorant-campus-2022", Name: "Campus Valorant Showdown", Game: "Valorant", Date: "2022-03-19", Placement: "3rd", Participants: 48, Achievement: content.MedalBronze, Skills: []string{"Teamwork", "Shot calling"}},
		{ID: "rl-winter-cup-2023", Name: "Rocket League Winter Cup", Game: "Rocket League", Date: "2023-01-28", Placement: "1st", Participants: 32, Achievement: content.MedalGold, Skills: []string{"Mechanics", "Rotation"}},
		{ID: "valorant-city-2023", Name: "City Valorant League", Game: "Valorant", Date: "2023-09-09", Placement: "Top 16", Participants: 128, Achievement: content.MedalParticipation, Skills: []string{"Communication"}},
	}
}

func gamingAchievements() []content.Achievement {
	return []content.Achievement{
		{ID: "radiant-push", Name: "Immortal Climber", Description: "Reached Immortal rank in Valorant", Icon: "🏆", Unlocked: true, UnlockedDate: "2023-05-20", Rarity: content.RarityLegendary},
		{ID: "ace-round", Name: "Ace", Description: "Eliminated the entire enemy team in one round", Icon: "🎯", Unlocked: true, UnlockedDate: "2022-11-03", Rarity: content.RarityEpic},
		{ID: "hat-trick", Name: "Hat Trick", Description: "Scored three goals in a ranked match", Icon: "⚽", Unlocked: true, UnlockedDate: "2022-07-15", Rarity: content.RarityRare},
		{ID: "marathon", Name: "Marathon", Description: "Played 1000 ranked matches", Icon: "⏱️", Unlocked: false, Rarity: content.RarityRare, Progress: intPtr(812), MaxProgress: intPtr(1000)},
	}
}
