package handler

import (
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/query"

	"github.com/gofiber/fiber/v3"
)

// queryValues exposes the request query string to the query parsers.
type queryValues struct {
	c fiber.Ctx
}

func (v queryValues) Get(key string) string {
	return v.c.Query(key)
}

func parseSkillQuery(c fiber.Ctx) query.SkillQuery {
	return query.ParseSkillQuery(queryValues{c})
}

func parseProjectQuery(c fiber.Ctx) query.ProjectQuery {
	return query.ParseProjectQuery(queryValues{c})
}

func parseTournamentQuery(c fiber.Ctx) query.TournamentQuery {
	return query.ParseTournamentQuery(queryValues{c})
}

func parseAchievementQuery(c fiber.Ctx) query.AchievementQuery {
	return query.ParseAchievementQuery(queryValues{c})
}
