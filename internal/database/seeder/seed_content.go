package seeder

import (
	"context"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/database"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/repository"
)

// ContentSeeder replaces the stored portfolio with Data.
type ContentSeeder struct {
	Data content.Collections
}

func (ContentSeeder) Name() string { return "portfolio_content" }

func (s ContentSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "portfolio_records", "kind", "id", "position", "payload"); err != nil {
		return err
	}
	return repository.NewPostgresContentRepository(db).ReplaceAll(ctx, s.Data)
}
