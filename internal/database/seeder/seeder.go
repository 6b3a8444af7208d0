package seeder

import (
	"context"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
