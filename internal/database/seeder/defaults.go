package seeder

import "github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/dataset"

// Defaults seeds the built-in portfolio.
func Defaults() []Seeder {
	return []Seeder{
		ContentSeeder{Data: dataset.Default()},
	}
}
