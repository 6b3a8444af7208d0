package main

import (
	"fmt"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/database/migration"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/database/migrations"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/database/seeder"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/loader"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/validation"

	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			n, err := migration.Runner{FS: migrations.FS, Logger: opts.logger()}.Run(cmd.Context(), db.SQLDB())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", n)
			return err
		},
	}
}

// newSeedCmd replaces the stored content with the built-in dataset, or with
// a validated file when --source=file.
func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the content stored in Postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var src loader.Loader = loader.Static{}
			if opts.source == "file" {
				src = loader.File{Path: opts.path}
			}
			data, err := loader.Validated{Next: src, Validator: validation.New(), Logger: opts.logger()}.Load(ctx)
			if err != nil {
				return err
			}

			db, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if _, err := (migration.Runner{FS: migrations.FS, Logger: opts.logger()}).Run(ctx, db.SQLDB()); err != nil {
				return err
			}
			s := seeder.ContentSeeder{Data: data}
			if err := (seeder.Runner{Seeders: []seeder.Seeder{s}}).Run(ctx, db); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded skills=%d projects=%d tournaments=%d\n",
				len(data.Skills), len(data.Projects), len(data.Tournaments))
			return err
		},
	}
}
