package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/config"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/database"
	dbpostgres "github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/database/postgres"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/loader"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/repository"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	source  string
	path    string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "portfolioctl",
		Short:         "Inspect, validate and seed gaming portfolio content",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVar(&opts.source, "source", config.ContentSourceStatic, "content source: static, file or postgres")
	cmd.PersistentFlags().StringVar(&opts.path, "path", "", "content file for --source=file (.json, .yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")

	cmd.AddCommand(
		newValidateCmd(opts),
		newStatsCmd(opts),
		newQueryCmd(opts),
		newSeedCmd(opts),
		newMigrateCmd(opts),
		newHashPasswordCmd(),
		newTokenCmd(),
	)
	return cmd
}

func (o *rootOptions) logger() *log.Logger {
	if !o.verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}

// load reads raw collections from the selected source without validating
// them, so validate can report on broken content.
func (o *rootOptions) load(ctx context.Context) (content.Collections, func() error, error) {
	noop := func() error { return nil }
	switch o.source {
	case config.ContentSourceStatic, "":
		data, err := loader.Static{}.Load(ctx)
		return data, noop, err
	case config.ContentSourceFile:
		if o.path == "" {
			return content.Collections{}, noop, fmt.Errorf("--path is required for --source=file")
		}
		data, err := loader.File{Path: o.path}.Load(ctx)
		return data, noop, err
	case config.ContentSourcePostgres:
		db, err := openDB(ctx)
		if err != nil {
			return content.Collections{}, noop, err
		}
		data, err := loader.Postgres{Repo: repository.NewPostgresContentRepository(db)}.Load(ctx)
		return data, db.Close, err
	default:
		return content.Collections{}, noop, fmt.Errorf("unknown source %q", o.source)
	}
}

func openDB(ctx context.Context) (database.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if !cfg.Database.Configured() {
		return nil, fmt.Errorf("DB_HOST and DB_NAME must be set")
	}
	return dbpostgres.Connect(ctx, cfg.Database)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
