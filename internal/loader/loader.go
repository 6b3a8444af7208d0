// Package loader produces the portfolio collections at startup from the
// built-in dataset, a JSON or YAML file, or Postgres.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/dataset"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/repository"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/validation"
)

var ErrInvalidContent = errors.New("invalid portfolio content")

type Loader interface {
	Load(ctx context.Context) (content.Collections, error)
}

// Static serves the dataset compiled into the binary.
type Static struct{}

func (Static) Load(ctx context.Context) (content.Collections, error) {
	if err := ctx.Err(); err != nil {
		return content.Collections{}, err
	}
	return dataset.Default(), nil
}

// Postgres reads the dataset written by the content seeder.
type Postgres struct {
	Repo repository.ContentRepository
}

func (p Postgres) Load(ctx context.Context) (content.Collections, error) {
	if p.Repo == nil {
		return content.Collections{}, errors.New("postgres loader: nil repository")
	}
	data, err := p.Repo.LoadAll(ctx)
	if err != nil {
		return content.Collections{}, fmt.Errorf("postgres loader: %w", err)
	}
	return data, nil
}

// Validated runs schema and consistency checks over whatever Next loads.
// Schema errors fail the load; consistency warnings are only logged.
type Validated struct {
	Next      Loader
	Validator *validation.Validator
	Logger    *log.Logger
}

func (v Validated) Load(ctx context.Context) (content.Collections, error) {
	data, err := v.Next.Load(ctx)
	if err != nil {
		return content.Collections{}, err
	}

	val := v.Validator
	if val == nil {
		val = validation.New()
	}
	rep := val.Collections(data)
	for _, w := range rep.Warnings {
		v.logf("[Content] warning code=%s %s", w.Code, w.Message)
	}
	if !rep.Valid {
		for _, e := range rep.Errors {
			v.logf("[Content] invalid: %s", e)
		}
		return content.Collections{}, fmt.Errorf("%w: %s", ErrInvalidContent, strings.Join(rep.Errors, "; "))
	}
	v.logf("[Content] loaded skills=%d projects=%d tournaments=%d achievements=%d warnings=%d",
		len(data.Skills), len(data.Projects), len(data.Tournaments), len(data.Achievements()), len(rep.Warnings))
	return data, nil
}

func (v Validated) logf(format string, args ...any) {
	if v.Logger != nil {
		v.Logger.Printf(format, args...)
	}
}
