package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/database"
	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"
)

var ErrNoContent = errors.New("no portfolio content stored")

// Record kinds stored in portfolio_records.kind.
const (
	KindProfile           = "profile"
	KindSkill             = "skill"
	KindProject           = "project"
	KindCategory          = "category"
	KindTournament        = "tournament"
	KindGamingAchievement = "gaming_achievement"
)

type ContentRepository interface {
	LoadAll(ctx context.Context) (content.Collections, error)
	ReplaceAll(ctx context.Context, data content.Collections) error
}

// PostgresContentRepository keeps every record as a JSON payload keyed by
// kind and id, with position preserving collection order.
type PostgresContentRepository struct {
	db database.DB
}

func NewPostgresContentRepository(db database.DB) *PostgresContentRepository {
	return &PostgresContentRepository{db: db}
}

func (r *PostgresContentRepository) LoadAll(ctx context.Context) (content.Collections, error) {
	rows, err := r.db.Query(ctx, `SELECT kind, id, payload FROM portfolio_records ORDER BY kind ASC, position ASC`)
	if err != nil {
		return content.Collections{}, err
	}
	defer rows.Close()

	var out content.Collections
	seen := 0
	hasProfile := false
	for rows.Next() {
		var kind, id string
		var payload []byte
		if err := rows.Scan(&kind, &id, &payload); err != nil {
			return content.Collections{}, err
		}
		if err := decodeRecord(&out, kind, payload); err != nil {
			return content.Collections{}, fmt.Errorf("decode %s %s: %w", kind, id, err)
		}
		if kind == KindProfile {
			hasProfile = true
		}
		seen++
	}
	if err := rows.Err(); err != nil {
		return content.Collections{}, err
	}
	if seen == 0 || !hasProfile {
		return content.Collections{}, ErrNoContent
	}
	return out, nil
}

func decodeRecord(out *content.Collections, kind string, payload []byte) error {
	switch kind {
	case KindProfile:
		return json.Unmarshal(payload, &out.Profile)
	case KindSkill:
		return appendDecoded(&out.Skills, payload)
	case KindProject:
		return appendDecoded(&out.Projects, payload)
	case KindCategory:
		return appendDecoded(&out.Categories, payload)
	case KindTournament:
		return appendDecoded(&out.Tournaments, payload)
	case KindGamingAchievement:
		return appendDecoded(&out.GamingAchievements, payload)
	default:
		return fmt.Errorf("unknown record kind %q", kind)
	}
}

func appendDecoded[T any](dst *[]T, payload []byte) error {
	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

type record struct {
	kind    string
	id      string
	payload any
}

func flatten(data content.Collections) []record {
	out := []record{{kind: KindProfile, id: KindProfile, payload: data.Profile}}
	for _, s := range data.Skills {
		out = append(out, record{kind: KindSkill, id: s.ID, payload: s})
	}
	for _, p := range data.Projects {
		out = append(out, record{kind: KindProject, id: p.ID, payload: p})
	}
	for _, c := range data.Categories {
		out = append(out, record{kind: KindCategory, id: c.ID, payload: c})
	}
	for _, t := range data.Tournaments {
		out = append(out, record{kind: KindTournament, id: t.ID, payload: t})
	}
	for _, a := range data.GamingAchievements {
		out = append(out, record{kind: KindGamingAchievement, id: a.ID, payload: a})
	}
	return out
}

// ReplaceAll swaps the stored dataset for data in one transaction.
func (r *PostgresContentRepository) ReplaceAll(ctx context.Context, data content.Collections) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM portfolio_records`); err != nil {
		return err
	}

	positions := map[string]int{}
	for _, rec := range flatten(data) {
		b, err := json.Marshal(rec.payload)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", rec.kind, rec.id, err)
		}
		pos := positions[rec.kind]
		positions[rec.kind] = pos + 1

		_, err = tx.Exec(
			ctx,
			`INSERT INTO portfolio_records (kind, id, position, payload) VALUES ($1, $2, $3, $4::jsonb)`,
			rec.kind,
			rec.id,
			pos,
			string(b),
		)
		if err != nil {
			return fmt.Errorf("insert %s %s: %w", rec.kind, rec.id, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
