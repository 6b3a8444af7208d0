package storage

import (
	"context"
	"errors"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/database"
)

// Postgres stores values in the kv_store table created by the migrations.
type Postgres struct {
	db database.DB
}

func NewPostgres(db database.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	if p == nil || p.db == nil {
		return "", false, ErrUnavailable
	}
	var v string
	err := p.db.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	if p == nil || p.db == nil {
		return ErrUnavailable
	}
	_, err := p.db.Exec(ctx, `
INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, key, value)
	return err
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	if p == nil || p.db == nil {
		return ErrUnavailable
	}
	_, err := p.db.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key)
	return err
}
