package store

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// PGStore backs the draft mirror with a Postgres table, for hosted studio
// deployments where a workstation file is not durable enough. Same
// synchronous contract as the other stores; each call uses a short-lived
// background context.
type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(ctx context.Context, dsn string) (*PGStore, error) {
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect drafts db: %w", err)
	}
	_, err = pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS drafts (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("create drafts table: %w", err)
	}
	return &PGStore{pool: pool}, nil
}

func (s *PGStore) Get(key string) (string, bool) {
	var v string
	err := s.pool.QueryRow(context.Background(),
		`SELECT value FROM drafts WHERE key = $1`, key).Scan(&v)
	if err != nil {
		if err != pgx.ErrNoRows {
			log.Printf("pgstore: get %s: %v", key, err)
		}
		return "", false
	}
	return v, true
}

func (s *PGStore) Set(key, value string) error {
	_, err := s.pool.Exec(context.Background(),
		`INSERT INTO drafts (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value)
	return err
}

func (s *PGStore) Delete(key string) error {
	_, err := s.pool.Exec(context.Background(), `DELETE FROM drafts WHERE key = $1`, key)
	return err
}

func (s *PGStore) Close() { s.pool.Close() }
