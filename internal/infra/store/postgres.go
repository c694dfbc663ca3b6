package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/atharva-sardesai/proposal/internal/domain/proposal"
	"github.com/atharva-sardesai/proposal/internal/infra/db/postgres"
)

// Postgres persists proposals as JSONB rows keyed by proposal id.
type Postgres struct {
	db *postgres.DB
}

func NewPostgres(db *postgres.DB) *Postgres {
	return &Postgres{db: db}
}

// Ensure creates the proposals table if it does not exist.
func (s *Postgres) Ensure(ctx context.Context) error {
	_, err := s.db.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS proposals (
			id         text PRIMARY KEY,
			data       jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("ensure proposals table: %w", err)
	}
	return nil
}

func (s *Postgres) Get(ctx context.Context, id string) (proposal.Record, bool, error) {
	var data []byte
	err := s.db.Pool.QueryRow(ctx, `SELECT data FROM proposals WHERE id = $1`, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return proposal.Record{}, false, nil
	}
	if err != nil {
		return proposal.Record{}, false, fmt.Errorf("get proposal %s: %w", id, err)
	}
	var rec proposal.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return proposal.Record{}, false, fmt.Errorf("decode proposal %s: %w", id, err)
	}
	return rec, true, nil
}

func (s *Postgres) Put(ctx context.Context, rec proposal.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode proposal %s: %w", rec.ID, err)
	}
	_, err = s.db.Pool.Exec(ctx, `
		INSERT INTO proposals (id, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		rec.ID, data)
	if err != nil {
		return fmt.Errorf("put proposal %s: %w", rec.ID, err)
	}
	return nil
}

func (s *Postgres) List(ctx context.Context) ([]proposal.Record, error) {
	rows, err := s.db.Pool.Query(ctx, `SELECT data FROM proposals ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()

	out := make([]proposal.Record, 0)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("list proposals: %w", err)
		}
		var rec proposal.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decode proposal: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
