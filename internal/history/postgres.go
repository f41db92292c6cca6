package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const createMatchesTable = `
CREATE TABLE IF NOT EXISTS gwynt_matches (
	id           UUID PRIMARY KEY,
	faction_one  TEXT        NOT NULL,
	faction_two  TEXT        NOT NULL,
	started_at   TIMESTAMPTZ NOT NULL,
	finished_at  TIMESTAMPTZ NOT NULL,
	outcome      TEXT        NOT NULL,
	winner       TEXT        NOT NULL DEFAULT '',
	rounds_won_one SMALLINT  NOT NULL,
	rounds_won_two SMALLINT  NOT NULL,
	rounds       JSONB       NOT NULL
)`

const insertMatch = `
INSERT INTO gwynt_matches (
	id, faction_one, faction_two, started_at, finished_at,
	outcome, winner, rounds_won_one, rounds_won_two, rounds
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO NOTHING`

// PostgresRecorder writes one row per finished match.
type PostgresRecorder struct {
	pool *pgxpool.Pool
}

// NewPostgresRecorder connects to databaseURL and makes sure the table exists.
func NewPostgresRecorder(ctx context.Context, databaseURL string) (*PostgresRecorder, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	r := &PostgresRecorder{pool: pool}
	if err := r.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return r, nil
}

// EnsureSchema creates the matches table if needed.
func (r *PostgresRecorder) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createMatchesTable); err != nil {
		return fmt.Errorf("create gwynt_matches: %w", err)
	}
	return nil
}

// Record inserts rec. Recording the same match twice is a no-op.
func (r *PostgresRecorder) Record(ctx context.Context, rec MatchRecord) error {
	rounds, err := json.Marshal(rec.Rounds)
	if err != nil {
		return fmt.Errorf("encode rounds: %w", err)
	}
	_, err = r.pool.Exec(ctx, insertMatch,
		rec.ID, rec.Factions[0], rec.Factions[1], rec.StartedAt, rec.FinishedAt,
		rec.Outcome, rec.Winner, int16(rec.RoundsWon[0]), int16(rec.RoundsWon[1]), rounds,
	)
	if err != nil {
		return fmt.Errorf("insert match %s: %w", rec.ID, err)
	}
	return nil
}

// CountByOutcome returns how many recorded matches ended with outcome.
func (r *PostgresRecorder) CountByOutcome(ctx context.Context, outcome string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM gwynt_matches WHERE outcome = $1`, outcome).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return n, nil
}

func (r *PostgresRecorder) Close() error {
	r.pool.Close()
	return nil
}
