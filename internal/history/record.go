// Package history stores the results of finished matches.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/gwynt/engine"
)

// MatchRecord is the persisted summary of one finished match.
type MatchRecord struct {
	ID         uuid.UUID            `json:"id"`
	Factions   [2]string            `json:"factions"`
	StartedAt  time.Time            `json:"startedAt"`
	FinishedAt time.Time            `json:"finishedAt"`
	Outcome    string               `json:"outcome"`
	Winner     string               `json:"winner,omitempty"` // "P1" or "P2"; empty unless decided
	RoundsWon  [2]uint8             `json:"roundsWon"`
	Rounds     []engine.RoundResult `json:"rounds"`
}

// WinningFaction returns the faction of the winner, or "" when not decided.
func (r MatchRecord) WinningFaction() string {
	switch r.Winner {
	case engine.PlayerOne.String():
		return r.Factions[engine.PlayerOne]
	case engine.PlayerTwo.String():
		return r.Factions[engine.PlayerTwo]
	}
	return ""
}

// NewRecord summarises g. g should be finished; a running match is recorded
// with outcome "in_progress".
func NewRecord(id uuid.UUID, factions [2]string, g *engine.GameState, started, finished time.Time) MatchRecord {
	rec := MatchRecord{
		ID:         id,
		Factions:   factions,
		StartedAt:  started,
		FinishedAt: finished,
		Outcome:    g.Outcome().String(),
		RoundsWon:  [2]uint8{g.RoundsWon(engine.PlayerOne), g.RoundsWon(engine.PlayerTwo)},
		Rounds:     append([]engine.RoundResult(nil), g.Rounds...),
	}
	if w, ok := g.Winner(); ok {
		rec.Winner = w.String()
	}
	return rec
}

// Recorder persists finished matches.
type Recorder interface {
	Record(ctx context.Context, rec MatchRecord) error
	Close() error
}

// Nop discards every record.
type Nop struct{}

func (Nop) Record(context.Context, MatchRecord) error { return nil }
func (Nop) Close() error                              { return nil }

// Multi fans a record out to several recorders. Every recorder is tried; the
// errors are joined.
type Multi []Recorder

func (m Multi) Record(ctx context.Context, rec MatchRecord) error {
	var errs []error
	for _, r := range m {
		if err := r.Record(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) Close() error {
	var errs []error
	for _, r := range m {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
