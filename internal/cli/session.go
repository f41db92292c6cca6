// Package cli runs a hot-seat match on a terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/gwynt/engine"
	"github.com/jason-s-yu/gwynt/internal/history"
	"github.com/jason-s-yu/gwynt/internal/render"
	"github.com/sirupsen/logrus"
)

// ErrInputClosed is returned when input ends before the match does.
var ErrInputClosed = errors.New("input closed before the match finished")

// Session drives one match from line-based input.
type Session struct {
	ID       uuid.UUID
	Factions [2]string

	in       *bufio.Reader
	lines    chan inputLine
	readOnce sync.Once
	out      io.Writer
	view     *render.Renderer
	log      *logrus.Entry
	recorder history.Recorder
	now      func() time.Time
}

// inputLine is one read from the input. err is set on the last one.
type inputLine struct {
	text string
	err  error
}

// Option customises a Session.
type Option func(*Session)

// WithRecorder stores the finished match through r.
func WithRecorder(r history.Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logrus.Logger) Option {
	return func(s *Session) { s.log = logrus.NewEntry(l) }
}

// WithID fixes the match id instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(s *Session) { s.ID = id }
}

// WithClock overrides time.Now for start and finish stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession reads moves from in and writes the table to out.
func NewSession(in io.Reader, out io.Writer, factions [2]string, opts ...Option) *Session {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	s := &Session{
		ID:       uuid.New(),
		Factions: factions,
		in:       bufio.NewReader(in),
		lines:    make(chan inputLine, 1),
		out:      out,
		view:     render.New(out, factions),
		log:      logrus.NewEntry(quiet),
		recorder: history.Nop{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("match_id", s.ID.String())
	return s
}

// Run plays g to completion. Invalid input is re-prompted. Cancelling ctx
// stops the run at once, even mid-prompt, and no further action is applied.
// The finished match is handed to the recorder; a recorder failure is logged
// and does not fail the run.
func (s *Session) Run(ctx context.Context, g *engine.GameState) (history.MatchRecord, error) {
	started := s.now()
	s.log.WithFields(logrus.Fields{
		"faction_one": s.Factions[0],
		"faction_two": s.Factions[1],
	}).Info("match started")

	round := g.Round
	for !g.IsFinished() {
		if err := ctx.Err(); err != nil {
			return history.MatchRecord{}, err
		}

		player := g.CurrentPlayer
		s.view.View(g, player)
		actions := g.LegalActions()
		s.view.Actions(g, actions)
		if len(actions) == 0 {
			return history.MatchRecord{}, fmt.Errorf("%s has no legal actions in round %d", player, g.Round)
		}

		a, err := s.choose(ctx, player, actions)
		if err != nil {
			return history.MatchRecord{}, err
		}
		if err := g.ApplyAction(a); err != nil {
			// LegalActions produced a, so this is an engine bug.
			return history.MatchRecord{}, fmt.Errorf("apply %s: %w", a, err)
		}

		s.log.WithFields(logrus.Fields{
			"round":  round,
			"player": player.String(),
			"action": a.String(),
			"state":  fmt.Sprintf("%016x", g.StateHash()),
		}).Debug("action applied")
		s.view.LastAction(g)

		if g.LastAction.RoundEnded {
			res := g.Rounds[len(g.Rounds)-1]
			s.view.RoundSummary(res)
			fields := logrus.Fields{"round": res.Round, "power_one": res.Power[0], "power_two": res.Power[1]}
			if !res.Tied {
				fields["winner"] = res.Winner.String()
			}
			s.log.WithFields(fields).Info("round finished")
			round = g.Round
		}
	}

	s.view.Outcome(g)
	rec := history.NewRecord(s.ID, s.Factions, g, started, s.now())
	s.log.WithFields(logrus.Fields{
		"outcome": rec.Outcome,
		"winner":  rec.Winner,
		"rounds":  len(rec.Rounds),
	}).Info("match finished")

	if err := s.recorder.Record(ctx, rec); err != nil {
		s.log.WithError(err).Warn("record match")
	}
	return rec, nil
}

// readLines feeds s.lines until the input fails, then closes it.
func (s *Session) readLines() {
	defer close(s.lines)
	for {
		text, err := s.in.ReadString('\n')
		s.lines <- inputLine{text: text, err: err}
		if err != nil {
			return
		}
	}
}

// next waits for an input line or for ctx to end.
func (s *Session) next(ctx context.Context) (inputLine, bool, error) {
	s.readOnce.Do(func() { go s.readLines() })
	select {
	case <-ctx.Done():
		return inputLine{}, false, ctx.Err()
	case l, ok := <-s.lines:
		// A line and a cancellation can race; cancellation wins.
		if err := ctx.Err(); err != nil {
			return inputLine{}, false, err
		}
		return l, ok, nil
	}
}

// choose prompts until the current player picks a listed action.
func (s *Session) choose(ctx context.Context, player engine.PlayerID, actions []engine.Action) (engine.Action, error) {
	for {
		fmt.Fprintf(s.out, "%s, choose an action [0-%d]: ", player, len(actions)-1)
		l, ok, err := s.next(ctx)
		if err != nil {
			fmt.Fprintln(s.out)
			return engine.Action{}, err
		}
		if !ok || (l.err != nil && l.text == "") {
			fmt.Fprintln(s.out)
			if !ok || errors.Is(l.err, io.EOF) {
				return engine.Action{}, ErrInputClosed
			}
			return engine.Action{}, fmt.Errorf("read input: %w", l.err)
		}
		if l.err != nil && !errors.Is(l.err, io.EOF) {
			return engine.Action{}, fmt.Errorf("read input: %w", l.err)
		}

		text := strings.TrimSpace(l.text)
		idx, convErr := strconv.Atoi(text)
		switch {
		case convErr != nil:
			fmt.Fprintf(s.out, "%q is not a number.\n", text)
		case idx < 0 || idx >= len(actions):
			fmt.Fprintf(s.out, "%d is out of range.\n", idx)
		default:
			return actions[idx], nil
		}
		s.log.WithFields(logrus.Fields{"player": player.String(), "input": text}).Warn("rejected input")

		if l.err != nil {
			// Final unterminated line was unusable.
			fmt.Fprintln(s.out)
			return engine.Action{}, ErrInputClosed
		}
	}
}
