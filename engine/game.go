// Package engine implements the Gwynt match rules.
//
// A GameState is a plain in-memory state machine: it is built once from two
// already-loaded decks, advanced only through ApplyAction, and performs no
// I/O. It is not safe for concurrent use.
package engine

// PlayerState holds one side's cards and round bookkeeping.
type PlayerState struct {
	Deck      []Card // draw pile; Deck[0] is drawn first
	Hand      []Card
	Board     Board
	Graveyard []Card // cards discarded from this side's board at round end
	Passed    bool
	RoundsWon uint8
}

// GameState holds the complete state of a match.
type GameState struct {
	Players       [2]PlayerState
	CurrentPlayer PlayerID
	Round         uint8 // 1..MaxRounds
	Flags         uint16
	Rules         MatchRules
	LastAction    LastActionInfo
	Rounds        []RoundResult // completed rounds, oldest first
}

// ---------------------------------------------------------------------------
// Flags bitfield
// ---------------------------------------------------------------------------

const (
	FlagFinished uint16 = 1 << 0
)

// IsFinished reports whether the match is over. Once set it never clears.
func (g *GameState) IsFinished() bool { return g.Flags&FlagFinished != 0 }

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

// NewWithDecks builds a match with the default rules.
func NewWithDecks(deckOne, deckTwo []Card) *GameState {
	return NewMatch(deckOne, deckTwo, DefaultMatchRules())
}

// NewMatch builds a match from two decks and draws the opening hands.
// The decks are copied; the caller keeps no reference into engine zones.
// Decks shorter than the opening hand are drawn out without error.
func NewMatch(deckOne, deckTwo []Card, rules MatchRules) *GameState {
	g := &GameState{
		CurrentPlayer: PlayerOne,
		Round:         1,
		Rules:         rules,
	}
	g.Players[PlayerOne].Deck = append([]Card(nil), deckOne...)
	g.Players[PlayerTwo].Deck = append([]Card(nil), deckTwo...)

	g.draw(PlayerOne, rules.OpeningHand)
	g.draw(PlayerTwo, rules.OpeningHand)
	return g
}

// draw moves up to n cards from the top of p's deck into p's hand and
// returns how many were moved.
func (g *GameState) draw(p PlayerID, n uint8) uint8 {
	ps := &g.Players[p]
	k := int(n)
	if k > len(ps.Deck) {
		k = len(ps.Deck)
	}
	ps.Hand = append(ps.Hand, ps.Deck[:k]...)
	ps.Deck = ps.Deck[k:]
	return uint8(k)
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// Player returns the state of side p.
func (g *GameState) Player(p PlayerID) *PlayerState { return &g.Players[p] }

// TotalPower returns the board strength of side p.
func (g *GameState) TotalPower(p PlayerID) uint32 { return g.Players[p].Board.TotalPower() }

// RoundsWon returns the number of rounds side p has won.
func (g *GameState) RoundsWon(p PlayerID) uint8 { return g.Players[p].RoundsWon }

// IsDone reports whether side p has no further moves this round.
func (g *GameState) IsDone(p PlayerID) bool {
	ps := &g.Players[p]
	return ps.Passed || len(ps.Hand) == 0
}

// Outcome reports whether the match is running, decided, or drawn.
func (g *GameState) Outcome() Outcome {
	if !g.IsFinished() {
		return OutcomeInProgress
	}
	if g.Players[PlayerOne].RoundsWon == g.Players[PlayerTwo].RoundsWon {
		return OutcomeTied
	}
	return OutcomeDecided
}

// Winner returns the side with strictly more round wins. ok is false while
// the match is running and when it finished level; use Outcome to tell
// those apart.
func (g *GameState) Winner() (winner PlayerID, ok bool) {
	if g.Outcome() != OutcomeDecided {
		return PlayerOne, false
	}
	if g.Players[PlayerOne].RoundsWon > g.Players[PlayerTwo].RoundsWon {
		return PlayerOne, true
	}
	return PlayerTwo, true
}

// ---------------------------------------------------------------------------
// Clone
// ---------------------------------------------------------------------------

// Clone returns a deep copy of the match. Mutating the copy never affects g.
func (g *GameState) Clone() *GameState {
	c := *g
	for p := range c.Players {
		src := &g.Players[p]
		dst := &c.Players[p]
		dst.Deck = cloneCards(src.Deck)
		dst.Hand = cloneCards(src.Hand)
		dst.Graveyard = cloneCards(src.Graveyard)
		for r := range dst.Board.Rows {
			dst.Board.Rows[r] = cloneCards(src.Board.Rows[r])
		}
	}
	if g.Rounds != nil {
		c.Rounds = make([]RoundResult, len(g.Rounds))
		copy(c.Rounds, g.Rounds)
	}
	return &c
}

func cloneCards(cs []Card) []Card {
	if cs == nil {
		return nil
	}
	out := make([]Card, len(cs))
	copy(out, cs)
	return out
}
