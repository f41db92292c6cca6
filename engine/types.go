package engine

import (
	"fmt"
	"strings"
)

// PlayerID identifies one side of a match.
type PlayerID uint8

const (
	PlayerOne PlayerID = 0
	PlayerTwo PlayerID = 1
)

// Opponent returns the other side.
func (p PlayerID) Opponent() PlayerID { return 1 - p }

func (p PlayerID) String() string {
	switch p {
	case PlayerOne:
		return "P1"
	case PlayerTwo:
		return "P2"
	}
	return fmt.Sprintf("P?(%d)", uint8(p))
}

// CardID is assigned by the deck loader and is unique across both decks.
type CardID uint32

// CardKind selects how a card resolves when played.
type CardKind uint8

const (
	KindUnit CardKind = iota // 0: placed on the owner's board
	KindSpy                  // 1: placed on the opponent's board, owner draws
)

func (k CardKind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindSpy:
		return "spy"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseCardKind matches "spy" case-insensitively; anything else is a unit.
func ParseCardKind(s string) CardKind {
	if strings.EqualFold(strings.TrimSpace(s), "spy") {
		return KindSpy
	}
	return KindUnit
}

// Row is the board lane a card occupies. Rows do not affect scoring.
type Row uint8

const (
	RowMelee  Row = iota // 0
	RowRanged            // 1
	RowSiege             // 2

	NumRows = 3
)

func (r Row) String() string {
	switch r {
	case RowMelee:
		return "melee"
	case RowRanged:
		return "ranged"
	case RowSiege:
		return "siege"
	}
	return fmt.Sprintf("row(%d)", uint8(r))
}

// ParseRow matches "ranged" and "siege" case-insensitively; anything else is melee.
func ParseRow(s string) Row {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ranged":
		return RowRanged
	case "siege":
		return RowSiege
	}
	return RowMelee
}

// Card is a single playable card.
type Card struct {
	ID    CardID
	Name  string
	Power uint8
	Kind  CardKind
	Row   Row
}

func (c Card) String() string {
	return fmt.Sprintf("%s#%d(%d %s %s)", c.Name, c.ID, c.Power, c.Kind, c.Row)
}

// ---------------------------------------------------------------------------
// Board
// ---------------------------------------------------------------------------

// Board holds the cards on one side of the table, one ordered slice per row.
type Board struct {
	Rows [NumRows][]Card
}

// Place appends c to the row it belongs to. Out-of-range rows land in melee.
func (b *Board) Place(c Card) {
	r := c.Row
	if r >= NumRows {
		r = RowMelee
	}
	b.Rows[r] = append(b.Rows[r], c)
}

// TotalPower is the sum of card power across all rows.
func (b *Board) TotalPower() uint32 {
	var total uint32
	for r := range b.Rows {
		for _, c := range b.Rows[r] {
			total += uint32(c.Power)
		}
	}
	return total
}

// Len returns the number of cards on the board.
func (b *Board) Len() int {
	n := 0
	for r := range b.Rows {
		n += len(b.Rows[r])
	}
	return n
}

// Cards returns every card on the board in row order (melee, ranged, siege).
func (b *Board) Cards() []Card {
	out := make([]Card, 0, b.Len())
	for r := range b.Rows {
		out = append(out, b.Rows[r]...)
	}
	return out
}

// clear empties every row and returns the removed cards.
func (b *Board) clear() []Card {
	removed := b.Cards()
	for r := range b.Rows {
		b.Rows[r] = nil
	}
	return removed
}

// ---------------------------------------------------------------------------
// Actions
// ---------------------------------------------------------------------------

// ActionKind distinguishes the two move types.
type ActionKind uint8

const (
	ActionPlayCard ActionKind = iota // 0
	ActionPass                       // 1
)

// Action is a move submitted by the current player. CardID is only
// meaningful for ActionPlayCard.
type Action struct {
	Kind   ActionKind
	CardID CardID
}

// PlayCard returns the action that plays the card with the given id from hand.
func PlayCard(id CardID) Action { return Action{Kind: ActionPlayCard, CardID: id} }

// Pass returns the pass action.
func Pass() Action { return Action{Kind: ActionPass} }

func (a Action) String() string {
	switch a.Kind {
	case ActionPlayCard:
		return fmt.Sprintf("play(%d)", a.CardID)
	case ActionPass:
		return "pass"
	}
	return fmt.Sprintf("action(%d)", uint8(a.Kind))
}

// ---------------------------------------------------------------------------
// LastActionInfo
// ---------------------------------------------------------------------------

// LastActionInfo summarises the most recent accepted action.
type LastActionInfo struct {
	Action     Action
	Player     PlayerID
	Card       Card  // card played; zero for a pass
	Drawn      uint8 // cards drawn by the acting player as a spy reward
	RoundEnded bool
}

// RoundResult records the outcome of one completed round.
type RoundResult struct {
	Round  uint8
	Power  [2]uint32
	Winner PlayerID // meaningless when Tied
	Tied   bool
}

// Outcome distinguishes a running match from a decided or drawn one.
type Outcome uint8

const (
	OutcomeInProgress Outcome = iota // 0
	OutcomeDecided                   // 1
	OutcomeTied                      // 2
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeDecided:
		return "decided"
	case OutcomeTied:
		return "tied"
	}
	return fmt.Sprintf("outcome(%d)", uint8(o))
}
