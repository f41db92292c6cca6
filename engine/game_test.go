package engine

import (
	"fmt"
	"testing"
)

// makeDeck builds n cards starting at id with the given power, all units on melee.
func makeDeck(startID CardID, n int, power uint8) []Card {
	out := make([]Card, n)
	for i := range out {
		out[i] = Card{
			ID:    startID + CardID(i),
			Name:  fmt.Sprintf("Soldier %d", startID+CardID(i)),
			Power: power,
		}
	}
	return out
}

// TestNewWithDecksOpeningHand verifies each side draws the opening hand from the top.
func TestNewWithDecksOpeningHand(t *testing.T) {
	g := NewWithDecks(makeDeck(0, 10, 3), makeDeck(100, 10, 4))

	for _, p := range []PlayerID{PlayerOne, PlayerTwo} {
		if g.HandLen(p) != 7 {
			t.Errorf("%s HandLen: want 7, got %d", p, g.HandLen(p))
		}
		if g.DeckLen(p) != 3 {
			t.Errorf("%s DeckLen: want 3, got %d", p, g.DeckLen(p))
		}
	}
	if g.Players[PlayerOne].Hand[0].ID != 0 {
		t.Errorf("first card drawn: want id 0, got %d", g.Players[PlayerOne].Hand[0].ID)
	}
	if g.Players[PlayerOne].Deck[0].ID != 7 {
		t.Errorf("deck top after opening draw: want id 7, got %d", g.Players[PlayerOne].Deck[0].ID)
	}
	if g.CurrentPlayer != PlayerOne {
		t.Errorf("CurrentPlayer: want P1, got %s", g.CurrentPlayer)
	}
	if g.Round != 1 {
		t.Errorf("Round: want 1, got %d", g.Round)
	}
	if g.IsFinished() {
		t.Error("new match should not be finished")
	}
}

// TestNewWithDecksShortDeck verifies a deck shorter than the opening hand is drawn out.
func TestNewWithDecksShortDeck(t *testing.T) {
	g := NewWithDecks(makeDeck(0, 3, 1), nil)

	if g.HandLen(PlayerOne) != 3 {
		t.Errorf("P1 HandLen: want 3, got %d", g.HandLen(PlayerOne))
	}
	if g.DeckLen(PlayerOne) != 0 {
		t.Errorf("P1 DeckLen: want 0, got %d", g.DeckLen(PlayerOne))
	}
	if g.HandLen(PlayerTwo) != 0 {
		t.Errorf("P2 HandLen: want 0, got %d", g.HandLen(PlayerTwo))
	}
}

// TestNewWithDecksCopiesInput verifies the caller's slices are not aliased.
func TestNewWithDecksCopiesInput(t *testing.T) {
	one := makeDeck(0, 9, 3)
	g := NewWithDecks(one, makeDeck(100, 9, 4))

	one[7].Power = 99
	if g.Players[PlayerOne].Deck[0].Power != 3 {
		t.Errorf("engine deck changed through caller slice: power %d", g.Players[PlayerOne].Deck[0].Power)
	}
}

// TestNewMatchCustomRules verifies the opening hand follows the rules.
func TestNewMatchCustomRules(t *testing.T) {
	rules := DefaultMatchRules()
	rules.OpeningHand = 4
	g := NewMatch(makeDeck(0, 10, 3), makeDeck(100, 10, 4), rules)

	if g.HandLen(PlayerOne) != 4 || g.HandLen(PlayerTwo) != 4 {
		t.Errorf("HandLen: want 4/4, got %d/%d", g.HandLen(PlayerOne), g.HandLen(PlayerTwo))
	}
}

// TestWinnerInProgress verifies no winner is reported before the match ends.
func TestWinnerInProgress(t *testing.T) {
	g := NewWithDecks(makeDeck(0, 2, 3), makeDeck(100, 2, 4))
	g.Players[PlayerOne].RoundsWon = 1

	if _, ok := g.Winner(); ok {
		t.Error("Winner: want none while in progress")
	}
	if g.Outcome() != OutcomeInProgress {
		t.Errorf("Outcome: want in_progress, got %s", g.Outcome())
	}
}

// TestWinnerTiedAndDecided covers both finished outcomes.
func TestWinnerTiedAndDecided(t *testing.T) {
	tests := []struct {
		name    string
		won     [2]uint8
		outcome Outcome
		winner  PlayerID
		ok      bool
	}{
		{"p1 decided", [2]uint8{2, 1}, OutcomeDecided, PlayerOne, true},
		{"p2 decided", [2]uint8{0, 2}, OutcomeDecided, PlayerTwo, true},
		{"level", [2]uint8{1, 1}, OutcomeTied, PlayerOne, false},
		{"all ties", [2]uint8{0, 0}, OutcomeTied, PlayerOne, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithDecks(nil, nil)
			g.Players[PlayerOne].RoundsWon = tc.won[0]
			g.Players[PlayerTwo].RoundsWon = tc.won[1]
			g.Flags |= FlagFinished

			if g.Outcome() != tc.outcome {
				t.Errorf("Outcome: want %s, got %s", tc.outcome, g.Outcome())
			}
			w, ok := g.Winner()
			if ok != tc.ok {
				t.Fatalf("Winner ok: want %v, got %v", tc.ok, ok)
			}
			if ok && w != tc.winner {
				t.Errorf("Winner: want %s, got %s", tc.winner, w)
			}
		})
	}
}

// TestCloneIndependent verifies mutations of a clone do not leak back.
func TestCloneIndependent(t *testing.T) {
	g := NewWithDecks(makeDeck(0, 9, 3), makeDeck(100, 9, 4))
	if err := g.ApplyAction(PlayCard(0)); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}

	c := g.Clone()
	if err := c.ApplyAction(PlayCard(100)); err != nil {
		t.Fatalf("clone PlayCard: %v", err)
	}
	c.Players[PlayerOne].Board.Rows[RowMelee][0].Power = 50
	c.Players[PlayerOne].Deck[0].Name = "changed"

	if g.HandLen(PlayerTwo) != 7 {
		t.Errorf("original P2 HandLen: want 7, got %d", g.HandLen(PlayerTwo))
	}
	if g.CurrentPlayer != PlayerTwo {
		t.Errorf("original CurrentPlayer: want P2, got %s", g.CurrentPlayer)
	}
	if g.TotalPower(PlayerOne) != 3 {
		t.Errorf("original P1 power: want 3, got %d", g.TotalPower(PlayerOne))
	}
	if g.Players[PlayerOne].Deck[0].Name == "changed" {
		t.Error("original deck mutated through clone")
	}
}

// TestPlayerIDOpponent verifies the side toggle.
func TestPlayerIDOpponent(t *testing.T) {
	if PlayerOne.Opponent() != PlayerTwo {
		t.Errorf("P1 opponent: want P2, got %s", PlayerOne.Opponent())
	}
	if PlayerTwo.Opponent() != PlayerOne {
		t.Errorf("P2 opponent: want P1, got %s", PlayerTwo.Opponent())
	}
}
