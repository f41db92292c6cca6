package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrMatchFinished is returned for any action submitted after the match ended.
	ErrMatchFinished = errors.New("match is already finished")
	// ErrInvalidAction is returned for an action not in LegalActions.
	ErrInvalidAction = errors.New("invalid action")
)

// ApplyAction applies a move for the current player. An action that is not
// legal is rejected with an error and leaves the state untouched.
func (g *GameState) ApplyAction(a Action) error {
	if g.IsFinished() {
		return ErrMatchFinished
	}
	acting := g.CurrentPlayer
	if g.Players[acting].Passed {
		return fmt.Errorf("%w: %s has already passed this round", ErrInvalidAction, acting)
	}

	switch a.Kind {
	case ActionPlayCard:
		if err := g.playCard(a.CardID); err != nil {
			return err
		}
	case ActionPass:
		g.pass()
	default:
		return fmt.Errorf("%w: unknown action kind %d", ErrInvalidAction, a.Kind)
	}

	g.advanceTurn()
	return nil
}

// playCard moves a card from the current player's hand to a board.
func (g *GameState) playCard(id CardID) error {
	acting := g.CurrentPlayer
	idx := g.handIndex(acting, id)
	if idx < 0 {
		return fmt.Errorf("%w: card %d is not in %s's hand", ErrInvalidAction, id, acting)
	}

	ps := &g.Players[acting]
	card := ps.Hand[idx]
	ps.Hand = append(ps.Hand[:idx], ps.Hand[idx+1:]...)

	g.LastAction = LastActionInfo{
		Action: PlayCard(id),
		Player: acting,
		Card:   card,
	}

	g.resolveCard(acting, card)
	return nil
}

// pass marks the current player as done for the round. The hand is kept.
func (g *GameState) pass() {
	acting := g.CurrentPlayer
	g.Players[acting].Passed = true

	g.LastAction = LastActionInfo{
		Action: Pass(),
		Player: acting,
	}
}

// advanceTurn ends the round once both sides are done; otherwise it hands
// the turn to the opponent if the opponent can still move.
func (g *GameState) advanceTurn() {
	opp := g.CurrentPlayer.Opponent()
	if g.IsDone(g.CurrentPlayer) && g.IsDone(opp) {
		g.endRound()
		return
	}
	if !g.IsDone(opp) {
		g.CurrentPlayer = opp
	}
}
