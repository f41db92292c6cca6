package engine

// canAct reports whether the current player may still move this round.
func (g *GameState) canAct() bool {
	if g.IsFinished() {
		return false
	}
	return !g.Players[g.CurrentPlayer].Passed
}

// LegalActions returns the moves available to the current player: one
// PlayCard per hand card in hand order, then a single trailing Pass.
// It is empty once the match is finished or the current player has passed.
func (g *GameState) LegalActions() []Action {
	if !g.canAct() {
		return nil
	}

	hand := g.Players[g.CurrentPlayer].Hand
	actions := make([]Action, 0, len(hand)+1)
	for _, c := range hand {
		actions = append(actions, PlayCard(c.ID))
	}
	return append(actions, Pass())
}

// IsLegal reports whether a is currently in LegalActions.
func (g *GameState) IsLegal(a Action) bool {
	if !g.canAct() {
		return false
	}
	switch a.Kind {
	case ActionPass:
		return true
	case ActionPlayCard:
		return g.handIndex(g.CurrentPlayer, a.CardID) >= 0
	}
	return false
}

// handIndex returns the position of id in p's hand, or -1.
func (g *GameState) handIndex(p PlayerID, id CardID) int {
	for i, c := range g.Players[p].Hand {
		if c.ID == id {
			return i
		}
	}
	return -1
}
