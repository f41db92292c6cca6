package engine

// resolveCard puts a card that has left owner's hand onto a board and
// applies its effect.
func (g *GameState) resolveCard(owner PlayerID, card Card) {
	switch card.Kind {
	case KindSpy:
		g.resolveSpy(owner, card)
	default:
		g.Players[owner].Board.Place(card)
	}
}

// resolveSpy places the spy on the opponent's board and rewards its owner
// with up to SpyDraw cards. A short deck yields fewer cards.
func (g *GameState) resolveSpy(owner PlayerID, card Card) {
	g.Players[owner.Opponent()].Board.Place(card)
	g.LastAction.Drawn = g.draw(owner, g.Rules.SpyDraw)
}
