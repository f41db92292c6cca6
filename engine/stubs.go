package engine

// HandLen returns the number of cards in the given player's hand.
func (g *GameState) HandLen(p PlayerID) int {
	return len(g.Players[p].Hand)
}

// DeckLen returns the number of cards left in the given player's draw pile.
func (g *GameState) DeckLen(p PlayerID) int {
	return len(g.Players[p].Deck)
}
