package engine

// scoreRound compares board strength and credits the stronger side.
// A tie credits nobody.
func (g *GameState) scoreRound() RoundResult {
	res := RoundResult{
		Round: g.Round,
		Power: [2]uint32{g.TotalPower(PlayerOne), g.TotalPower(PlayerTwo)},
	}
	switch {
	case res.Power[PlayerOne] > res.Power[PlayerTwo]:
		res.Winner = PlayerOne
	case res.Power[PlayerTwo] > res.Power[PlayerOne]:
		res.Winner = PlayerTwo
	default:
		res.Tied = true
		return res
	}
	g.Players[res.Winner].RoundsWon++
	return res
}

// endRound resolves the round that just closed:
//  1. score the boards
//  2. bonus draws keyed by the round number
//  3. discard both boards to their graveyards
//  4. clear passed flags
//  5. finish the match, or open the next round with PlayerOne to act
func (g *GameState) endRound() {
	res := g.scoreRound()
	g.Rounds = append(g.Rounds, res)

	bonus := g.Rules.roundBonus(g.Round)
	g.draw(PlayerOne, bonus)
	g.draw(PlayerTwo, bonus)

	for p := range g.Players {
		ps := &g.Players[p]
		ps.Graveyard = append(ps.Graveyard, ps.Board.clear()...)
		ps.Passed = false
	}

	g.LastAction.RoundEnded = true

	if g.checkMatchEnd() {
		return
	}
	g.Round++
	g.CurrentPlayer = PlayerOne
}

// checkMatchEnd sets FlagFinished when a side has enough round wins or the
// final round has been played.
func (g *GameState) checkMatchEnd() bool {
	need := g.Rules.roundsToWin()
	if g.Players[PlayerOne].RoundsWon >= need ||
		g.Players[PlayerTwo].RoundsWon >= need ||
		g.Round >= MaxRounds {
		g.Flags |= FlagFinished
		return true
	}
	return false
}
