package engine

// StateHash returns a 64-bit FNV-1a hash over every zone, the turn and the
// round. Equal states hash equally.
func (g *GameState) StateHash() uint64 {
	h := uint64(14695981039346656037) // FNV-1a offset basis
	const prime = uint64(1099511628211)

	mix := func(v uint64) {
		h ^= v
		h *= prime
	}
	zone := func(tag uint64, cs []Card) {
		mix(tag<<56 | uint64(len(cs)))
		for _, c := range cs {
			mix(uint64(c.ID)<<16 | uint64(c.Power)<<8 | uint64(c.Kind)<<4 | uint64(c.Row))
		}
	}

	for p := range g.Players {
		ps := &g.Players[p]
		zone(1, ps.Deck)
		zone(2, ps.Hand)
		for r := range ps.Board.Rows {
			zone(3+uint64(r), ps.Board.Rows[r])
		}
		zone(6, ps.Graveyard)
		passed := uint64(0)
		if ps.Passed {
			passed = 1
		}
		mix(uint64(ps.RoundsWon)<<8 | passed)
	}
	mix(uint64(g.CurrentPlayer)<<48 | uint64(g.Round)<<32 | uint64(g.Flags))
	return h
}
