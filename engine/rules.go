package engine

// MaxRounds is the length of a best-of-three match.
const MaxRounds = 3

// MatchRules holds the game-design constants of a match.
type MatchRules struct {
	OpeningHand uint8            // cards drawn into each hand at construction
	SpyDraw     uint8            // cards drawn by the player of a spy
	RoundBonus  [MaxRounds]uint8 // cards each player draws after round i+1 ends
	RoundsToWin uint8
}

// DefaultMatchRules returns the standard rules.
func DefaultMatchRules() MatchRules {
	return MatchRules{
		OpeningHand: 7,
		SpyDraw:     2,
		RoundBonus:  [MaxRounds]uint8{2, 1, 0},
		RoundsToWin: 2,
	}
}

// roundBonus returns the bonus draw owed after the given round ends.
func (r *MatchRules) roundBonus(round uint8) uint8 {
	if round == 0 || round > MaxRounds {
		return 0
	}
	return r.RoundBonus[round-1]
}

// roundsToWin returns the effective win threshold, treating 0 as 2.
func (r *MatchRules) roundsToWin() uint8 {
	if r.RoundsToWin == 0 {
		return 2
	}
	return r.RoundsToWin
}
