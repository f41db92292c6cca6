package render

import (
	"bytes"
	"testing"

	"github.com/jason-s-yu/gwynt/engine"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlain(t *testing.T) (*Renderer, *bytes.Buffer) {
	t.Helper()
	SetColor(false)
	var buf bytes.Buffer
	return New(&buf, [2]string{"Northern Realms", "Nilfgaard"}), &buf
}

func plain(buf *bytes.Buffer) string {
	return pterm.RemoveColorFromString(buf.String())
}

func smallMatch() *engine.GameState {
	return engine.NewWithDecks(
		[]engine.Card{
			{ID: 1, Name: "Ves", Power: 5},
			{ID: 2, Name: "Thaler", Power: 1, Kind: engine.KindSpy, Row: engine.RowSiege},
			{ID: 3, Name: "Ballista", Power: 6, Row: engine.RowSiege},
		},
		[]engine.Card{
			{ID: 101, Name: "Cahir", Power: 6},
			{ID: 102, Name: "Archer", Power: 4, Row: engine.RowRanged},
		},
	)
}

func TestViewShowsOwnHandOnly(t *testing.T) {
	r, buf := newPlain(t)
	g := smallMatch()

	r.View(g, engine.PlayerOne)
	out := plain(buf)

	assert.Contains(t, out, "Round 1")
	assert.Contains(t, out, "Hand (3):")
	assert.Contains(t, out, "[1] Ves 5")
	assert.Contains(t, out, "[2] Thaler 1 spy")
	assert.NotContains(t, out, "Cahir", "opponent hand is hidden")
	assert.Contains(t, out, "P2 (Nilfgaard)")
}

func TestViewShowsBoardRowsAndPassed(t *testing.T) {
	r, buf := newPlain(t)
	g := smallMatch()
	require.NoError(t, g.ApplyAction(engine.PlayCard(3)))
	require.NoError(t, g.ApplyAction(engine.Pass()))

	r.View(g, engine.PlayerTwo)
	out := plain(buf)

	assert.Contains(t, out, "[passed]")
	assert.Contains(t, out, "siege    6 | [3] Ballista 6")
	assert.Contains(t, out, "P1 (Northern Realms) power 6")
}

func TestActionsMenu(t *testing.T) {
	r, buf := newPlain(t)
	g := smallMatch()

	r.Actions(g, g.LegalActions())
	out := plain(buf)

	assert.Contains(t, out, " 0) Play [1] Ves 5")
	assert.Contains(t, out, " 3) Pass")

	buf.Reset()
	r.Actions(g, nil)
	assert.Contains(t, plain(buf), "No actions available.")
}

func TestLastActionSpy(t *testing.T) {
	r, buf := newPlain(t)
	g := smallMatch()
	require.NoError(t, g.ApplyAction(engine.PlayCard(2)))

	r.LastAction(g)
	assert.Equal(t, "P1 (Northern Realms) plays [2] Thaler 1 spy onto P2's board and draws 0.\n", plain(buf))

	buf.Reset()
	require.NoError(t, g.ApplyAction(engine.Pass()))
	r.LastAction(g)
	assert.Equal(t, "P2 (Nilfgaard) passes.\n", plain(buf))
}

func TestRoundSummary(t *testing.T) {
	r, buf := newPlain(t)

	r.RoundSummary(engine.RoundResult{Round: 1, Power: [2]uint32{7, 3}, Winner: engine.PlayerOne})
	assert.Equal(t, "Round 1 over: P1 7 - P2 3, P1 (Northern Realms) wins the round\n", plain(buf))

	buf.Reset()
	r.RoundSummary(engine.RoundResult{Round: 2, Power: [2]uint32{4, 4}, Tied: true})
	assert.Equal(t, "Round 2 over: P1 4 - P2 4, tie\n", plain(buf))
}

func TestOutcome(t *testing.T) {
	r, buf := newPlain(t)

	g := engine.NewWithDecks(nil, nil)
	r.Outcome(g)
	assert.Contains(t, plain(buf), "Match in progress.")

	for !g.IsFinished() {
		require.NoError(t, g.ApplyAction(engine.Pass()))
	}
	buf.Reset()
	r.Outcome(g)
	assert.Contains(t, plain(buf), "The match is a draw 0 : 0.")

	g = engine.NewWithDecks([]engine.Card{{ID: 1, Power: 2}, {ID: 2, Power: 2}}, nil)
	for _, a := range []engine.Action{engine.PlayCard(1), engine.Pass(), engine.PlayCard(2), engine.Pass()} {
		require.NoError(t, g.ApplyAction(a))
	}
	require.True(t, g.IsFinished())
	buf.Reset()
	r.Outcome(g)
	assert.Contains(t, plain(buf), "P1 (Northern Realms) wins the match 2 : 0!")
}

func TestNewDefaultsNames(t *testing.T) {
	SetColor(false)
	var buf bytes.Buffer
	r := New(&buf, [2]string{})
	r.RoundSummary(engine.RoundResult{Round: 1, Winner: engine.PlayerTwo, Power: [2]uint32{0, 1}})
	assert.Contains(t, plain(&buf), "P2 (P2) wins the round")
}
