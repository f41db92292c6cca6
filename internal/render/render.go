// Package render draws matches for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jason-s-yu/gwynt/engine"
	"github.com/pterm/pterm"
)

// SetColor toggles ANSI styling for every Renderer.
func SetColor(on bool) {
	if on {
		pterm.EnableColor()
		return
	}
	pterm.DisableColor()
}

// Renderer writes human-readable views of a match to w.
type Renderer struct {
	w     io.Writer
	names [2]string
}

// New returns a Renderer writing to w. names label the two players, usually
// by faction; empty names fall back to "P1"/"P2".
func New(w io.Writer, names [2]string) *Renderer {
	for p := range names {
		if names[p] == "" {
			names[p] = engine.PlayerID(p).String()
		}
	}
	return &Renderer{w: w, names: names}
}

func (r *Renderer) name(p engine.PlayerID) string {
	return fmt.Sprintf("%s (%s)", p, r.names[p])
}

// View shows the table from p's seat: the round header, both boards and p's
// hand. The opponent's hand is only counted.
func (r *Renderer) View(g *engine.GameState, p engine.PlayerID) {
	opp := p.Opponent()
	fmt.Fprintln(r.w, pterm.Bold.Sprintf("=== Round %d === rounds won %s %d : %d %s",
		g.Round, p, g.RoundsWon(p), g.RoundsWon(opp), opp))

	r.side(g, opp)
	fmt.Fprintln(r.w, pterm.Gray(strings.Repeat("-", 40)))
	r.side(g, p)

	me := g.Player(p)
	fmt.Fprintf(r.w, "Hand (%d):", len(me.Hand))
	if len(me.Hand) == 0 {
		fmt.Fprint(r.w, " empty")
	}
	fmt.Fprintln(r.w)
	for _, c := range me.Hand {
		fmt.Fprintln(r.w, "  "+card(c))
	}
}

func (r *Renderer) side(g *engine.GameState, p engine.PlayerID) {
	ps := g.Player(p)
	status := ""
	if ps.Passed {
		status = " " + pterm.Yellow("[passed]")
	}
	fmt.Fprintf(r.w, "%s power %s  hand %d  deck %d  graveyard %d%s\n",
		pterm.Bold.Sprint(r.name(p)), pterm.Cyan(g.TotalPower(p)),
		len(ps.Hand), len(ps.Deck), len(ps.Graveyard), status)
	for row := engine.Row(0); row < engine.NumRows; row++ {
		cards := ps.Board.Rows[row]
		var power uint32
		labels := make([]string, 0, len(cards))
		for _, c := range cards {
			power += uint32(c.Power)
			labels = append(labels, card(c))
		}
		fmt.Fprintf(r.w, "  %-6s %3d | %s\n", row, power, strings.Join(labels, " "))
	}
}

func card(c engine.Card) string {
	label := fmt.Sprintf("[%d] %s %d", c.ID, c.Name, c.Power)
	if c.Kind == engine.KindSpy {
		return pterm.LightRed(label + " spy")
	}
	return label
}

// Actions lists the legal actions as a numbered menu. Play actions show the
// card being played.
func (r *Renderer) Actions(g *engine.GameState, actions []engine.Action) {
	if len(actions) == 0 {
		fmt.Fprintln(r.w, pterm.Gray("No actions available."))
		return
	}
	hand := g.Player(g.CurrentPlayer).Hand
	for i, a := range actions {
		label := "Pass"
		if a.Kind == engine.ActionPlayCard {
			label = "Play " + a.String()
			for _, c := range hand {
				if c.ID == a.CardID {
					label = "Play " + card(c)
					break
				}
			}
		}
		fmt.Fprintf(r.w, "  %2d) %s\n", i, label)
	}
}

// LastAction describes the most recent accepted move.
func (r *Renderer) LastAction(g *engine.GameState) {
	la := g.LastAction
	switch la.Action.Kind {
	case engine.ActionPass:
		fmt.Fprintf(r.w, "%s passes.\n", r.name(la.Player))
	case engine.ActionPlayCard:
		msg := fmt.Sprintf("%s plays %s", r.name(la.Player), card(la.Card))
		if la.Card.Kind == engine.KindSpy {
			msg += fmt.Sprintf(" onto %s's board and draws %d", la.Player.Opponent(), la.Drawn)
		}
		fmt.Fprintln(r.w, msg+".")
	}
}

// RoundSummary prints the final power and winner of a round.
func (r *Renderer) RoundSummary(res engine.RoundResult) {
	result := pterm.Yellow("tie")
	if !res.Tied {
		result = pterm.Green(r.name(res.Winner) + " wins the round")
	}
	fmt.Fprintf(r.w, "Round %d over: P1 %d - P2 %d, %s\n", res.Round, res.Power[0], res.Power[1], result)
}

// Outcome prints the final result of a finished match.
func (r *Renderer) Outcome(g *engine.GameState) {
	score := fmt.Sprintf("%d : %d", g.RoundsWon(engine.PlayerOne), g.RoundsWon(engine.PlayerTwo))
	switch g.Outcome() {
	case engine.OutcomeDecided:
		w, _ := g.Winner()
		fmt.Fprintln(r.w, pterm.Bold.Sprint(pterm.Green(fmt.Sprintf("%s wins the match %s!", r.name(w), score))))
	case engine.OutcomeTied:
		fmt.Fprintln(r.w, pterm.Bold.Sprint(pterm.Yellow("The match is a draw "+score+".")))
	default:
		fmt.Fprintln(r.w, "Match in progress.")
	}
}
