package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/HuXin0817/sim/pkg/models/message"
	"github.com/HuXin0817/sim/pkg/models/sim"
)

// boardPrinter shows a running game on a terminal.
type boardPrinter struct {
	out io.Writer
	au  aurora.Aurora
}

func newBoardPrinter(out io.Writer, colors bool) *boardPrinter {
	return &boardPrinter{out: out, au: aurora.NewAurora(colors)}
}

func (p *boardPrinter) paint(c sim.Color, text string) string {
	switch c {
	case sim.Red:
		return p.au.Red(text).String()
	case sim.Blue:
		return p.au.Blue(text).String()
	}
	return text
}

// renderBoard draws the adjacency matrix of the six vertices, each cell
// holding the color of the edge between its row and column.
func (p *boardPrinter) renderBoard(s sim.State) string {
	var b strings.Builder
	b.WriteString("  ")
	for _, v := range sim.Vertices() {
		fmt.Fprintf(&b, " %d", v)
	}
	b.WriteByte('\n')

	for _, row := range sim.Vertices() {
		fmt.Fprintf(&b, "%d ", row)
		for _, col := range sim.Vertices() {
			if row == col {
				b.WriteString(" -")
				continue
			}
			c := s.Color(sim.Between(row, col))
			b.WriteString(" " + p.paint(c, string(c.Rune())))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (p *boardPrinter) GameStarted(_ context.Context, uid message.GameUid, red, blue string) error {
	_, err := fmt.Fprintf(p.out, "Game %s: %s against %s\n%s",
		uid, p.paint(sim.Red, red), p.paint(sim.Blue, blue), p.renderBoard(0))
	return err
}

func (p *boardPrinter) MovePlayed(_ context.Context, _ message.GameUid, g *sim.Game) error {
	e := g.Moves[len(g.Moves)-1]
	mover := g.State.Color(e)
	_, err := fmt.Fprintf(p.out, "\nMove %d: %s colors %s\n%s",
		g.StepCount(), p.paint(mover, mover.String()), e, p.renderBoard(g.State))
	return err
}

func (p *boardPrinter) GameEnded(_ context.Context, _ message.GameUid, g *sim.Game) error {
	_, err := fmt.Fprintf(p.out, "\nPlayer %s won! %s closed the triangle %s\n",
		p.paint(g.Winner(), g.Winner().String()), p.paint(g.Loser, g.Loser.String()), g.Triangle)
	return err
}
