package sim

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEdge = errors.New("invalid edge")
	ErrEdgeColored = errors.New("edge already colored")
	ErrGameOver    = errors.New("game is over")
)

// Game follows a match from the empty board. Red moves first. The player who
// completes a triangle of their own color loses; since R(3, 3) = 6 every game
// ends before or on the 15th move.
type Game struct {
	State    State
	Turn     Color
	Moves    []Edge
	Loser    Color
	Triangle Triangle
}

func NewGame() *Game {
	return &Game{Turn: Red}
}

// Replay builds a game from a sequence of moves.
func Replay(moves ...Edge) (*Game, error) {
	g := NewGame()
	for i, e := range moves {
		if err := g.Play(e); err != nil {
			return nil, fmt.Errorf("move %d %s: %w", i, e, err)
		}
	}
	return g, nil
}

func (g *Game) Play(e Edge) error {
	if g.Over() {
		return ErrGameOver
	}
	if !e.Valid() {
		return ErrInvalidEdge
	}
	if g.State.Color(e) != None {
		return ErrEdgeColored
	}

	lost := g.State.WouldCompleteTriangle(e, g.Turn)
	g.State.Set(e, g.Turn)
	g.Moves = append(g.Moves, e)

	if lost {
		g.Loser = g.Turn
		g.Triangle, _ = g.State.Triangle(g.Turn)
		return nil
	}

	g.Turn = g.Turn.Other()
	return nil
}

func (g *Game) Over() bool {
	return g.Loser != None
}

func (g *Game) Winner() Color {
	return g.Loser.Other()
}

func (g *Game) StepCount() int {
	return len(g.Moves)
}
