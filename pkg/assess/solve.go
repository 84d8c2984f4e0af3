package assess

import "github.com/HuXin0817/sim/pkg/models/sim"

// frame is the bookkeeping of one search depth.
type frame struct {
	// next is the smallest edge not tried yet.
	next sim.Edge
	// move is the edge applied when descending from this depth.
	move sim.Edge
	// win is true while color can still force, or already forces, a win from
	// this position.
	win bool
}

// Solve searches every continuation of state and reports whether color, to
// move, can force a win. A player never colors an edge that completes their
// own triangle, so a position where the player to act has only losing edges
// left is decided without descending. It panics if state has no uncolored
// edge.
func (e *Engine) Solve(state sim.State, color sim.Color) (v Verdict) {
	board := state.Clone()
	available := board.Available()
	if available.Empty() {
		panic(ErrNoAvailableEdge)
	}

	var stack [sim.EdgeCount + 1]frame
	depth := 0
	acting := color

	for {
		f := &stack[depth]

		// color needs one winning edge on its own turns and every edge of the
		// opponent has to lose on the others.
		decided := f.win == (acting == color)

		edge, ok := sim.Edge(0), false
		if !decided {
			for edge, ok = available.Next(f.next); ok; edge, ok = available.Next(edge + 1) {
				if !board.WouldCompleteTriangle(edge, acting) {
					break
				}
			}
		}

		if ok {
			f.move = edge
			f.next = edge + 1
			board.Set(edge, acting)
			available = available.Remove(edge)
			v.Expanded++

			acting = acting.Other()
			depth++
			stack[depth] = frame{win: acting != color}
			continue
		}

		if depth == 0 {
			v.Win = f.win
			v.Edge = f.move
			return
		}

		win := f.win
		depth--
		acting = acting.Other()

		parent := &stack[depth]
		board.Set(parent.move, sim.None)
		available = available.Add(parent.move)

		if acting == color {
			parent.win = parent.win || win
		} else {
			parent.win = parent.win && win
		}
	}
}
