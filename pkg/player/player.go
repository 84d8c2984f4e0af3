package player

import (
	"fmt"

	"github.com/HuXin0817/sim/pkg/models/sim"
)

// Player proposes the next edge to color. state is guaranteed to still have
// an uncolored edge.
type Player interface {
	NextMove(state sim.State, color sim.Color) sim.Edge
}

// Func adapts a function to the Player interface.
type Func func(state sim.State, color sim.Color) sim.Edge

func (f Func) NextMove(state sim.State, color sim.Color) sim.Edge {
	return f(state, color)
}

// Name returns the display name of p.
func Name(p Player) string {
	if n, ok := p.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", p)
}
