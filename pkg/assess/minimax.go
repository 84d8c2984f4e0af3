package assess

import "github.com/HuXin0817/sim/pkg/models/sim"

// MiniMax is a player backed by an Engine.
type MiniMax struct {
	*Engine
}

func NewMiniMax(options ...Option) *MiniMax {
	return &MiniMax{Engine: NewEngine(options...)}
}

func (m *MiniMax) Name() string {
	return "minimax"
}

func (m *MiniMax) NextMove(state sim.State, color sim.Color) sim.Edge {
	return m.FindMove(state, color)
}
