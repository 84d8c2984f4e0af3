package assess

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/sim/pkg/models/sim"
	"github.com/HuXin0817/sim/pkg/player"
)

// DefaultOpeningPlies is the number of plies played at random. The first
// three plies are assumed not to decide the game and are the most expensive
// ones to search.
const DefaultOpeningPlies = 3

var ErrNoAvailableEdge = errors.New("search on a full board")

// Verdict is the outcome of an exhaustive search. Edge forces a win when Win
// is set and is meaningless otherwise.
type Verdict struct {
	Edge     sim.Edge
	Win      bool
	Expanded uint64
}

// Engine finds moves that force a win. It keeps no state between calls and
// can be shared by goroutines as long as its Fallback can.
type Engine struct {
	OpeningPlies int
	Fallback     player.Player
	Logger       logx.Logger
}

func NewEngine(options ...Option) *Engine {
	e := &Engine{
		OpeningPlies: DefaultOpeningPlies,
		Fallback:     player.NewRandom(0),
		Logger:       logx.WithContext(context.Background()),
	}

	for _, option := range options {
		option(e)
	}

	return e
}

// FindMove returns an edge forcing a win for color if one exists, and a
// random edge that does not lose immediately otherwise. It panics if state
// has no uncolored edge.
func (e *Engine) FindMove(state sim.State, color sim.Color) sim.Edge {
	return e.Decide(state, color).Edge
}

// Decide is FindMove reporting how the edge was chosen.
func (e *Engine) Decide(state sim.State, color sim.Color) Verdict {
	ply := state.Colored()
	if ply == sim.EdgeCount {
		panic(ErrNoAvailableEdge)
	}

	if ply < e.OpeningPlies {
		edge := e.Fallback.NextMove(state, color)
		e.Logger.Infof("%s plays opening edge %s at ply %d without searching", color, edge, ply)
		return Verdict{Edge: edge}
	}

	v := e.Solve(state, color)
	if v.Win {
		e.Logger.Infof("%s knows the winning edge %s at ply %d, expanded %d positions", color, v.Edge, ply, v.Expanded)
		return v
	}

	v.Edge = e.Fallback.NextMove(state, color)
	e.Logger.Infof("%s knows no winning edge at ply %d, chooses %s, expanded %d positions", color, ply, v.Edge, v.Expanded)
	return v
}
