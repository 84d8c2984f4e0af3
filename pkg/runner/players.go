package runner

import (
	"io"

	"github.com/HuXin0817/sim/pkg/assess"
	"github.com/HuXin0817/sim/pkg/models/model"
	"github.com/HuXin0817/sim/pkg/player"
)

// PlayerDeps carries what some player kinds need.
type PlayerDeps struct {
	In            io.Reader
	Out           io.Writer
	ServeAddress  string
	Seed          int64
	EngineOptions []assess.Option
}

func NewPlayer(kind model.PlayerKind, deps PlayerDeps) (player.Player, error) {
	switch kind {
	case model.Human:
		return player.NewHuman(deps.In, deps.Out), nil
	case model.Random:
		return player.NewRandom(deps.Seed), nil
	case model.DumbRandom:
		return player.NewDumbRandom(deps.Seed), nil
	case model.MiniMax:
		return assess.NewMiniMax(deps.EngineOptions...), nil
	case model.Remote:
		return player.NewRemote(deps.ServeAddress), nil
	}
	return nil, model.ErrUnknownPlayerKind
}
