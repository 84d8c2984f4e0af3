package assess

import (
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/sim/pkg/player"
)

type Option func(*Engine)

// WithOpeningPlies sets how many plies from the empty board are played by
// the fallback player without searching.
func WithOpeningPlies(plies int) Option {
	return func(e *Engine) {
		e.OpeningPlies = plies
	}
}

func WithFallback(fallback player.Player) Option {
	return func(e *Engine) {
		e.Fallback = fallback
	}
}

func WithLogger(logger logx.Logger) Option {
	return func(e *Engine) {
		e.Logger = logger
	}
}
