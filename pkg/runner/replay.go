package runner

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/sim/pkg/models/message"
	"github.com/HuXin0817/sim/pkg/models/sim"
)

var ErrUnfinishedGame = errors.New("moves do not finish the game")

// Replay hands a game played elsewhere to observers, move by move. The moves
// are checked before any observer hears of the game.
func Replay(ctx context.Context, red, blue string, moves []int, observers ...Observer) (BattleResult, error) {
	edges := make([]sim.Edge, 0, len(moves))
	for _, m := range moves {
		if m < 0 || m >= sim.EdgeCount {
			return BattleResult{}, sim.ErrInvalidEdge
		}
		edges = append(edges, sim.Edge(m))
	}

	final, err := sim.Replay(edges...)
	if err != nil {
		return BattleResult{}, err
	}
	if !final.Over() {
		return BattleResult{}, ErrUnfinishedGame
	}

	gr := &GameRunner{Observers: observers, Logger: logx.WithContext(ctx)}
	result := BattleResult{
		GameUid:  message.NewGameUid(),
		Red:      red,
		Blue:     blue,
		Moves:    moves,
		Loser:    final.Loser,
		Winner:   final.Winner(),
		Triangle: final.Triangle,
	}

	g := sim.NewGame()
	gr.notify(func(o Observer) error { return o.GameStarted(ctx, result.GameUid, red, blue) })
	for _, e := range edges {
		_ = g.Play(e)
		gr.notify(func(o Observer) error { return o.MovePlayed(ctx, result.GameUid, g) })
	}
	gr.notify(func(o Observer) error { return o.GameEnded(ctx, result.GameUid, g) })

	return result, nil
}
