package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/sim/pkg/models/message"
	"github.com/HuXin0817/sim/pkg/models/sim"
	"github.com/HuXin0817/sim/pkg/player"
)

var ErrIllegalMove = errors.New("player proposed an illegal move")

// Observer is told about the progress of a game. Errors are logged and do not
// stop the game.
type Observer interface {
	GameStarted(ctx context.Context, uid message.GameUid, red, blue string) error
	MovePlayed(ctx context.Context, uid message.GameUid, g *sim.Game) error
	GameEnded(ctx context.Context, uid message.GameUid, g *sim.Game) error
}

// BattleResult records one finished game.
type BattleResult struct {
	GameUid  message.GameUid
	Red      string
	Blue     string
	Moves    []int
	Loser    sim.Color
	Winner   sim.Color
	Triangle sim.Triangle
}

func (r BattleResult) String() string {
	str, _ := sonic.MarshalString(r)
	return str
}

// GameRunner plays one game between two players.
type GameRunner struct {
	Red       player.Player
	Blue      player.Player
	Observers []Observer
	logx.Logger
}

func NewGameRunner(red, blue player.Player, observers ...Observer) *GameRunner {
	return &GameRunner{
		Red:       red,
		Blue:      blue,
		Observers: observers,
		Logger:    logx.WithContext(context.Background()),
	}
}

func (gr *GameRunner) player(c sim.Color) player.Player {
	if c == sim.Red {
		return gr.Red
	}
	return gr.Blue
}

// Run plays until a player closes a triangle of their own color. A cancelled
// context stops the game between two moves.
func (gr *GameRunner) Run(ctx context.Context) (result BattleResult, err error) {
	g := sim.NewGame()
	result = BattleResult{
		GameUid: message.NewGameUid(),
		Red:     player.Name(gr.Red),
		Blue:    player.Name(gr.Blue),
	}

	gr.notify(func(o Observer) error { return o.GameStarted(ctx, result.GameUid, result.Red, result.Blue) })

	for !g.Over() {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		e := gr.player(g.Turn).NextMove(g.State, g.Turn)
		if err = g.Play(e); err != nil {
			return result, fmt.Errorf("%w: %s colored %d: %w", ErrIllegalMove, g.Turn, e, err)
		}

		gr.notify(func(o Observer) error { return o.MovePlayed(ctx, result.GameUid, g) })
	}

	for _, e := range g.Moves {
		result.Moves = append(result.Moves, int(e))
	}
	result.Loser = g.Loser
	result.Winner = g.Winner()
	result.Triangle = g.Triangle

	gr.notify(func(o Observer) error { return o.GameEnded(ctx, result.GameUid, g) })
	return result, nil
}

func (gr *GameRunner) notify(f func(Observer) error) {
	for _, o := range gr.Observers {
		if err := f(o); err != nil {
			gr.Errorf("observer %T: %v", o, err)
		}
	}
}
