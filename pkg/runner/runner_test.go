package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/sim/pkg/assess"
	"github.com/HuXin0817/sim/pkg/models/message"
	"github.com/HuXin0817/sim/pkg/models/model"
	"github.com/HuXin0817/sim/pkg/models/sim"
	"github.com/HuXin0817/sim/pkg/player"
	"github.com/HuXin0817/sim/pkg/runner"
)

func TestMain(m *testing.M) {
	logx.Disable()
	os.Exit(m.Run())
}

type countingObserver struct {
	started, moves, ended int
}

func (o *countingObserver) GameStarted(context.Context, message.GameUid, string, string) error {
	o.started++
	return nil
}

func (o *countingObserver) MovePlayed(context.Context, message.GameUid, *sim.Game) error {
	o.moves++
	return nil
}

func (o *countingObserver) GameEnded(context.Context, message.GameUid, *sim.Game) error {
	o.ended++
	return nil
}

func TestGameRunnerPlaysToTheEnd(t *testing.T) {
	obs := &countingObserver{}
	gr := runner.NewGameRunner(assess.NewMiniMax(assess.WithFallback(player.NewRandom(5))), player.NewRandom(6), obs)

	result, err := gr.Run(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, sim.None, result.Loser)
	assert.Equal(t, result.Loser.Other(), result.Winner)
	assert.Equal(t, "minimax", result.Red)
	assert.Equal(t, 1, obs.started)
	assert.Equal(t, len(result.Moves), obs.moves)
	assert.Equal(t, 1, obs.ended)

	moves := make([]sim.Edge, 0, len(result.Moves))
	for _, e := range result.Moves {
		moves = append(moves, sim.Edge(e))
	}
	g, err := sim.Replay(moves...)
	require.NoError(t, err)
	assert.Equal(t, result.Loser, g.Loser)
	assert.Equal(t, result.Triangle, g.Triangle)
}

func TestGameRunnerRejectsIllegalMove(t *testing.T) {
	always := player.Func(func(sim.State, sim.Color) sim.Edge { return 0 })
	_, err := runner.NewGameRunner(always, always).Run(context.Background())
	assert.ErrorIs(t, err, runner.ErrIllegalMove)
	assert.ErrorIs(t, err, sim.ErrEdgeColored)
}

func TestGameRunnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runner.NewGameRunner(player.NewRandom(1), player.NewRandom(2)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTournament(t *testing.T) {
	dir := t.TempDir()
	tour := &runner.Tournament{
		Games:     8,
		Workers:   3,
		NewRed:    func() player.Player { return player.NewRandom(0) },
		NewBlue:   func() player.Player { return player.NewDumbRandom(0) },
		OutputDir: dir,
		Prefix:    "selfplay",
	}

	summary, err := tour.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, summary.Games)
	assert.Zero(t, summary.Failed)
	assert.Equal(t, 8, summary.Wins[sim.Red]+summary.Wins[sim.Blue])

	files, err := filepath.Glob(filepath.Join(dir, "selfplay_*.json"))
	require.NoError(t, err)
	assert.Len(t, files, 8)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	var result runner.BattleResult
	require.NoError(t, sonic.Unmarshal(data, &result))
	assert.NotEmpty(t, result.Moves)
	assert.NotEqual(t, sim.None, result.Winner)
}

func TestNewPlayer(t *testing.T) {
	for _, kind := range model.PlayerKinds {
		p, err := runner.NewPlayer(kind, runner.PlayerDeps{})
		require.NoError(t, err, kind)
		assert.NotNil(t, p)
	}

	_, err := runner.NewPlayer("oracle", runner.PlayerDeps{})
	assert.ErrorIs(t, err, model.ErrUnknownPlayerKind)
}
