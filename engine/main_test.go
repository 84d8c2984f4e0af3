package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"

	"github.com/HuXin0817/sim/pkg/analysis"
	"github.com/HuXin0817/sim/pkg/assess"
	"github.com/HuXin0817/sim/pkg/models/message"
	"github.com/HuXin0817/sim/pkg/models/sim"
)

func TestMain(m *testing.M) {
	logx.Disable()
	os.Exit(m.Run())
}

func TestRunDrainsQueue(t *testing.T) {
	queue := analysis.NewQueue(redistest.CreateRedis(t))
	state, err := sim.ParseState("RRBRBBR.BBBR.R.")
	require.NoError(t, err)

	key := message.AnalysisKey{GameUid: message.NewGameUid(), Step: 12}
	_, err = queue.Enqueue(context.Background(), message.AnalysisJob{
		TimeStamp:   message.NewTimeStamp(time.Now()),
		AnalysisKey: key,
		State:       state,
		Color:       sim.Red,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	assert.ErrorIs(t, run(ctx, queue, assess.NewEngine()), context.DeadlineExceeded)

	r, ok, err := queue.Result(context.Background(), key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, r.Win)
	assert.Equal(t, sim.Edge(14), r.Edge)
}
