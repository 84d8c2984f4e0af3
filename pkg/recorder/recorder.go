package recorder

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/sim/pkg/models/message"
	"github.com/HuXin0817/sim/pkg/models/message/moverecord"
	"github.com/HuXin0817/sim/pkg/models/pusher"
	"github.com/HuXin0817/sim/pkg/models/sim"
)

const DefaultPushInterval = time.Second

// Recorder writes game records to a Store. Moves are batched and written
// every push interval; the start and end of a game are written right away.
type Recorder struct {
	store  Store
	pusher *pusher.Pusher[*moverecord.MoveRecord]
}

func NewRecorder(store Store, pushInterval time.Duration) *Recorder {
	r := &Recorder{store: store}
	r.pusher = pusher.NewPusher(
		pusher.WithPushInterval[*moverecord.MoveRecord](pushInterval),
		pusher.WithPushLogic(func(records ...*moverecord.MoveRecord) error {
			return store.InsertMoves(context.Background(), records)
		}),
	)
	r.pusher.Start()
	return r
}

func (r *Recorder) GameStarted(ctx context.Context, uid message.GameUid, red, blue string) error {
	return r.store.InsertStart(ctx, &moverecord.GameStartRecord{
		GameUid: string(uid),
		Red:     red,
		Blue:    blue,
	})
}

func (r *Recorder) MovePlayed(_ context.Context, uid message.GameUid, g *sim.Game) error {
	e := g.Moves[len(g.Moves)-1]
	r.pusher.AddMessages(&moverecord.MoveRecord{
		GameUid:   string(uid),
		StepCount: g.StepCount(),
		Color:     g.State.Color(e).String(),
		Edge:      int(e),
		MoveEdge:  e.String(),
		State:     g.State.String(),
	})
	return nil
}

func (r *Recorder) GameEnded(ctx context.Context, uid message.GameUid, g *sim.Game) error {
	if err := r.pusher.PushAll(); err != nil {
		logx.WithContext(ctx).Errorf("flush moves of game %s: %v", uid, err)
	}

	return r.store.InsertEnd(ctx, &moverecord.GameEndRecord{
		GameUid:   string(uid),
		Winner:    g.Winner().String(),
		Loser:     g.Loser.String(),
		Triangle:  g.Triangle.String(),
		StepCount: g.StepCount(),
	})
}

// Close writes the remaining moves and stops the background push.
func (r *Recorder) Close() {
	r.pusher.Stop()
}
