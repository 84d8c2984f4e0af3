package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/sim/pkg/models/message"
	"github.com/HuXin0817/sim/pkg/runner"
	"github.com/HuXin0817/sim/serve/internal/svc"
	"github.com/HuXin0817/sim/serve/internal/types"
)

type RecordGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewRecordGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RecordGameLogic {
	return &RecordGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// RecordGame checks a finished game and stores it when mongo is configured.
func (l *RecordGameLogic) RecordGame(in *types.GameRequest) (*types.GameResponse, error) {
	var observers []runner.Observer
	if l.svcCtx.Recorder != nil {
		observers = append(observers, l.svcCtx.Recorder)
	}

	result, err := runner.Replay(l.ctx, in.Red, in.Blue, in.Moves, observers...)
	if err != nil {
		return nil, badRequest(err)
	}

	l.Infof("game %s between %q and %q won by %s", result.GameUid, in.Red, in.Blue, result.Winner)
	return &types.GameResponse{
		GameUid:  string(result.GameUid),
		Winner:   result.Winner.String(),
		Loser:    result.Loser.String(),
		Triangle: result.Triangle.String(),
		Recorded: len(observers) > 0,
	}, nil
}

func (l *RecordGameLogic) GameMoves(gameUid string) (*types.GameMovesResponse, error) {
	if l.svcCtx.Store == nil {
		return nil, ErrUnavailable
	}

	uid, err := message.ParseGameUid(gameUid)
	if err != nil {
		return nil, badRequest(err)
	}

	records, err := l.svcCtx.Store.FindMoves(l.ctx, string(uid))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}

	resp := &types.GameMovesResponse{GameUid: string(uid)}
	for _, r := range records {
		resp.Moves = append(resp.Moves, types.MoveEntry{
			Step:  r.StepCount,
			Color: r.Color,
			Edge:  r.Edge,
			State: r.State,
		})
	}
	return resp, nil
}
