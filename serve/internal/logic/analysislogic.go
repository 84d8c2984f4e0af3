package logic

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/sim/pkg/models/message"
	"github.com/HuXin0817/sim/serve/internal/svc"
	"github.com/HuXin0817/sim/serve/internal/types"
)

type AnalysisLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewAnalysisLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AnalysisLogic {
	return &AnalysisLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *AnalysisLogic) Enqueue(in *types.AnalysisRequest) (*types.AnalysisResponse, error) {
	if l.svcCtx.Queue == nil {
		return nil, ErrUnavailable
	}

	state, color, err := parsePosition(in.State, in.Color)
	if err != nil {
		return nil, err
	}

	uid := message.NewGameUid()
	if in.GameUid != "" {
		if uid, err = message.ParseGameUid(in.GameUid); err != nil {
			return nil, badRequest(err)
		}
	}

	step := state.Colored()
	if in.Step != nil {
		step = *in.Step
	}

	job := message.AnalysisJob{
		TimeStamp:   message.NewTimeStamp(time.Now()),
		AnalysisKey: message.AnalysisKey{GameUid: uid, Step: step},
		State:       state,
		Color:       color,
	}

	partition, err := l.svcCtx.Queue.Enqueue(l.ctx, job)
	if err != nil {
		return nil, err
	}

	l.Infof("queued %s on partition %d", job.AnalysisKey, partition)
	return &types.AnalysisResponse{
		GameUid:   string(uid),
		Step:      step,
		Partition: partition,
	}, nil
}

func (l *AnalysisLogic) Result(gameUid string, step int) (*types.AnalysisResultResponse, error) {
	if l.svcCtx.Queue == nil {
		return nil, ErrUnavailable
	}

	uid, err := message.ParseGameUid(gameUid)
	if err != nil {
		return nil, badRequest(err)
	}

	key := message.AnalysisKey{GameUid: uid, Step: step}
	r, ok, err := l.svcCtx.Queue.Result(l.ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	return &types.AnalysisResultResponse{
		GameUid:  string(uid),
		Step:     step,
		Edge:     uint8(r.Edge),
		Win:      r.Win,
		Expanded: r.Expanded,
	}, nil
}
