package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/sim/pkg/models/message"
	"github.com/HuXin0817/sim/serve/internal/svc"
)

type FindMoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewFindMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *FindMoveLogic {
	return &FindMoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *FindMoveLogic) FindMove(in *message.MoveRequest) (*message.MoveResponse, error) {
	state, color, err := parsePosition(in.State, in.Color)
	if err != nil {
		return nil, err
	}

	v := l.svcCtx.Engine.Decide(state, color)
	l.Infof("move for %s on %s: %s, win %t, %d nodes", color, state, v.Edge, v.Win, v.Expanded)

	return &message.MoveResponse{
		Edge:     uint8(v.Edge),
		Win:      v.Win,
		Expanded: v.Expanded,
	}, nil
}
