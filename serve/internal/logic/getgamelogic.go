package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/ui"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/types"
)

type GetGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewGetGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetGameLogic {
	return &GetGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *GetGameLogic) GetGame(id message.GameUid) (*types.GameResponse, error) {
	s, err := l.svcCtx.Sessions.Get(id)
	if err != nil {
		return nil, err
	}

	status, err := s.Status(l.ctx)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// Board draws the game as plain text.
func (l *GetGameLogic) Board(id message.GameUid, colors bool) (string, error) {
	s, err := l.svcCtx.Sessions.Get(id)
	if err != nil {
		return "", err
	}

	snapshot, err := s.Snapshot(l.ctx)
	if err != nil {
		return "", err
	}
	return ui.NewRenderer(colors).RenderSnapshot(snapshot), nil
}

// Events returns the recorded history of the session's current game.
func (l *GetGameLogic) Events(id message.GameUid) (*types.EventsResponse, error) {
	if l.svcCtx.Events == nil {
		return nil, ErrNoEventsStore
	}

	s, err := l.svcCtx.Sessions.Get(id)
	if err != nil {
		return nil, err
	}

	status, err := s.Status(l.ctx)
	if err != nil {
		return nil, err
	}

	events, err := l.svcCtx.Events.Events(l.ctx, status.GameUid)
	if err != nil {
		return nil, err
	}
	return &types.EventsResponse{Events: events}, nil
}
