package logic

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/session"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/types"
)

type CreateGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCreateGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateGameLogic {
	return &CreateGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *CreateGameLogic) CreateGame(req *types.CreateGameRequest) (*types.GameResponse, error) {
	opts, err := l.svcCtx.SessionOptions(req.BoardSize, req.Opponent, req.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	s, err := l.svcCtx.Sessions.Open(func() (*session.Session, error) {
		return session.New(opts, l.svcCtx.Listeners()...)
	})
	if err != nil {
		return nil, err
	}

	status, err := s.Status(l.ctx)
	if err != nil {
		return nil, err
	}
	l.Infof("game %s created: size %d, opponent %s", s.ID(), opts.Size, opts.Opponent)
	return &status, nil
}
