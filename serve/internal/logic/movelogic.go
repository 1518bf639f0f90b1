package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/session"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/types"
)

type MoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MoveLogic {
	return &MoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *MoveLogic) Move(id message.GameUid, req *types.MoveRequest) (*types.MoveResponse, error) {
	line, err := chess.ParseLine(req.Line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	return l.apply(id, func(s *session.Session) (chess.MoveResult, error) {
		return s.Submit(l.ctx, line)
	})
}

func (l *MoveLogic) Undo(id message.GameUid) (*types.MoveResponse, error) {
	return l.apply(id, func(s *session.Session) (chess.MoveResult, error) {
		return s.Undo(l.ctx)
	})
}

func (l *MoveLogic) Redo(id message.GameUid) (*types.MoveResponse, error) {
	return l.apply(id, func(s *session.Session) (chess.MoveResult, error) {
		return s.Redo(l.ctx)
	})
}

func (l *MoveLogic) Restart(id message.GameUid, req *types.RestartRequest) (*types.GameResponse, error) {
	s, err := l.svcCtx.Sessions.Get(id)
	if err != nil {
		return nil, err
	}

	if _, err := s.Restart(l.ctx, req.BoardSize); err != nil {
		if errors.Is(err, chess.ErrInvalidBoardSize) {
			return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
		return nil, err
	}

	status, err := s.Status(l.ctx)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (l *MoveLogic) Delete(id message.GameUid) error {
	if err := l.svcCtx.Sessions.Remove(id); err != nil {
		return err
	}
	l.Infof("game %s closed", id)
	return nil
}

// apply runs op and reports drawn lines and empty histories as no-ops
// rather than failures.
func (l *MoveLogic) apply(id message.GameUid, op func(*session.Session) (chess.MoveResult, error)) (*types.MoveResponse, error) {
	s, err := l.svcCtx.Sessions.Get(id)
	if err != nil {
		return nil, err
	}

	res, opErr := op(s)
	switch {
	case opErr == nil:
	case errors.Is(opErr, chess.ErrLineAlreadyOwned), errors.Is(opErr, chess.ErrHistoryEmpty):
	case errors.Is(opErr, chess.ErrInvalidLine), errors.Is(opErr, chess.ErrInvalidPlayer):
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, opErr)
	default:
		return nil, opErr
	}

	snapshot, err := s.Snapshot(l.ctx)
	if err != nil {
		return nil, err
	}

	resp := &types.MoveResponse{Applied: opErr == nil, Snapshot: snapshot}
	if opErr != nil {
		resp.Reason = opErr.Error()
	} else {
		resp.Result = &res
	}
	return resp, nil
}
