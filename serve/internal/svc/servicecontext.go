package svc

import (
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/record"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/session"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/config"
)

type ServiceContext struct {
	Config   config.Config
	Sessions *Registry
	// Recorder is nil when no archive is configured.
	Recorder record.Recorder
	// Events is nil without redis.
	Events *record.RedisRecorder
}

func NewServiceContext(c config.Config) (*ServiceContext, error) {
	svcCtx := &ServiceContext{
		Config:   c,
		Sessions: NewRegistry(c.MaxSessions),
	}

	var recorders record.Multi
	if c.RecordDir != "" {
		r, err := record.NewLogRecorder(c.RecordDir)
		if err != nil {
			return nil, err
		}
		recorders = append(recorders, r)
	}

	if c.Redis.Host != "" {
		rds, err := redis.NewRedis(c.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		svcCtx.Events = record.NewRedisRecorder(rds)
		recorders = append(recorders, svcCtx.Events)
	}

	if c.MongoConf.Url != "" {
		r, err := record.NewMongoRecorder(c.MongoConf.Url, c.MongoConf.DataBaseName)
		if err != nil {
			return nil, err
		}
		recorders = append(recorders, r)
	}

	if len(recorders) > 0 {
		svcCtx.Recorder = recorders
		logx.Infof("recording games to %d archive(s)", len(recorders))
	}
	return svcCtx, nil
}

// SessionOptions builds session options from the configured defaults.
// Empty or zero arguments keep the default.
func (s *ServiceContext) SessionOptions(size int, opponent, difficulty string) (session.Options, error) {
	g := s.Config.Game
	opts := session.DefaultOptions()
	opts.Size = g.BoardSize
	opts.OpponentDelay = g.OpponentDelay
	opts.TimeLimit = g.TimeLimit
	opts.TickInterval = g.TickInterval
	opts.HonorLock = g.HonorLock

	var err error
	if opts.UndoScoring, err = chess.ParseUndoScoring(g.UndoScoring); err != nil {
		return opts, err
	}

	if size != 0 {
		opts.Size = size
	}
	if opponent == "" {
		opponent = g.Opponent
	}
	if opts.Opponent, err = chess.ParseOpponent(opponent); err != nil {
		return opts, err
	}
	if difficulty == "" {
		difficulty = g.Difficulty
	}
	if opts.Difficulty, err = assess.ParseDifficulty(difficulty); err != nil {
		return opts, err
	}
	return opts, nil
}

func (s *ServiceContext) Listeners() []session.Listener {
	if s.Recorder == nil {
		return nil
	}
	return []session.Listener{record.Listener(s.Recorder)}
}

func (s *ServiceContext) Close() {
	s.Sessions.Close()
	if s.Recorder != nil {
		if err := s.Recorder.Close(); err != nil {
			logx.Errorf("close recorders: %v", err)
		}
	}
}
