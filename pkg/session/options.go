package session

import (
	"time"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

const (
	DefaultOpponentDelay = 500 * time.Millisecond
	DefaultTickInterval  = time.Second
)

type Options struct {
	Size       int
	Opponent   chess.Opponent
	Difficulty assess.Difficulty
	// OpponentDelay is how long the automated player waits before replying.
	// Zero plays the reply inside the command that handed it the turn.
	OpponentDelay time.Duration
	// TimeLimit starts a countdown for each game. Zero disables it.
	TimeLimit    time.Duration
	TickInterval time.Duration
	HonorLock    bool
	UndoScoring  chess.UndoScoring
}

func DefaultOptions() Options {
	return Options{
		Size:          chess.DefaultBoardSize,
		Opponent:      chess.HumanOpponent,
		Difficulty:    assess.DefaultDifficulty,
		OpponentDelay: DefaultOpponentDelay,
		TickInterval:  DefaultTickInterval,
	}
}

func (o Options) gameOptions() []chess.Option {
	return []chess.Option{
		chess.WithHonorLock(o.HonorLock),
		chess.WithUndoScoring(o.UndoScoring),
	}
}

func (o Options) withDefaults() Options {
	if o.Size == 0 {
		o.Size = chess.DefaultBoardSize
	}
	if o.Difficulty == "" {
		o.Difficulty = assess.DefaultDifficulty
	}
	if o.TickInterval <= 0 {
		o.TickInterval = DefaultTickInterval
	}
	if o.OpponentDelay < 0 {
		o.OpponentDelay = 0
	}
	return o
}
