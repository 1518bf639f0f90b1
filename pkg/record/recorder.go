package record

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/errorx"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
)

const listenerTimeout = 3 * time.Second

// Recorder archives the events of finished and running games.
type Recorder interface {
	Record(ctx context.Context, e message.Event) error
	Close() error
}

// Multi hands every event to each recorder in turn.
type Multi []Recorder

func (m Multi) Record(ctx context.Context, e message.Event) error {
	var be errorx.BatchError
	for _, r := range m {
		be.Add(r.Record(ctx, e))
	}
	return be.Err()
}

func (m Multi) Close() error {
	var be errorx.BatchError
	for _, r := range m {
		be.Add(r.Close())
	}
	return be.Err()
}

// Listener adapts r to a session listener. Failures are logged and never
// reach the game.
func Listener(r Recorder) func(message.Event) {
	return func(e message.Event) {
		ctx, cancel := context.WithTimeout(context.Background(), listenerTimeout)
		defer cancel()

		if err := r.Record(ctx, e); err != nil {
			logx.WithContext(ctx).Errorf("record %s of game %s: %v", e.Type, e.GameUid, err)
		}
	}
}

func recorded(t message.EventType) bool {
	return t != message.TimerTick
}
