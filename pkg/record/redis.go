package record

import (
	"context"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/model"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/pusher"
)

const (
	DefaultRedisExpire       = 24 * time.Hour
	DefaultRedisPushInterval = time.Second
)

// RedisRecorder appends each game's events, encoded with sonic, to the list
// at GameUid.ListKey. Events are buffered and pushed in batches.
type RedisRecorder struct {
	rds    *redis.Redis
	expire time.Duration
	pusher *pusher.Pusher[message.Event]
}

type RedisOption func(*redisOptions)

type redisOptions struct {
	expire   time.Duration
	interval time.Duration
}

func WithRedisExpire(d time.Duration) RedisOption {
	return func(o *redisOptions) { o.expire = d }
}

func WithRedisPushInterval(d time.Duration) RedisOption {
	return func(o *redisOptions) { o.interval = d }
}

func NewRedisRecorder(rds *redis.Redis, options ...RedisOption) *RedisRecorder {
	o := redisOptions{expire: DefaultRedisExpire, interval: DefaultRedisPushInterval}
	for _, option := range options {
		option(&o)
	}

	r := &RedisRecorder{rds: rds, expire: o.expire}
	r.pusher = pusher.NewPusher(
		pusher.WithPushLogic(r.push),
		pusher.WithPushInterval[message.Event](o.interval),
	)
	r.pusher.Start()
	return r
}

// Record buffers e. The end of a game, finished or abandoned, is pushed at
// once.
func (r *RedisRecorder) Record(_ context.Context, e message.Event) error {
	if !recorded(e.Type) {
		return nil
	}

	r.pusher.AddMessages(e)
	if e.Type.Ends() {
		return r.pusher.PushAll()
	}
	return nil
}

// Events reads back everything recorded for uid, oldest first.
func (r *RedisRecorder) Events(ctx context.Context, uid message.GameUid) ([]message.Event, error) {
	values, err := r.rds.LrangeCtx(ctx, uid.ListKey(), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("read game events: %w", err)
	}

	events := make([]message.Event, 0, len(values))
	for _, v := range values {
		e, err := message.ParseEvent(v)
		if err != nil {
			return nil, fmt.Errorf("decode game event: %w", err)
		}
		events = append(events, e)
	}
	return events, nil
}

func (r *RedisRecorder) Close() error {
	r.pusher.Stop()
	return nil
}

func (r *RedisRecorder) push(events ...message.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), listenerTimeout)
	defer cancel()

	var order []message.GameUid
	byGame := make(map[message.GameUid][]any)
	for _, e := range events {
		if _, ok := byGame[e.GameUid]; !ok {
			order = append(order, e.GameUid)
		}
		byGame[e.GameUid] = append(byGame[e.GameUid], e.String())
	}

	for i, uid := range order {
		values := byGame[uid]
		err := model.NewLock(r.rds, uid.LockName()).Do(ctx, func() error {
			if _, err := r.rds.RpushCtx(ctx, uid.ListKey(), values...); err != nil {
				return err
			}
			if err := r.rds.ExpireCtx(ctx, uid.ListKey(), int(r.expire/time.Second)); err != nil {
				logx.WithContext(ctx).Errorf("expire events of game %s: %v", uid, err)
			}
			return nil
		})
		if err != nil {
			return &pusher.PartialError[message.Event]{
				Pending: eventsOf(events, order[i:]),
				Err:     fmt.Errorf("push events of game %s: %w", uid, err),
			}
		}
	}
	return nil
}

// eventsOf keeps the events belonging to uids, in their original order.
func eventsOf(events []message.Event, uids []message.GameUid) (kept []message.Event) {
	want := make(map[message.GameUid]struct{}, len(uids))
	for _, uid := range uids {
		want[uid] = struct{}{}
	}
	for _, e := range events {
		if _, ok := want[e.GameUid]; ok {
			kept = append(kept, e)
		}
	}
	return
}
