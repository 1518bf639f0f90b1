package model

import (
	"context"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

var ErrLockNotAcquired = errors.New("redis lock not acquired")

const (
	lockRetryInterval = time.Second / 5
	lockMaxRetries    = 25
)

type RedisLock struct {
	*redis.RedisLock
}

func NewLock(rds *redis.Redis, lockName string) *RedisLock {
	l := &RedisLock{
		RedisLock: redis.NewRedisLock(rds, lockName),
	}
	l.SetExpire(5)
	return l
}

// Do runs f while holding the lock. The lock is released even when f fails.
func (l *RedisLock) Do(ctx context.Context, f func() error) (err error) {
	if err = l.Lock(ctx); err != nil {
		return err
	}

	defer func() {
		if unlockErr := l.UnLock(ctx); err == nil {
			err = unlockErr
		}
	}()

	return f()
}

func (l *RedisLock) Lock(ctx context.Context) error {
	for range lockMaxRetries {
		acquire, err := l.AcquireCtx(ctx)
		if err != nil {
			return err
		}
		if acquire {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}

	return ErrLockNotAcquired
}

// UnLock releases the lock. A lock that already expired counts as released.
func (l *RedisLock) UnLock(ctx context.Context) error {
	_, err := l.ReleaseCtx(ctx)
	return err
}
