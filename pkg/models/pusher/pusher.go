package pusher

import (
	"errors"
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"
)

// Pusher buffers messages and hands them to PushLogic in batches, either
// every PushInterval once started or on an explicit PushAll.
type Pusher[T any] struct {
	MessagesBuffer []T
	PushLogic      func(...T) error
	PushInterval   time.Duration
	ErrorHandler   func(error)

	lock     sync.Mutex
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
	started  bool
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { logx.Error(err) },
		PushInterval: time.Second,
		done:         make(chan struct{}),
		stopped:      make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

// PartialError reports a push that delivered only part of a batch. Pending
// holds the messages that still have to be sent.
type PartialError[T any] struct {
	Pending []T
	Err     error
}

func (e *PartialError[T]) Error() string { return e.Err.Error() }

func (e *PartialError[T]) Unwrap() error { return e.Err }

// PushAll sends the buffer. On failure the messages stay buffered for the
// next attempt, or only the pending ones when PushLogic returns a
// PartialError.
func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.MessagesBuffer) == 0 {
		return nil
	}

	if err := p.PushLogic(p.MessagesBuffer...); err != nil {
		var partial *PartialError[T]
		if errors.As(err, &partial) {
			p.MessagesBuffer = append([]T(nil), partial.Pending...)
		}
		return err
	}

	p.MessagesBuffer = nil
	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.MessagesBuffer = append(p.MessagesBuffer, messages...)
}

func (p *Pusher[T]) Len() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.MessagesBuffer)
}

func (p *Pusher[T]) Start() {
	p.lock.Lock()
	if p.started {
		p.lock.Unlock()
		return
	}
	p.started = true
	p.lock.Unlock()

	threading.GoSafe(func() {
		defer close(p.stopped)

		ticker := time.NewTicker(p.PushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-p.done:
				return
			case <-ticker.C:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
			}
		}
	})
}

// Stop ends the background loop and flushes whatever is left.
func (p *Pusher[T]) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)

		p.lock.Lock()
		started := p.started
		p.lock.Unlock()
		if started {
			<-p.stopped
		}

		if err := p.PushAll(); err != nil {
			p.ErrorHandler(err)
		}
	})
}
