package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
)

var ErrClosed = errors.New("session closed")

// Listener receives every event of a session, in order, on the session
// goroutine. It must not call back into the session.
type Listener func(message.Event)

// Status is what a view needs to draw a session from scratch.
type Status struct {
	ID         message.GameUid   `json:"id"`
	GameUid    message.GameUid   `json:"gameUid"`
	Difficulty assess.Difficulty `json:"difficulty"`
	Remaining  time.Duration     `json:"remaining,omitempty"`
	Snapshot   chess.Snapshot    `json:"snapshot"`
}

// Session serialises every mutation of one game through a single goroutine.
// Human moves, opponent replies and clock ticks are all commands on the same
// channel.
type Session struct {
	id        message.GameUid
	opts      Options
	listeners []Listener
	logger    logx.Logger

	cmds      chan func()
	quit      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once

	// Owned by the session goroutine.
	uid       message.GameUid
	game      *chess.Game
	opponent  assess.Opponent
	gen       uint64
	pending   *time.Timer
	ticker    *time.Ticker
	deadline  time.Time
	remaining time.Duration
	overSent  bool
	// ended is set once the last event of the game went out.
	ended     bool
}

func New(opts Options, listeners ...Listener) (*Session, error) {
	opts = opts.withDefaults()
	game, err := chess.NewGame(opts.Size, opts.Opponent, opts.gameOptions()...)
	if err != nil {
		return nil, err
	}

	id := message.NewGameUid()
	s := &Session{
		id:        id,
		opts:      opts,
		listeners: listeners,
		logger:    logx.WithContext(context.Background()).WithFields(logx.Field("session", id)),
		cmds:      make(chan func()),
		quit:      make(chan struct{}),
		stopped:   make(chan struct{}),
		uid:       message.NewGameUid(),
		game:      game,
		opponent:  assess.NewOpponent(opts.Difficulty),
	}

	threading.GoSafe(s.run)
	if err := s.do(context.Background(), s.start); err != nil {
		return nil, err
	}
	return s, nil
}

// ID stays the same across restarts. Each game gets its own GameUid.
func (s *Session) ID() message.GameUid { return s.id }

func (s *Session) Options() Options { return s.opts }

// Submit plays l for whoever holds the turn. An already drawn line returns
// chess.ErrLineAlreadyOwned and changes nothing.
func (s *Session) Submit(ctx context.Context, l chess.Line) (res chess.MoveResult, err error) {
	if doErr := s.do(ctx, func() { res, err = s.submit(l) }); doErr != nil {
		return chess.MoveResult{}, doErr
	}
	return
}

func (s *Session) Undo(ctx context.Context) (res chess.MoveResult, err error) {
	if doErr := s.do(ctx, func() { res, err = s.undo() }); doErr != nil {
		return chess.MoveResult{}, doErr
	}
	return
}

func (s *Session) Redo(ctx context.Context) (res chess.MoveResult, err error) {
	if doErr := s.do(ctx, func() { res, err = s.redo() }); doErr != nil {
		return chess.MoveResult{}, doErr
	}
	return
}

// Restart throws the current game away and starts a new one. A size of zero
// keeps the current board size.
func (s *Session) Restart(ctx context.Context, size int) (snapshot chess.Snapshot, err error) {
	if doErr := s.do(ctx, func() { snapshot, err = s.restart(size) }); doErr != nil {
		return chess.Snapshot{}, doErr
	}
	return
}

func (s *Session) Snapshot(ctx context.Context) (snapshot chess.Snapshot, err error) {
	err = s.do(ctx, func() { snapshot = s.game.Snapshot() })
	return
}

func (s *Session) Status(ctx context.Context) (status Status, err error) {
	err = s.do(ctx, func() {
		status = Status{
			ID:         s.id,
			GameUid:    s.uid,
			Difficulty: s.opponent.Difficulty,
			Remaining:  s.remainingTime(),
			Snapshot:   s.game.Snapshot(),
		}
	})
	return
}

// Close stops the session goroutine and its timers. It must not be called
// from a Listener.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		close(s.quit)
		<-s.stopped
	})
	return nil
}

func (s *Session) run() {
	defer close(s.stopped)

	for {
		var tick <-chan time.Time
		if s.ticker != nil {
			tick = s.ticker.C
		}

		select {
		case <-s.quit:
			s.stopPending()
			s.stopClock()
			s.abandon()
			return
		case cmd := <-s.cmds:
			cmd()
		case <-tick:
			s.tick()
		}
	}
}

func (s *Session) do(ctx context.Context, f func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan struct{})
	cmd := func() {
		defer close(done)
		f()
	}

	select {
	case s.cmds <- cmd:
	case <-s.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	// Once handed off the command runs, so its outcome is awaited even if ctx
	// ends meanwhile.
	select {
	case <-done:
		return nil
	case <-s.stopped:
		select {
		case <-done:
			return nil
		default:
			return ErrClosed
		}
	}
}

// enqueue is used by timers, which have nobody waiting on the result.
func (s *Session) enqueue(f func()) {
	select {
	case s.cmds <- f:
	case <-s.quit:
	}
}

func (s *Session) start() {
	s.overSent = false
	s.remaining = s.opts.TimeLimit
	s.startClock()
	s.logger.Infof("game %s started, size %d, opponent %s", s.uid, s.game.BoardSize, s.game.Opponent)
	s.emit(message.NewEvent(message.GameStarted, s.uid).WithSnapshot(s.game.Snapshot()))
}

func (s *Session) submit(l chess.Line) (chess.MoveResult, error) {
	res, err := s.game.Play(l)
	if err != nil {
		s.logRejected("move", err)
		return res, err
	}

	s.gen++
	s.emitResult(message.MoveApplied, res)
	s.afterMove(res)
	return res, nil
}

func (s *Session) undo() (chess.MoveResult, error) {
	res, err := s.game.Undo()
	if err != nil {
		s.logRejected("undo", err)
		return res, err
	}

	s.gen++
	s.stopPending()
	s.emitResult(message.MoveUndone, res)
	if !s.game.IsGameOver() && s.overSent {
		s.overSent = false
		s.startClock()
	}
	return res, nil
}

func (s *Session) redo() (chess.MoveResult, error) {
	res, err := s.game.Redo()
	if err != nil {
		s.logRejected("redo", err)
		return res, err
	}

	s.gen++
	s.emitResult(message.MoveRedone, res)
	s.afterMove(res)
	return res, nil
}

func (s *Session) restart(size int) (chess.Snapshot, error) {
	if size == 0 {
		size = s.game.BoardSize
	}
	game, err := chess.NewGame(size, s.opts.Opponent, s.opts.gameOptions()...)
	if err != nil {
		return chess.Snapshot{}, err
	}

	s.gen++
	s.stopPending()
	s.stopClock()
	s.abandon()
	s.uid = message.NewGameUid()
	s.game = game
	s.start()
	return s.game.Snapshot(), nil
}

func (s *Session) afterMove(res chess.MoveResult) {
	if res.Terminal {
		s.finish()
		return
	}
	if !res.OpponentTurn {
		return
	}

	if s.opts.OpponentDelay == 0 {
		s.playOpponent()
		return
	}

	s.stopPending()
	gen := s.gen
	s.pending = time.AfterFunc(s.opts.OpponentDelay, func() {
		s.enqueue(func() {
			if gen == s.gen {
				s.playOpponent()
			}
		})
	})
}

// playOpponent moves for the automated player until it loses the turn.
func (s *Session) playOpponent() {
	s.pending = nil
	for s.game.Opponent == chess.AutomatedOpponent && s.game.Current() == s.opponent.Player && !s.game.IsGameOver() {
		res, err := s.opponent.Move(s.game)
		if err != nil {
			s.logger.Errorf("opponent move: %v", err)
			return
		}
		s.gen++
		s.emitResult(message.OpponentMoved, res)
	}

	if s.game.IsGameOver() {
		s.finish()
	}
}

func (s *Session) finish() {
	s.stopPending()
	s.stopClock()
	if s.overSent {
		return
	}
	s.overSent = true

	first, second := s.game.Score()
	s.logger.Infof("game %s over: %s (%d - %d)", s.uid, s.game.Outcome(), first, second)
	s.emit(message.NewEvent(message.GameOver, s.uid).WithSnapshot(s.game.Snapshot()))
}

// abandon closes the records of a game that is thrown away unfinished.
func (s *Session) abandon() {
	if s.ended {
		return
	}
	s.logger.Infof("game %s abandoned", s.uid)
	s.emit(message.NewEvent(message.GameAbandoned, s.uid).WithSnapshot(s.game.Snapshot()))
}

func (s *Session) tick() {
	remaining := time.Until(s.deadline)
	if remaining > 0 {
		e := message.NewEvent(message.TimerTick, s.uid)
		e.Remaining = remaining.Round(time.Millisecond)
		s.emit(e)
		return
	}

	s.stopClock()
	s.remaining = 0
	outcome := s.game.Expire()
	s.logger.Infof("game %s timed out: %s", s.uid, outcome)
	s.emit(message.NewEvent(message.TimeUp, s.uid).WithSnapshot(s.game.Snapshot()))
	s.finish()
}

func (s *Session) startClock() {
	if s.opts.TimeLimit <= 0 || s.remaining <= 0 || s.game.IsGameOver() {
		return
	}
	s.deadline = time.Now().Add(s.remaining)
	s.ticker = time.NewTicker(s.opts.TickInterval)
}

func (s *Session) stopClock() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
	if remaining := time.Until(s.deadline); remaining > 0 {
		s.remaining = remaining
	} else {
		s.remaining = 0
	}
}

func (s *Session) remainingTime() time.Duration {
	if s.ticker == nil {
		return s.remaining
	}
	if remaining := time.Until(s.deadline); remaining > 0 {
		return remaining
	}
	return 0
}

func (s *Session) stopPending() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

func (s *Session) emitResult(t message.EventType, res chess.MoveResult) {
	s.emit(message.NewEvent(t, s.uid).WithResult(res).WithSnapshot(s.game.Snapshot()))
}

func (s *Session) emit(e message.Event) {
	if e.Remaining == 0 {
		e.Remaining = s.remainingTime()
	}
	if e.Type != message.TimerTick {
		s.ended = e.Type.Ends()
	}
	for _, l := range s.listeners {
		threading.RunSafe(func() { l(e) })
	}
}

func (s *Session) logRejected(op string, err error) {
	switch {
	case errors.Is(err, chess.ErrLineAlreadyOwned), errors.Is(err, chess.ErrHistoryEmpty):
		s.logger.Infof("%s ignored: %v", op, err)
	default:
		s.logger.Errorf("%s rejected: %v", op, err)
	}
}
