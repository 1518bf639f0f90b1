package record

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message/moverecord"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/session"
)

func TestMain(m *testing.M) {
	logx.Disable()
	os.Exit(m.Run())
}

// playedGame returns the events of a one-box game that Second wins.
func playedGame(t *testing.T) []message.Event {
	t.Helper()
	var (
		mu     sync.Mutex
		events []message.Event
	)
	opts := session.DefaultOptions()
	opts.Size = 1
	s, err := session.New(opts, func(e message.Event) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, e)
	})
	require.NoError(t, err)
	defer s.Close()

	for _, l := range chess.Lines(1) {
		_, err := s.Submit(context.Background(), l)
		require.NoError(t, err)
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 6)
	return append([]message.Event(nil), events...)
}

func TestLogRecorderWritesOneFilePerGame(t *testing.T) {
	events := playedGame(t)
	r, err := NewLogRecorder(t.TempDir())
	require.NoError(t, err)

	tick := message.NewEvent(message.TimerTick, events[0].GameUid)
	for _, e := range append([]message.Event{tick}, events...) {
		require.NoError(t, r.Record(context.Background(), e))
	}
	require.NoError(t, r.Close())

	data, err := os.ReadFile(r.Path(events[0].GameUid))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "BoardSize: 1")
	assert.Contains(t, lines[1], "move_applied first 0,0,0 boxes=0 score=0-0")
	assert.Contains(t, lines[4], "boxes=1 score=0-1")
	assert.True(t, strings.HasSuffix(lines[5], "Blue wins!"))
}

func TestLogRecorderClosesAbandonedGames(t *testing.T) {
	r, err := NewLogRecorder(t.TempDir())
	require.NoError(t, err)
	defer r.Close()

	opts := session.DefaultOptions()
	opts.Size = 2
	s, err := session.New(opts, Listener(r))
	require.NoError(t, err)

	var uids []message.GameUid
	for range 10 {
		status, err := s.Status(context.Background())
		require.NoError(t, err)
		uids = append(uids, status.GameUid)
		_, err = s.Submit(context.Background(), chess.HorizontalLine(0, 0))
		require.NoError(t, err)
		_, err = s.Restart(context.Background(), 0)
		require.NoError(t, err)
	}

	r.mu.Lock()
	assert.Len(t, r.files, 1)
	r.mu.Unlock()

	require.NoError(t, s.Close())
	r.mu.Lock()
	assert.Empty(t, r.files)
	r.mu.Unlock()

	data, err := os.ReadFile(r.Path(uids[0]))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[2], "Game abandoned"))
}

func TestRedisRecorderPushesEventsInOrder(t *testing.T) {
	mr := miniredis.RunT(t)
	rds := redis.MustNewRedis(redis.RedisConf{Host: mr.Addr(), Type: redis.NodeType, NonBlock: true})
	r := NewRedisRecorder(rds)
	defer r.Close()

	events := playedGame(t)
	uid := events[0].GameUid
	for _, e := range events {
		require.NoError(t, r.Record(context.Background(), e))
	}

	stored, err := r.Events(context.Background(), uid)
	require.NoError(t, err)
	require.Len(t, stored, len(events))
	for i, e := range events {
		assert.Equal(t, e.Type, stored[i].Type)
		assert.Equal(t, uid, stored[i].GameUid)
	}
	last := stored[len(stored)-1]
	require.NotNil(t, last.Snapshot)
	assert.Equal(t, chess.SecondWins, last.Snapshot.Outcome)
	assert.Positive(t, mr.TTL(uid.ListKey()))
}

func TestRedisRecorderRetriesOnlyFailedGames(t *testing.T) {
	mr := miniredis.RunT(t)
	rds := redis.MustNewRedis(redis.RedisConf{Host: mr.Addr(), Type: redis.NodeType, NonBlock: true})
	r := NewRedisRecorder(rds, WithRedisPushInterval(time.Hour))
	defer r.Close()

	a, b := message.NewGameUid(), message.NewGameUid()
	require.NoError(t, r.Record(context.Background(), message.NewEvent(message.GameStarted, a)))
	require.NoError(t, r.Record(context.Background(), message.NewEvent(message.GameStarted, b)))

	// A string under b's list key makes its RPUSH fail.
	require.NoError(t, mr.Set(b.ListKey(), "taken"))
	assert.Error(t, r.pusher.PushAll())
	assert.Equal(t, 1, r.pusher.Len())

	mr.Del(b.ListKey())
	require.NoError(t, r.pusher.PushAll())
	assert.Zero(t, r.pusher.Len())

	for _, uid := range []message.GameUid{a, b} {
		stored, err := r.Events(context.Background(), uid)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, uid, stored[0].GameUid)
	}
}

type fakeModel struct {
	docs []any
	err  error
}

func (m *fakeModel) Insert(_ context.Context, doc any) error {
	if m.err != nil {
		return m.err
	}
	m.docs = append(m.docs, doc)
	return nil
}

func TestMongoRecorderSplitsDocuments(t *testing.T) {
	starts, moves, ends := &fakeModel{}, &fakeModel{}, &fakeModel{}
	r := &MongoRecorder{starts: starts, moves: moves, ends: ends}

	for _, e := range playedGame(t) {
		require.NoError(t, r.Record(context.Background(), e))
	}

	require.Len(t, starts.docs, 1)
	assert.Equal(t, 1, starts.docs[0].(*moverecord.GameStartRecord).BoardSize)

	require.Len(t, moves.docs, 4)
	last := moves.docs[3].(*moverecord.MoveRecord)
	assert.Equal(t, "0,1,0", last.Line)
	assert.Equal(t, "second", last.Player)
	assert.Equal(t, 1, last.Boxes)
	assert.Equal(t, 4, last.StepCount)

	require.Len(t, ends.docs, 1)
	end := ends.docs[0].(*moverecord.GameEndRecord)
	assert.Equal(t, "second", end.Winner)
	assert.False(t, end.TimedOut)
}

func TestMongoRecorderMarksAbandonedGames(t *testing.T) {
	ends := &fakeModel{}
	r := &MongoRecorder{starts: &fakeModel{}, moves: &fakeModel{}, ends: ends}

	e := message.NewEvent(message.GameAbandoned, message.NewGameUid()).WithSnapshot(chess.Snapshot{BoardSize: 2})
	require.NoError(t, r.Record(context.Background(), e))

	require.Len(t, ends.docs, 1)
	end := ends.docs[0].(*moverecord.GameEndRecord)
	assert.True(t, end.Abandoned)
	assert.Equal(t, "undecided", end.Winner)
}

func TestMongoRecorderWrapsInsertError(t *testing.T) {
	boom := errors.New("boom")
	r := &MongoRecorder{starts: &fakeModel{err: boom}, moves: &fakeModel{}, ends: &fakeModel{}}
	err := r.Record(context.Background(), playedGame(t)[0])
	assert.ErrorIs(t, err, boom)
}

type countingRecorder struct {
	calls  int
	closed bool
	err    error
}

func (r *countingRecorder) Record(context.Context, message.Event) error {
	r.calls++
	return r.err
}

func (r *countingRecorder) Close() error {
	r.closed = true
	return nil
}

func TestMultiReachesEveryRecorder(t *testing.T) {
	failing := &countingRecorder{err: errors.New("boom")}
	ok := &countingRecorder{}
	m := Multi{failing, ok}

	e := message.NewEvent(message.GameStarted, message.NewGameUid())
	assert.Error(t, m.Record(context.Background(), e))
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, ok.calls)

	require.NoError(t, m.Close())
	assert.True(t, failing.closed)
	assert.True(t, ok.closed)
}

func TestListenerSwallowsErrors(t *testing.T) {
	r := &countingRecorder{err: errors.New("boom")}
	listen := Listener(r)
	assert.NotPanics(t, func() {
		listen(message.NewEvent(message.GameStarted, message.NewGameUid()))
	})
	assert.Equal(t, 1, r.calls)
}
