package record

import (
	"context"
	"fmt"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message/moverecord"
)

// MongoRecorder archives the start, every move and the end of each game as
// separate documents.
type MongoRecorder struct {
	starts moverecord.Model
	moves  moverecord.Model
	ends   moverecord.Model
}

func NewMongoRecorder(url, db string) (*MongoRecorder, error) {
	starts, err := moverecord.NewModel(url, db, moverecord.GameStartCollectionName)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	moves, err := moverecord.NewModel(url, db, moverecord.MoveCollectionName)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	ends, err := moverecord.NewModel(url, db, moverecord.GameEndCollectionName)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return &MongoRecorder{starts: starts, moves: moves, ends: ends}, nil
}

func (r *MongoRecorder) Record(ctx context.Context, e message.Event) error {
	m, doc := r.document(e)
	if m == nil {
		return nil
	}
	if err := m.Insert(ctx, doc); err != nil {
		return fmt.Errorf("insert %s of game %s: %w", e.Type, e.GameUid, err)
	}
	return nil
}

func (r *MongoRecorder) Close() error { return nil }

func (r *MongoRecorder) document(e message.Event) (moverecord.Model, any) {
	createAt := e.TimeStamp.Time()

	switch e.Type {
	case message.GameStarted:
		if e.Snapshot == nil {
			return nil, nil
		}
		return r.starts, &moverecord.GameStartRecord{
			CreateAt:  createAt,
			GameUid:   e.GameUid,
			BoardSize: e.Snapshot.BoardSize,
			Opponent:  e.Snapshot.Opponent.String(),
		}
	case message.MoveApplied, message.OpponentMoved, message.MoveUndone, message.MoveRedone:
		if e.Result == nil {
			return nil, nil
		}
		doc := &moverecord.MoveRecord{
			CreateAt:    createAt,
			GameUid:     e.GameUid,
			Kind:        string(e.Type),
			Player:      e.Result.Player.String(),
			Line:        e.Result.Line.String(),
			Boxes:       e.Result.BoxesCompleted,
			FirstScore:  e.Result.FirstScore,
			SecondScore: e.Result.SecondScore,
			NextPlayer:  e.Result.NextPlayer.String(),
		}
		if e.Snapshot != nil {
			doc.StepCount = e.Snapshot.StepCount
		}
		return r.moves, doc
	case message.GameOver, message.GameAbandoned:
		if e.Snapshot == nil {
			return nil, nil
		}
		return r.ends, &moverecord.GameEndRecord{
			CreateAt:    createAt,
			GameUid:     e.GameUid,
			Winner:      e.Snapshot.Outcome.String(),
			FirstScore:  e.Snapshot.FirstScore,
			SecondScore: e.Snapshot.SecondScore,
			TimedOut:    e.Snapshot.Locked,
			Abandoned:   e.Type == message.GameAbandoned,
		}
	}
	return nil, nil
}
