package moverecord

import (
	"context"

	"github.com/zeromicro/go-zero/core/stores/mon"
)

const (
	GameStartCollectionName = "game_start_record"
	MoveCollectionName      = "move_record"
	GameEndCollectionName   = "game_end_record"
)

// Model writes one kind of record into its collection.
type Model interface {
	Insert(ctx context.Context, doc any) error
}

type defaultModel struct {
	conn *mon.Model
}

func NewModel(url, db, collection string) (Model, error) {
	conn, err := mon.NewModel(url, db, collection)
	if err != nil {
		return nil, err
	}
	return &defaultModel{conn: conn}, nil
}

func (m *defaultModel) Insert(ctx context.Context, doc any) error {
	_, err := m.conn.InsertOne(ctx, doc)
	return err
}
