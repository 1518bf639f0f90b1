package moverecord

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
)

type GameStartRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid   message.GameUid `bson:"gameUid" json:"gameUid"`
	BoardSize int             `bson:"boardSize" json:"boardSize"`
	Opponent  string          `bson:"opponent" json:"opponent"`
}

type MoveRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid     message.GameUid `bson:"gameUid" json:"gameUid"`
	Kind        string          `bson:"kind" json:"kind"`
	StepCount   int             `bson:"stepCount" json:"stepCount"`
	Player      string          `bson:"player" json:"player"`
	Line        string          `bson:"line" json:"line"`
	Boxes       int             `bson:"boxes" json:"boxes"`
	FirstScore  int             `bson:"firstScore" json:"firstScore"`
	SecondScore int             `bson:"secondScore" json:"secondScore"`
	NextPlayer  string          `bson:"nextPlayer" json:"nextPlayer"`
}

type GameEndRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid     message.GameUid `bson:"gameUid" json:"gameUid"`
	Winner      string          `bson:"winner" json:"winner"`
	FirstScore  int             `bson:"firstScore" json:"firstScore"`
	SecondScore int             `bson:"secondScore" json:"secondScore"`
	TimedOut    bool            `bson:"timedOut" json:"timedOut"`
	Abandoned   bool            `bson:"abandoned" json:"abandoned"`
}
