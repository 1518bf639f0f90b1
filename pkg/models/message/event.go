package message

import (
	"time"

	"github.com/bytedance/sonic"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

type EventType string

const (
	GameStarted   EventType = "game_started"
	MoveApplied   EventType = "move_applied"
	MoveUndone    EventType = "move_undone"
	MoveRedone    EventType = "move_redone"
	OpponentMoved EventType = "opponent_moved"
	TimerTick     EventType = "timer_tick"
	TimeUp        EventType = "time_up"
	GameOver      EventType = "game_over"
	// GameAbandoned closes a game left unfinished by a restart or by closing
	// its session.
	GameAbandoned EventType = "game_abandoned"
)

// Ends reports whether nothing more is recorded for the game after t, unless
// a later move reopens it.
func (t EventType) Ends() bool {
	return t == GameOver || t == GameAbandoned
}

// Event is the notification a view redraws from.
type Event struct {
	Type      EventType         `json:"type"`
	GameUid   GameUid           `json:"gameUid"`
	TimeStamp TimeStamp         `json:"timeStamp"`
	Result    *chess.MoveResult `json:"result,omitempty"`
	Snapshot  *chess.Snapshot   `json:"snapshot,omitempty"`
	Remaining time.Duration     `json:"remaining,omitempty"`
}

func NewEvent(t EventType, uid GameUid) Event {
	return Event{
		Type:      t,
		GameUid:   uid,
		TimeStamp: NewTimeStamp(time.Now()),
	}
}

func (e Event) WithResult(res chess.MoveResult) Event {
	e.Result = &res
	return e
}

func (e Event) WithSnapshot(s chess.Snapshot) Event {
	e.Snapshot = &s
	return e
}

func ParseEvent(s string) (e Event, err error) {
	err = sonic.UnmarshalString(s, &e)
	return
}

func (e Event) String() string {
	str, _ := sonic.MarshalString(e)
	return str
}
