package types

import (
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/session"
)

type CreateGameRequest struct {
	BoardSize  int    `json:"boardSize"`
	Opponent   string `json:"opponent"`
	Difficulty string `json:"difficulty"`
}

type MoveRequest struct {
	Line string `json:"line" binding:"required"`
}

type RestartRequest struct {
	BoardSize int `json:"boardSize"`
}

type GameResponse = session.Status

// MoveResponse reports a move, undo or redo. Applied is false when the
// request was a no-op: a drawn line or an empty history.
type MoveResponse struct {
	Applied  bool              `json:"applied"`
	Reason   string            `json:"reason,omitempty"`
	Result   *chess.MoveResult `json:"result,omitempty"`
	Snapshot chess.Snapshot    `json:"snapshot"`
}

type EventsResponse struct {
	Events []message.Event `json:"events"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
