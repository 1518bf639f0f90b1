package assess

import (
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

// Move is a candidate line evaluated against a board snapshot.
type Move struct {
	chess.Board
	chess.Line
}

// Score is the number of boxes the line would complete.
func (m Move) Score() int {
	return len(m.Board.ObtainsBoxes(m.Line))
}
