package assess

import (
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

// NextMoves evaluates every free line on a private copy of the board, in the
// order of chess.Lines.
func NextMoves(b chess.Board) (moves []Move) {
	snapshot := b.Clone()
	for _, l := range snapshot.FreeLines() {
		moves = append(moves, Move{Board: snapshot, Line: l})
	}
	return
}

// BestLine picks the free line completing the most boxes. Ties go to the
// first such line in enumeration order. ok is false on a full board.
func BestLine(b chess.Board) (best chess.Line, ok bool) {
	bestScore := -1
	for _, m := range NextMoves(b) {
		if score := m.Score(); score > bestScore {
			best, bestScore, ok = m.Line, score, true
		}
	}
	return
}
