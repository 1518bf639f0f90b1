package assess

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

var ErrNoMove = errors.New("no free line left")

// Difficulty is accepted from the view but every level plays the same
// one-ply greedy strategy.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"

	DefaultDifficulty = Medium
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return DefaultDifficulty, nil
	case Easy, Medium, Hard:
		return d, nil
	}
	return DefaultDifficulty, fmt.Errorf("unknown difficulty %q", s)
}

// Opponent is the automated player.
type Opponent struct {
	Player     chess.Player
	Difficulty Difficulty
}

func NewOpponent(d Difficulty) Opponent {
	return Opponent{Player: chess.AutomatedPlayer, Difficulty: d}
}

// Move plays the greedy choice for whoever holds the turn, through the same
// path as a human move.
func (o Opponent) Move(g *chess.Game) (chess.MoveResult, error) {
	l, ok := BestLine(g.Board)
	if !ok {
		return chess.MoveResult{}, ErrNoMove
	}
	return g.Play(l)
}

// Play keeps moving while the opponent holds the turn, so boxes it completes
// earn it further moves.
func (o Opponent) Play(g *chess.Game) (results []chess.MoveResult, err error) {
	for g.Current() == o.Player && !g.IsGameOver() {
		res, err := o.Move(g)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
