package chess

import (
	"fmt"
	"strings"
)

// Player identifies one side of the game. The zero value marks an unowned
// line or box.
type Player int8

const (
	None   Player = 0
	First  Player = 1
	Second Player = -1
)

// AutomatedPlayer is the side played by the heuristic opponent.
const AutomatedPlayer = Second

func (p Player) Other() Player { return -p }

func (p Player) Valid() bool { return p == First || p == Second }

func (p Player) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	}
	return "none"
}

// Color is the name the view draws the player with.
func (p Player) Color() string {
	switch p {
	case First:
		return "red"
	case Second:
		return "blue"
	}
	return ""
}

func (p Player) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Player) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "first", "red":
		*p = First
	case "second", "blue":
		*p = Second
	case "none", "":
		*p = None
	default:
		return fmt.Errorf("unknown player %q", text)
	}
	return nil
}

type Outcome int8

const (
	Undecided Outcome = iota
	FirstWins
	SecondWins
	Draw
)

// DecideOutcome compares final scores: the higher score wins, equal scores draw.
func DecideOutcome(firstScore, secondScore int) Outcome {
	switch {
	case firstScore > secondScore:
		return FirstWins
	case firstScore < secondScore:
		return SecondWins
	}
	return Draw
}

func (o Outcome) Winner() Player {
	switch o {
	case FirstWins:
		return First
	case SecondWins:
		return Second
	}
	return None
}

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first"
	case SecondWins:
		return "second"
	case Draw:
		return "draw"
	}
	return "undecided"
}

// Message is the text shown when the game ends.
func (o Outcome) Message() string {
	switch o {
	case FirstWins:
		return "Red wins!"
	case SecondWins:
		return "Blue wins!"
	case Draw:
		return "It's a draw!"
	}
	return ""
}

func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "first":
		*o = FirstWins
	case "second":
		*o = SecondWins
	case "draw":
		*o = Draw
	case "undecided", "":
		*o = Undecided
	default:
		return fmt.Errorf("unknown outcome %q", text)
	}
	return nil
}

// Opponent selects whether the second player is a human or the heuristic.
type Opponent int8

const (
	HumanOpponent Opponent = iota
	AutomatedOpponent
)

func ParseOpponent(s string) (Opponent, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "human":
		return HumanOpponent, nil
	case "automated", "ai", "computer":
		return AutomatedOpponent, nil
	}
	return HumanOpponent, fmt.Errorf("unknown opponent %q", s)
}

func (o Opponent) String() string {
	if o == AutomatedOpponent {
		return "automated"
	}
	return "none"
}

func (o Opponent) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Opponent) UnmarshalText(text []byte) (err error) {
	*o, err = ParseOpponent(string(text))
	return
}
