package chess

import "fmt"

const (
	SmallBoard  = 5
	MediumBoard = 8
	LargeBoard  = 11

	DefaultBoardSize = SmallBoard
	// MaxBoardSize bounds what a caller can ask for. A board of n has
	// 2n(n+1) lines and every snapshot copies them all.
	MaxBoardSize     = 64
)

// UndoScoring decides how undo and redo move the score.
type UndoScoring int8

const (
	// ScoreByTurn takes one point from whoever holds the turn after an undo
	// and gives one point back on redo, whether or not the move scored. Redo
	// always passes the turn. This is how the game has always behaved, even
	// though it can corrupt scores.
	ScoreByTurn UndoScoring = iota
	// ScoreByRecord uses the box count saved with each move, so an undo
	// followed by a redo restores the game exactly.
	ScoreByRecord
)

func (s UndoScoring) String() string {
	if s == ScoreByRecord {
		return "record"
	}
	return "turn"
}

func ParseUndoScoring(s string) (UndoScoring, error) {
	switch s {
	case "", "turn":
		return ScoreByTurn, nil
	case "record":
		return ScoreByRecord, nil
	}
	return ScoreByTurn, fmt.Errorf("unknown undo scoring %q", s)
}

type Option func(*Game)

func WithUndoScoring(s UndoScoring) Option {
	return func(g *Game) { g.undoScoring = s }
}

// WithHonorLock makes the game refuse moves once it has been locked.
func WithHonorLock(honor bool) Option {
	return func(g *Game) { g.honorLock = honor }
}

type Game struct {
	Board
	FirstScore  int
	SecondScore int
	NowPlayer   Player
	Opponent    Opponent

	terminal    bool
	expired     bool
	locked      bool
	outcome     Outcome
	honorLock   bool
	undoScoring UndoScoring
	history     History
}

func NewGame(boardSize int, opponent Opponent, options ...Option) (*Game, error) {
	if boardSize < 1 || boardSize > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoardSize, boardSize)
	}

	g := &Game{
		Board:     NewBoard(boardSize),
		NowPlayer: First,
		Opponent:  opponent,
	}
	for _, option := range options {
		option(g)
	}
	return g, nil
}

type LineUpdate struct {
	Line  Line   `json:"line"`
	Owner Player `json:"owner"`
}

type BoxUpdate struct {
	Box   Box    `json:"box"`
	Owner Player `json:"owner"`
}

// MoveResult describes what a move, undo or redo changed. For undo and redo
// BoxesCompleted is the box count recorded with the move.
type MoveResult struct {
	Line           Line         `json:"line"`
	Player         Player       `json:"player"`
	BoxesCompleted int          `json:"boxesCompleted"`
	LineUpdates    []LineUpdate `json:"lineUpdates"`
	BoxUpdates     []BoxUpdate  `json:"boxUpdates,omitempty"`
	NextPlayer     Player       `json:"nextPlayer"`
	FirstScore     int          `json:"firstScore"`
	SecondScore    int          `json:"secondScore"`
	Terminal       bool         `json:"terminal"`
	Outcome        Outcome      `json:"outcome"`
	// OpponentTurn is set when the automated opponent should move next.
	OpponentTurn bool `json:"opponentTurn"`
}

// Play submits l for the player holding the turn.
func (g *Game) Play(l Line) (MoveResult, error) {
	return g.Submit(l, g.NowPlayer)
}

// Submit draws l for p. Completing one or two boxes keeps the turn, otherwise
// it passes to the other player.
func (g *Game) Submit(l Line, p Player) (MoveResult, error) {
	if !l.Valid(g.BoardSize) {
		return MoveResult{}, fmt.Errorf("%w: %s", ErrInvalidLine, l)
	}
	if !p.Valid() {
		return MoveResult{}, fmt.Errorf("%w: %d", ErrInvalidPlayer, p)
	}
	if g.locked && g.honorLock {
		return MoveResult{}, ErrLocked
	}
	if g.Contains(l) {
		return MoveResult{}, fmt.Errorf("%w: %s", ErrLineAlreadyOwned, l)
	}

	turnBefore := g.NowPlayer
	boxes := g.Board.Draw(l, p)
	g.addScore(p, len(boxes))
	if len(boxes) == 0 {
		g.NowPlayer = g.NowPlayer.Other()
	}

	g.history.Push(MoveRecord{
		Line:       l,
		Player:     p,
		TurnBefore: turnBefore,
		Boxes:      len(boxes),
	})
	g.checkTerminal()

	result := g.result(l, p, len(boxes), p, boxes)
	result.OpponentTurn = g.opponentTurn()
	return result, nil
}

// Undo takes back the most recent move.
func (g *Game) Undo() (MoveResult, error) {
	r, ok := g.history.Undo()
	if !ok {
		return MoveResult{}, ErrHistoryEmpty
	}

	boxes := g.Board.Erase(r.Line)
	g.NowPlayer = r.TurnBefore
	switch g.undoScoring {
	case ScoreByRecord:
		g.addScore(r.Player, -len(boxes))
	default:
		g.addScore(g.NowPlayer, -1)
	}
	g.checkTerminal()

	return g.result(r.Line, r.Player, r.Boxes, None, boxes), nil
}

// Redo plays the most recently undone move again.
func (g *Game) Redo() (MoveResult, error) {
	r, ok := g.history.Redo()
	if !ok {
		return MoveResult{}, ErrHistoryEmpty
	}

	boxes := g.Board.Draw(r.Line, r.Player)
	switch g.undoScoring {
	case ScoreByRecord:
		g.addScore(r.Player, len(boxes))
		g.NowPlayer = r.TurnBefore
		if len(boxes) == 0 {
			g.NowPlayer = g.NowPlayer.Other()
		}
	default:
		g.addScore(r.Player, 1)
		g.NowPlayer = g.NowPlayer.Other()
	}
	g.checkTerminal()

	result := g.result(r.Line, r.Player, r.Boxes, r.Player, boxes)
	result.OpponentTurn = g.opponentTurn()
	return result, nil
}

// Expire ends the game when the clock runs out. The outcome is decided on the
// scores at that moment, and the game is locked.
func (g *Game) Expire() Outcome {
	g.expired = true
	g.locked = true
	g.checkTerminal()
	return g.outcome
}

func (g *Game) Lock() { g.locked = true }

func (g *Game) Locked() bool { return g.locked }

func (g *Game) Expired() bool { return g.expired }

func (g *Game) IsGameOver() bool { return g.terminal }

func (g *Game) Outcome() Outcome { return g.outcome }

func (g *Game) Current() Player { return g.NowPlayer }

func (g *Game) Score() (first, second int) { return g.FirstScore, g.SecondScore }

func (g *Game) StepCount() int { return len(g.Board.Lines) }

func (g *Game) History() History {
	return History{past: g.history.Past(), future: g.history.Future()}
}

func (g *Game) CanUndo() bool { return g.history.CanUndo() }

func (g *Game) CanRedo() bool { return g.history.CanRedo() }

func (g *Game) UndoScoring() UndoScoring { return g.undoScoring }

func (g *Game) addScore(p Player, delta int) {
	switch p {
	case First:
		g.FirstScore += delta
	case Second:
		g.SecondScore += delta
	}
}

func (g *Game) checkTerminal() {
	complete := g.FirstScore+g.SecondScore == g.BoardSize*g.BoardSize
	g.terminal = complete || g.expired
	if g.terminal {
		g.outcome = DecideOutcome(g.FirstScore, g.SecondScore)
	} else {
		g.outcome = Undecided
	}
}

func (g *Game) opponentTurn() bool {
	return g.Opponent == AutomatedOpponent && g.NowPlayer == AutomatedPlayer && !g.terminal
}

func (g *Game) result(l Line, p Player, boxesCompleted int, lineOwner Player, boxes []Box) MoveResult {
	result := MoveResult{
		Line:           l,
		Player:         p,
		BoxesCompleted: boxesCompleted,
		LineUpdates:    []LineUpdate{{Line: l, Owner: lineOwner}},
		NextPlayer:     g.NowPlayer,
		FirstScore:     g.FirstScore,
		SecondScore:    g.SecondScore,
		Terminal:       g.terminal,
		Outcome:        g.outcome,
	}
	for _, box := range boxes {
		result.BoxUpdates = append(result.BoxUpdates, BoxUpdate{Box: box, Owner: lineOwner})
	}
	return result
}
