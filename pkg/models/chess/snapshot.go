package chess

// Snapshot is a copy of the game a view can read without racing the engine.
type Snapshot struct {
	BoardSize   int             `json:"boardSize"`
	Lines       map[Line]Player `json:"lines"`
	Boxes       map[Box]Player  `json:"boxes"`
	FirstScore  int             `json:"firstScore"`
	SecondScore int             `json:"secondScore"`
	NowPlayer   Player          `json:"nowPlayer"`
	Opponent    Opponent        `json:"opponent"`
	Terminal    bool            `json:"terminal"`
	Outcome     Outcome         `json:"outcome"`
	Locked      bool            `json:"locked"`
	CanUndo     bool            `json:"canUndo"`
	CanRedo     bool            `json:"canRedo"`
	StepCount   int             `json:"stepCount"`
}

func (g *Game) Snapshot() Snapshot {
	b := g.Board.Clone()
	return Snapshot{
		BoardSize:   b.BoardSize,
		Lines:       b.Lines,
		Boxes:       b.Boxes,
		FirstScore:  g.FirstScore,
		SecondScore: g.SecondScore,
		NowPlayer:   g.NowPlayer,
		Opponent:    g.Opponent,
		Terminal:    g.terminal,
		Outcome:     g.outcome,
		Locked:      g.locked,
		CanUndo:     g.history.CanUndo(),
		CanRedo:     g.history.CanRedo(),
		StepCount:   len(b.Lines),
	}
}

// Board rebuilds a board from the snapshot.
func (s Snapshot) Board() Board {
	return Board{BoardSize: s.BoardSize, Lines: s.Lines, Boxes: s.Boxes}.Clone()
}
