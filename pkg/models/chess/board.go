package chess

// Board holds who drew each line and who owns each completed box. Absent keys
// are unowned.
type Board struct {
	BoardSize int
	Lines     map[Line]Player
	Boxes     map[Box]Player
}

func NewBoard(boardSize int) Board {
	return Board{
		BoardSize: boardSize,
		Lines:     make(map[Line]Player),
		Boxes:     make(map[Box]Player),
	}
}

func (b Board) Contains(l Line) bool {
	_, c := b.Lines[l]
	return c
}

func (b Board) Owner(l Line) Player { return b.Lines[l] }

func (b Board) BoxOwner(box Box) Player { return b.Boxes[box] }

// LinesCountInBox counts the drawn lines around the box.
func (b Board) LinesCountInBox(box Box) (count int) {
	for _, l := range box.Lines() {
		if b.Contains(l) {
			count++
		}
	}
	return
}

func (b Board) FreeLinesCount() int {
	return LineCount(b.BoardSize) - len(b.Lines)
}

// FreeLines lists the undrawn lines in the order of Lines.
func (b Board) FreeLines() (freeLines []Line) {
	for _, l := range Lines(b.BoardSize) {
		if !b.Contains(l) {
			freeLines = append(freeLines, l)
		}
	}
	return
}

// CompletedBoxes counts boxes whose four lines are all drawn.
func (b Board) CompletedBoxes() (count int) {
	for _, box := range Boxes(b.BoardSize) {
		if b.LinesCountInBox(box) == 4 {
			count++
		}
	}
	return
}

func (b Board) Clone() Board {
	newBoard := NewBoard(b.BoardSize)
	for l, p := range b.Lines {
		newBoard.Lines[l] = p
	}
	for box, p := range b.Boxes {
		newBoard.Boxes[box] = p
	}
	return newBoard
}

// ObtainsBoxes reports the boxes that drawing l would complete, without
// touching the board. A box counts when its other three lines are drawn and it
// has no owner yet. A line that is already drawn completes nothing.
func (b Board) ObtainsBoxes(l Line) (obtainsBoxes []Box) {
	if b.Contains(l) {
		return
	}

	for _, box := range l.AdjacentBoxes(b.BoardSize) {
		if _, owned := b.Boxes[box]; owned {
			continue
		}
		if b.LinesCountInBox(box) == 3 {
			obtainsBoxes = append(obtainsBoxes, box)
		}
	}
	return
}

// Draw marks l as drawn by p and hands p every box it completes. It shares
// the completion rule with ObtainsBoxes.
func (b Board) Draw(l Line, p Player) []Box {
	boxes := b.ObtainsBoxes(l)
	b.Lines[l] = p
	for _, box := range boxes {
		b.Boxes[box] = p
	}
	return boxes
}

// Erase removes l and clears the owner of every box it bounds. It is only
// correct for the most recently drawn line, which is the one that completed
// those boxes.
func (b Board) Erase(l Line) (boxes []Box) {
	delete(b.Lines, l)
	for _, box := range l.AdjacentBoxes(b.BoardSize) {
		if _, owned := b.Boxes[box]; owned {
			delete(b.Boxes, box)
			boxes = append(boxes, box)
		}
	}
	return
}
