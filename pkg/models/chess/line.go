package chess

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

type Orientation int8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Line is a single edge between two neighbouring dots. Row and Col are the
// position of the line in the dot grid: a horizontal line (r, c) runs from dot
// (r, c) to dot (r, c+1), a vertical line (r, c) runs from dot (r, c) to dot
// (r+1, c).
type Line struct {
	Orientation Orientation
	Row         int
	Col         int
}

// NewLine builds a line from its id coordinates. Horizontal ids carry
// (row, col); vertical ids carry (col, row).
func NewLine(o Orientation, a, b int) Line {
	if o == Vertical {
		return Line{Orientation: Vertical, Row: b, Col: a}
	}
	return Line{Orientation: Horizontal, Row: a, Col: b}
}

func HorizontalLine(row, col int) Line {
	return Line{Orientation: Horizontal, Row: row, Col: col}
}

func VerticalLine(row, col int) Line {
	return Line{Orientation: Vertical, Row: row, Col: col}
}

// ParseLine reads an id of the form "o,a,b".
func ParseLine(s string) (Line, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 3 {
		return Line{}, fmt.Errorf("%w: %q", ErrInvalidLine, s)
	}

	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Line{}, fmt.Errorf("%w: %q", ErrInvalidLine, s)
		}
		v[i] = n
	}

	switch Orientation(v[0]) {
	case Horizontal, Vertical:
		return NewLine(Orientation(v[0]), v[1], v[2]), nil
	}
	return Line{}, fmt.Errorf("%w: %q", ErrInvalidLine, s)
}

// String returns the id of the line, the inverse of ParseLine.
func (l Line) String() string {
	if l.Orientation == Vertical {
		return fmt.Sprintf("%d,%d,%d", Vertical, l.Col, l.Row)
	}
	return fmt.Sprintf("%d,%d,%d", Horizontal, l.Row, l.Col)
}

func (l Line) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *Line) UnmarshalText(text []byte) (err error) {
	*l, err = ParseLine(string(text))
	return
}

func (l Line) Valid(boardSize int) bool {
	if l.Row < 0 || l.Col < 0 {
		return false
	}

	switch l.Orientation {
	case Horizontal:
		return l.Row <= boardSize && l.Col < boardSize
	case Vertical:
		return l.Row < boardSize && l.Col <= boardSize
	}
	return false
}

// AdjacentBoxes returns the one or two boxes bounded by the line.
func (l Line) AdjacentBoxes(boardSize int) (boxes []Box) {
	var candidates [2]Box
	if l.Orientation == Horizontal {
		candidates = [2]Box{{Row: l.Row, Col: l.Col}, {Row: l.Row - 1, Col: l.Col}}
	} else {
		candidates = [2]Box{{Row: l.Row, Col: l.Col}, {Row: l.Row, Col: l.Col - 1}}
	}

	for _, box := range candidates {
		if box.Valid(boardSize) {
			boxes = append(boxes, box)
		}
	}
	return
}

// LineCount is the number of lines on a board of the given size.
func LineCount(boardSize int) int {
	return 2 * boardSize * (boardSize + 1)
}

var (
	linesMu  sync.Mutex
	linesMap = make(map[int][]Line)
)

// Lines lists every line of the board in reading order: the horizontal lines
// of each dot row followed by the vertical lines hanging below it. The
// returned slice is shared and must not be modified.
func Lines(boardSize int) []Line {
	linesMu.Lock()
	defer linesMu.Unlock()

	if res, c := linesMap[boardSize]; c {
		return res
	}

	lines := make([]Line, 0, LineCount(boardSize))
	for r := 0; r <= boardSize; r++ {
		for c := range boardSize {
			lines = append(lines, HorizontalLine(r, c))
		}

		if r == boardSize {
			break
		}

		for c := 0; c <= boardSize; c++ {
			lines = append(lines, VerticalLine(r, c))
		}
	}

	linesMap[boardSize] = lines
	return lines
}
