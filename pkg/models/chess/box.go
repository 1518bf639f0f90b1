package chess

import (
	"fmt"
	"sync"
)

type Box struct {
	Row int
	Col int
}

// Lines returns the four lines bounding the box: top, bottom, left, right.
func (b Box) Lines() [4]Line {
	return [...]Line{
		HorizontalLine(b.Row, b.Col),
		HorizontalLine(b.Row+1, b.Col),
		VerticalLine(b.Row, b.Col),
		VerticalLine(b.Row, b.Col+1),
	}
}

func (b Box) Valid(boardSize int) bool {
	return b.Row >= 0 && b.Col >= 0 && b.Row < boardSize && b.Col < boardSize
}

func (b Box) String() string { return fmt.Sprintf("%d,%d", b.Row, b.Col) }

func (b Box) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *Box) UnmarshalText(text []byte) error {
	if _, err := fmt.Sscanf(string(text), "%d,%d", &b.Row, &b.Col); err != nil {
		return fmt.Errorf("invalid box %q: %w", text, err)
	}
	return nil
}

var (
	boxesMu  sync.Mutex
	boxesMap = make(map[int][]Box)
)

// Boxes lists every box of the board row by row. The returned slice is shared
// and must not be modified.
func Boxes(boardSize int) []Box {
	boxesMu.Lock()
	defer boxesMu.Unlock()

	if res, c := boxesMap[boardSize]; c {
		return res
	}

	boxes := make([]Box, 0, boardSize*boardSize)
	for r := range boardSize {
		for c := range boardSize {
			boxes = append(boxes, Box{Row: r, Col: c})
		}
	}

	boxesMap[boardSize] = boxes
	return boxes
}
