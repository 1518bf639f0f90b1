package ui

import (
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

const (
	dotCell        = "+"
	horizontalCell = "---"
	verticalCell   = "|"
	emptyLineCell  = "   "
	emptyEdgeCell  = " "
)

// Renderer draws a board as text, one dot row and one box row at a time.
type Renderer struct {
	au aurora.Aurora
}

func NewRenderer(colors bool) *Renderer {
	return &Renderer{au: aurora.NewAurora(colors)}
}

func (r *Renderer) paint(p chess.Player, s string) string {
	switch p {
	case chess.First:
		return r.au.Red(s).String()
	case chess.Second:
		return r.au.Blue(s).String()
	}
	return s
}

func (r *Renderer) boxCell(p chess.Player) string {
	switch p {
	case chess.First:
		return r.au.Bold(r.au.Red(" R ")).String()
	case chess.Second:
		return r.au.Bold(r.au.Blue(" B ")).String()
	}
	return emptyLineCell
}

func (r *Renderer) Render(b chess.Board) string {
	var sb strings.Builder
	n := b.BoardSize

	for row := 0; row <= n; row++ {
		sb.WriteString(dotCell)
		for col := range n {
			if owner, ok := b.Lines[chess.HorizontalLine(row, col)]; ok {
				sb.WriteString(r.paint(owner, horizontalCell))
			} else {
				sb.WriteString(emptyLineCell)
			}
			sb.WriteString(dotCell)
		}
		sb.WriteByte('\n')

		if row == n {
			break
		}

		for col := 0; col <= n; col++ {
			if owner, ok := b.Lines[chess.VerticalLine(row, col)]; ok {
				sb.WriteString(r.paint(owner, verticalCell))
			} else {
				sb.WriteString(emptyEdgeCell)
			}
			if col < n {
				sb.WriteString(r.boxCell(b.BoxOwner(chess.Box{Row: row, Col: col})))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// RenderSnapshot draws the board followed by the score line.
func (r *Renderer) RenderSnapshot(s chess.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(r.Render(s.Board()))
	sb.WriteString(r.Score(s.FirstScore, s.SecondScore))
	sb.WriteByte('\n')
	if s.Terminal {
		sb.WriteString(s.Outcome.Message())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) Score(first, second int) string {
	var sb strings.Builder
	sb.WriteString(r.au.Red("Red ").String())
	sb.WriteString(strconv.Itoa(first))
	sb.WriteString(" - ")
	sb.WriteString(strconv.Itoa(second))
	sb.WriteString(r.au.Blue(" Blue").String())
	return sb.String()
}
