package assess

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

func playIDs(t *testing.T, g *chess.Game, ids ...string) {
	t.Helper()
	for _, id := range ids {
		l, err := chess.ParseLine(id)
		require.NoError(t, err)
		_, err = g.Play(l)
		require.NoError(t, err)
	}
}

func TestBestLineTakesFirstFreeLineOnEmptyBoard(t *testing.T) {
	l, ok := BestLine(chess.NewBoard(3))
	require.True(t, ok)
	assert.Equal(t, chess.HorizontalLine(0, 0), l)

	_, ok = BestLine(chess.Board{BoardSize: 1, Lines: map[chess.Line]chess.Player{
		chess.HorizontalLine(0, 0): chess.First,
		chess.HorizontalLine(1, 0): chess.First,
		chess.VerticalLine(0, 0):   chess.First,
		chess.VerticalLine(0, 1):   chess.First,
	}})
	assert.False(t, ok)
}

func TestBestLinePrefersDoubleCompletion(t *testing.T) {
	b := chess.NewBoard(2)
	// Box (0,0) waits on the very first line; boxes (1,0) and (1,1) both wait
	// on the vertical line between them, which comes later in the order.
	for _, l := range []chess.Line{
		chess.HorizontalLine(1, 0), chess.VerticalLine(0, 0), chess.VerticalLine(0, 1),
		chess.HorizontalLine(2, 0), chess.VerticalLine(1, 0),
		chess.HorizontalLine(1, 1), chess.HorizontalLine(2, 1), chess.VerticalLine(1, 2),
	} {
		require.Empty(t, b.Draw(l, chess.First))
	}

	assert.Equal(t, 1, Move{Board: b, Line: chess.HorizontalLine(0, 0)}.Score())
	l, ok := BestLine(b)
	require.True(t, ok)
	assert.Equal(t, chess.VerticalLine(1, 1), l)
	assert.Equal(t, 2, Move{Board: b, Line: l}.Score())
}

func TestBestLineBreaksTiesByEnumerationOrder(t *testing.T) {
	b := chess.NewBoard(2)
	// Box (1,1) needs its bottom line, box (0,0) needs its top line.
	for _, l := range []chess.Line{
		chess.HorizontalLine(1, 0), chess.VerticalLine(0, 0), chess.VerticalLine(0, 1),
		chess.HorizontalLine(1, 1), chess.VerticalLine(1, 1), chess.VerticalLine(1, 2),
	} {
		b.Draw(l, chess.First)
	}

	l, ok := BestLine(b)
	require.True(t, ok)
	assert.Equal(t, chess.HorizontalLine(0, 0), l)
}

func TestBestLineDoesNotMutateBoard(t *testing.T) {
	g, err := chess.NewGame(2, chess.HumanOpponent)
	require.NoError(t, err)
	playIDs(t, g, "0,0,0", "0,1,0", "1,0,0")
	before := g.Snapshot()

	_, ok := BestLine(g.Board)
	require.True(t, ok)
	assert.Equal(t, before, g.Snapshot())
}

func TestOpponentNeverPicksDrawnLineAndMaximises(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 30; round++ {
		n := 1 + r.Intn(4)
		g, err := chess.NewGame(n, chess.HumanOpponent)
		require.NoError(t, err)

		free := append([]chess.Line(nil), chess.Lines(n)...)
		r.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
		for _, l := range free[:r.Intn(len(free))] {
			_, err := g.Play(l)
			require.NoError(t, err)
		}

		best, ok := BestLine(g.Board)
		require.True(t, ok)
		require.False(t, g.Contains(best))

		bestScore := Move{Board: g.Board, Line: best}.Score()
		for _, m := range NextMoves(g.Board) {
			require.LessOrEqual(t, m.Score(), bestScore)
		}
	}
}

func TestOpponentPlayContinuesAfterCompletingBoxes(t *testing.T) {
	g, err := chess.NewGame(2, chess.AutomatedOpponent)
	require.NoError(t, err)
	// First leaves box (0,0) open for Second on the last move.
	playIDs(t, g, "0,0,0", "0,1,0", "1,0,0")
	require.Equal(t, chess.Second, g.Current())

	results, err := NewOpponent(Hard).Play(g)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(results), 2)
	assert.Equal(t, 1, results[0].BoxesCompleted)
	assert.Equal(t, chess.Second, results[0].NextPlayer)
	last := results[len(results)-1]
	assert.True(t, last.Terminal || last.NextPlayer == chess.First)
	for _, res := range results[:len(results)-1] {
		assert.Positive(t, res.BoxesCompleted)
	}
}

func TestOpponentMoveOnFullBoard(t *testing.T) {
	g, err := chess.NewGame(1, chess.HumanOpponent)
	require.NoError(t, err)
	for _, l := range chess.Lines(1) {
		_, err := g.Play(l)
		require.NoError(t, err)
	}
	_, err = NewOpponent(Easy).Move(g)
	assert.ErrorIs(t, err, ErrNoMove)
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]Difficulty{"": Medium, "EASY": Easy, " hard ": Hard, "medium": Medium} {
		d, err := ParseDifficulty(in)
		require.NoError(t, err)
		assert.Equal(t, want, d)
	}
	_, err := ParseDifficulty("impossible")
	assert.Error(t, err)
}
