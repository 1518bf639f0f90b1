package chess

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, id string) Line {
	t.Helper()
	l, err := ParseLine(id)
	require.NoError(t, err)
	return l
}

func newTestGame(t *testing.T, size int, options ...Option) *Game {
	t.Helper()
	g, err := NewGame(size, HumanOpponent, options...)
	require.NoError(t, err)
	return g
}

func TestNewGameRejectsBadSizes(t *testing.T) {
	for _, n := range []int{0, -1, MaxBoardSize + 1} {
		_, err := NewGame(n, HumanOpponent)
		assert.ErrorIs(t, err, ErrInvalidBoardSize)
	}

	g := newTestGame(t, DefaultBoardSize)
	assert.Equal(t, First, g.Current())
	assert.False(t, g.IsGameOver())
	assert.Equal(t, Undecided, g.Outcome())
}

func TestTwoByTwoOpeningKeepsTurnAfterCompletingBox(t *testing.T) {
	g := newTestGame(t, 2)

	steps := []struct {
		id     string
		player Player
		next   Player
	}{
		{"0,0,0", First, Second},
		{"0,1,0", Second, First},
		{"1,0,0", First, Second},
		{"1,0,1", Second, First},
	}
	for _, s := range steps {
		require.Equal(t, s.player, g.Current())
		res, err := g.Play(mustLine(t, s.id))
		require.NoError(t, err)
		assert.Zero(t, res.BoxesCompleted, s.id)
		assert.Equal(t, s.next, res.NextPlayer, s.id)
	}

	res, err := g.Play(mustLine(t, "1,1,0"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.BoxesCompleted)
	assert.Equal(t, []BoxUpdate{{Box: Box{0, 0}, Owner: First}}, res.BoxUpdates)
	assert.Equal(t, First, res.NextPlayer)
	assert.Equal(t, First, g.Current())
	first, second := g.Score()
	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
	assert.False(t, res.Terminal)
}

func TestSingleBoxGameEndsWithWinner(t *testing.T) {
	g := newTestGame(t, 1)

	var res MoveResult
	for _, l := range Lines(1) {
		var err error
		res, err = g.Play(l)
		require.NoError(t, err)
	}

	assert.True(t, res.Terminal)
	assert.True(t, g.IsGameOver())
	assert.Equal(t, Second, g.BoxOwner(Box{0, 0}))
	assert.Equal(t, SecondWins, res.Outcome)
	assert.Equal(t, "Blue wins!", res.Outcome.Message())
	assert.Equal(t, 0, g.FirstScore)
	assert.Equal(t, 1, g.SecondScore)
}

func TestTwoByTwoDraw(t *testing.T) {
	g := newTestGame(t, 2)

	moves := []struct {
		id     string
		player Player
		boxes  int
	}{
		{"0,0,0", First, 0},
		{"0,1,0", Second, 0},
		{"1,0,0", First, 0},
		{"0,0,1", Second, 0},
		{"0,1,1", First, 0},
		{"1,2,0", Second, 0},
		{"1,1,0", First, 2},
		{"1,0,1", First, 0},
		{"1,1,1", Second, 0},
		{"1,2,1", First, 0},
		{"0,2,0", Second, 1},
		{"0,2,1", Second, 1},
	}

	var res MoveResult
	for _, m := range moves {
		require.Equal(t, m.player, g.Current(), m.id)
		var err error
		res, err = g.Play(mustLine(t, m.id))
		require.NoError(t, err, m.id)
		require.Equal(t, m.boxes, res.BoxesCompleted, m.id)
	}

	assert.True(t, res.Terminal)
	assert.Equal(t, Draw, res.Outcome)
	assert.Equal(t, "It's a draw!", g.Outcome().Message())
	assert.Equal(t, 2, g.FirstScore)
	assert.Equal(t, 2, g.SecondScore)
}

func TestSubmitRejectsWithoutChangingState(t *testing.T) {
	g := newTestGame(t, 2)
	_, err := g.Play(HorizontalLine(0, 0))
	require.NoError(t, err)
	before := g.Snapshot()

	_, err = g.Play(HorizontalLine(0, 0))
	assert.ErrorIs(t, err, ErrLineAlreadyOwned)

	_, err = g.Play(HorizontalLine(3, 0))
	assert.ErrorIs(t, err, ErrInvalidLine)

	_, err = g.Submit(HorizontalLine(1, 0), None)
	assert.ErrorIs(t, err, ErrInvalidPlayer)

	assert.Equal(t, before, g.Snapshot())
}

func TestLockOnlyBlocksWhenHonored(t *testing.T) {
	g := newTestGame(t, 2)
	g.Lock()
	_, err := g.Play(HorizontalLine(0, 0))
	assert.NoError(t, err)

	g = newTestGame(t, 2, WithHonorLock(true))
	g.Lock()
	_, err = g.Play(HorizontalLine(0, 0))
	assert.ErrorIs(t, err, ErrLocked)
}

func TestExpireDecidesOnCurrentScores(t *testing.T) {
	g := newTestGame(t, 2)
	for _, id := range []string{"0,0,0", "0,1,0", "1,0,0", "1,0,1", "1,1,0"} {
		_, err := g.Play(mustLine(t, id))
		require.NoError(t, err)
	}

	assert.Equal(t, FirstWins, g.Expire())
	assert.True(t, g.IsGameOver())
	assert.True(t, g.Locked())
	assert.True(t, g.Expired())
}

func TestOpponentTurnFlag(t *testing.T) {
	g, err := NewGame(2, AutomatedOpponent)
	require.NoError(t, err)

	res, err := g.Play(HorizontalLine(0, 0))
	require.NoError(t, err)
	assert.True(t, res.OpponentTurn)

	res, err = g.Play(HorizontalLine(2, 0))
	require.NoError(t, err)
	assert.False(t, res.OpponentTurn)
}

// Random games check the invariants that must hold after every move.
func TestRandomGamesKeepScoreAndTurnInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		n := 1 + r.Intn(5)
		g := newTestGame(t, n)

		free := append([]Line(nil), Lines(n)...)
		r.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

		for i, l := range free {
			before := g.Current()
			res, err := g.Play(l)
			require.NoError(t, err)

			if res.BoxesCompleted == 0 {
				require.Equal(t, before.Other(), g.Current())
			} else {
				require.Equal(t, before, g.Current())
			}
			require.LessOrEqual(t, res.BoxesCompleted, 2)
			require.Equal(t, g.CompletedBoxes(), g.FirstScore+g.SecondScore)
			require.LessOrEqual(t, g.FirstScore+g.SecondScore, n*n)
			require.Equal(t, i == len(free)-1, g.IsGameOver())
		}

		assert.Equal(t, n*n, g.FirstScore+g.SecondScore)
		assert.Equal(t, DecideOutcome(g.FirstScore, g.SecondScore), g.Outcome())
	}
}
