package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObtainsBoxesDoesNotTouchTheBoard(t *testing.T) {
	b := NewBoard(2)
	b.Draw(HorizontalLine(0, 0), First)
	b.Draw(HorizontalLine(1, 0), Second)
	b.Draw(VerticalLine(0, 0), First)

	before := b.Clone()
	assert.Equal(t, []Box{{0, 0}}, b.ObtainsBoxes(VerticalLine(0, 1)))
	assert.Equal(t, before, b)
	assert.Empty(t, b.ObtainsBoxes(HorizontalLine(0, 0)), "drawn line completes nothing")
}

func TestDrawCompletesTwoBoxes(t *testing.T) {
	b := NewBoard(2)
	for _, l := range []Line{
		HorizontalLine(0, 0), HorizontalLine(1, 0), VerticalLine(0, 0),
		HorizontalLine(0, 1), HorizontalLine(1, 1), VerticalLine(0, 2),
	} {
		assert.Empty(t, b.Draw(l, First))
	}

	boxes := b.Draw(VerticalLine(0, 1), Second)
	assert.ElementsMatch(t, []Box{{0, 0}, {0, 1}}, boxes)
	assert.Equal(t, Second, b.BoxOwner(Box{0, 0}))
	assert.Equal(t, Second, b.BoxOwner(Box{0, 1}))
	assert.Equal(t, 2, b.CompletedBoxes())
}

func TestEraseRevertsCompletedBoxes(t *testing.T) {
	b := NewBoard(1)
	for _, l := range Lines(1) {
		b.Draw(l, Second)
	}
	assert.Equal(t, Second, b.BoxOwner(Box{0, 0}))

	boxes := b.Erase(HorizontalLine(1, 0))
	assert.Equal(t, []Box{{0, 0}}, boxes)
	assert.Equal(t, None, b.BoxOwner(Box{0, 0}))
	assert.False(t, b.Contains(HorizontalLine(1, 0)))
	assert.Equal(t, 1, b.FreeLinesCount())
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard(3)
	b.Draw(HorizontalLine(0, 0), First)
	c := b.Clone()
	c.Draw(HorizontalLine(0, 1), Second)

	assert.False(t, b.Contains(HorizontalLine(0, 1)))
	assert.Len(t, b.FreeLines(), LineCount(3)-1)
	assert.Len(t, c.FreeLines(), LineCount(3)-2)
}
