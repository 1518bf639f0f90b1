package message

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

func TestGameUid(t *testing.T) {
	uid := NewGameUid()
	parsed, err := ParseGameUid(uid.String())
	require.NoError(t, err)
	assert.Equal(t, uid, parsed)
	assert.Equal(t, "dots-and-boxes:game:"+uid.String(), uid.ListKey())
	assert.Equal(t, uid.ListKey()+":lock", uid.LockName())

	_, err = ParseGameUid("game-1")
	assert.Error(t, err)
}

func TestTimeStampKeepsMilliseconds(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 45, 123_000_000, time.Local)
	assert.Equal(t, now, NewTimeStamp(now).Time())
}

func TestEventEncodesBoardByLineId(t *testing.T) {
	g, err := chess.NewGame(1, chess.HumanOpponent)
	require.NoError(t, err)
	res, err := g.Play(chess.VerticalLine(0, 1))
	require.NoError(t, err)

	e := NewEvent(MoveApplied, NewGameUid()).WithResult(res).WithSnapshot(g.Snapshot())
	s := e.String()
	assert.Contains(t, s, `"1,1,0":"first"`)
	assert.Contains(t, s, `"type":"move_applied"`)

	parsed, err := ParseEvent(s)
	require.NoError(t, err)
	assert.Equal(t, e, parsed)
}
