package message

import (
	"fmt"

	"github.com/google/uuid"
)

type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

// ParseGameUid accepts only ids produced by NewGameUid.
func ParseGameUid(s string) (GameUid, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid game uid %q: %w", s, err)
	}
	return GameUid(id.String()), nil
}

func (u GameUid) String() string { return string(u) }

// ListKey is the redis list holding the game's event log.
func (u GameUid) ListKey() string {
	return fmt.Sprintf("dots-and-boxes:game:%s", u)
}

// LockName guards writes to ListKey.
func (u GameUid) LockName() string {
	return fmt.Sprintf("dots-and-boxes:game:%s:lock", u)
}
