package chess

import "errors"

var (
	ErrInvalidBoardSize = errors.New("board size out of range")
	ErrInvalidLine      = errors.New("invalid line")
	ErrInvalidPlayer    = errors.New("invalid player")
	ErrLineAlreadyOwned = errors.New("line already taken")
	ErrHistoryEmpty     = errors.New("nothing to undo or redo")
	ErrLocked           = errors.New("game is locked")
)
