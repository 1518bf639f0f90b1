package logic

import "errors"

var (
	ErrBadRequest    = errors.New("bad request")
	ErrNoEventsStore = errors.New("event history needs redis")
)
