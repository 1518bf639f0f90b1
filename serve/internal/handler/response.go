package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/session"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/logic"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/types"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, logic.ErrBadRequest), errors.Is(err, chess.ErrInvalidBoardSize):
		return http.StatusBadRequest
	case errors.Is(err, svc.ErrSessionNotFound), errors.Is(err, session.ErrClosed):
		return http.StatusNotFound
	case errors.Is(err, chess.ErrLocked):
		return http.StatusConflict
	case errors.Is(err, svc.ErrTooManySessions):
		return http.StatusTooManyRequests
	case errors.Is(err, logic.ErrNoEventsStore):
		return http.StatusNotImplemented
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		logx.WithContext(c.Request.Context()).Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(code, types.ErrorResponse{Error: err.Error()})
}

func gameID(c *gin.Context) (message.GameUid, bool) {
	id, err := message.ParseGameUid(c.Param("id"))
	if err != nil {
		fail(c, svc.ErrSessionNotFound)
		return "", false
	}
	return id, true
}
