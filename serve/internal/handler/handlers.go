package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/model"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/logic"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/svc"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/types"
)

func CreateGameHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateGameRequest
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				fail(c, fmt.Errorf("%w: %v", logic.ErrBadRequest, err))
				return
			}
		}

		resp, err := logic.NewCreateGameLogic(c.Request.Context(), svcCtx).CreateGame(&req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

func GetGameHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := gameID(c)
		if !ok {
			return
		}

		resp, err := logic.NewGetGameLogic(c.Request.Context(), svcCtx).GetGame(id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func BoardHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := gameID(c)
		if !ok {
			return
		}

		colors := model.NewConfig(c.DefaultQuery("color", "off"))
		board, err := logic.NewGetGameLogic(c.Request.Context(), svcCtx).Board(id, bool(colors))
		if err != nil {
			fail(c, err)
			return
		}
		c.String(http.StatusOK, board)
	}
}

func EventsHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := gameID(c)
		if !ok {
			return
		}

		resp, err := logic.NewGetGameLogic(c.Request.Context(), svcCtx).Events(id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func MoveHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := gameID(c)
		if !ok {
			return
		}

		var req types.MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, fmt.Errorf("%w: %v", logic.ErrBadRequest, err))
			return
		}

		resp, err := logic.NewMoveLogic(c.Request.Context(), svcCtx).Move(id, &req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func UndoHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := gameID(c)
		if !ok {
			return
		}

		resp, err := logic.NewMoveLogic(c.Request.Context(), svcCtx).Undo(id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func RedoHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := gameID(c)
		if !ok {
			return
		}

		resp, err := logic.NewMoveLogic(c.Request.Context(), svcCtx).Redo(id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func RestartHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := gameID(c)
		if !ok {
			return
		}

		var req types.RestartRequest
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				fail(c, fmt.Errorf("%w: %v", logic.ErrBadRequest, err))
				return
			}
		}

		resp, err := logic.NewMoveLogic(c.Request.Context(), svcCtx).Restart(id, &req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func DeleteGameHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := gameID(c)
		if !ok {
			return
		}

		if err := logic.NewMoveLogic(c.Request.Context(), svcCtx).Delete(id); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
