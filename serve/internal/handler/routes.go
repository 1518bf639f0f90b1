package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/pprof"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/svc"
)

func RegisterHandlers(router *gin.Engine, svcCtx *svc.ServiceContext) {
	games := router.Group("/games")
	games.POST("", CreateGameHandler(svcCtx))
	games.GET("/:id", GetGameHandler(svcCtx))
	games.GET("/:id/board", BoardHandler(svcCtx))
	games.GET("/:id/events", EventsHandler(svcCtx))
	games.POST("/:id/moves", MoveHandler(svcCtx))
	games.POST("/:id/undo", UndoHandler(svcCtx))
	games.POST("/:id/redo", RedoHandler(svcCtx))
	games.POST("/:id/restart", RestartHandler(svcCtx))
	games.DELETE("/:id", DeleteGameHandler(svcCtx))

	if svcCtx.Config.Pprof {
		pprof.Register(router)
	}
}
