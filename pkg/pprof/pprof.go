package pprof

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"
)

// Register mounts the profiling handlers under /debug/pprof.
func Register(router *gin.Engine) {
	pprof.Register(router)
}

// Serve starts a profiling-only listener on addr in the background. An empty
// addr disables it. The returned server can be shut down by the caller.
func Serve(addr string) *http.Server {
	if addr == "" {
		return nil
	}

	router := gin.New()
	router.Use(gin.Recovery())
	Register(router)

	srv := &http.Server{Addr: addr, Handler: router}
	threading.GoSafe(func() {
		logx.Infof("pprof listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Errorf("pprof server: %v", err)
		}
	})
	return srv
}
