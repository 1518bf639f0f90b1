package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/config"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/handler"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/svc"
)

var (
	configFile = flag.String("f", "etc/serve.yaml", "the config file")
	serveAddr  = flag.String("h", "", "the serve address, overrides Host and Port")
)

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	logx.MustSetup(c.Log)
	defer logx.Close()

	gin.SetMode(c.Mode)

	ctx, err := svc.NewServiceContext(c)
	if err != nil {
		logx.Must(err)
	}
	defer ctx.Close()

	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterHandlers(router, ctx)

	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)
	if *serveAddr != "" {
		addr = *serveAddr
	}
	srv := &http.Server{Addr: addr, Handler: router}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		fmt.Printf("Starting http server at %s...\n", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Must(err)
		}
	}()

	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Errorf("shutdown: %v", err)
	}
}
