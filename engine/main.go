package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/logrusorgru/aurora"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/model"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/ui"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/pprof"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/record"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/session"
)

func main() {
	c := loadConfig()
	logx.MustSetup(c.Log)
	defer logx.Close()

	if srv := pprof.Serve(c.Pprof); srv != nil {
		defer srv.Close()
	}

	opts, err := sessionOptions(c)
	logx.Must(err)

	recorders, err := newRecorders(c)
	logx.Must(err)
	defer recorders.Close()

	var listeners []session.Listener
	if len(recorders) > 0 {
		listeners = append(listeners, record.Listener(recorders))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bar := model.NewBar(c.Games, fmt.Sprintf("self-play %dx%d", c.BoardSize, c.BoardSize))
	summary := Run(ctx, c.Games, c.Workers, opts, bar, listeners...)
	bar.Close()

	fmt.Println()
	printSummary(summary, bool(colorFlag), bool(showBoard))
}

func sessionOptions(c Config) (session.Options, error) {
	opts := session.DefaultOptions()
	opts.Size = c.BoardSize

	var err error
	if opts.Difficulty, err = assess.ParseDifficulty(c.Difficulty); err != nil {
		return opts, err
	}
	if opts.UndoScoring, err = chess.ParseUndoScoring(c.UndoScoring); err != nil {
		return opts, err
	}
	return opts, nil
}

func newRecorders(c Config) (record.Multi, error) {
	var recorders record.Multi
	if c.RecordDir != "" {
		r, err := record.NewLogRecorder(c.RecordDir)
		if err != nil {
			return nil, err
		}
		recorders = append(recorders, r)
	}
	if c.Redis.Host != "" {
		rds, err := redis.NewRedis(c.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		recorders = append(recorders, record.NewRedisRecorder(rds))
	}
	return recorders, nil
}

func printSummary(s Summary, colors, board bool) {
	au := aurora.NewAurora(colors)
	fmt.Printf("%s %d  %s %d  %s %d  %s %d\n",
		au.Red("Red wins:"), s.FirstWins,
		au.Blue("Blue wins:"), s.SecondWins,
		au.Yellow("Draws:"), s.Draws,
		au.Gray(12, "Failed:"), s.Failed,
	)

	if board && s.Games > 0 {
		fmt.Print(ui.NewRenderer(colors).RenderSnapshot(s.Last))
	}
}
