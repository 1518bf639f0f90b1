package main

import (
	"flag"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/model"
)

type Config struct {
	Games       int    `json:",default=100"`
	BoardSize   int    `json:",default=5"`
	Difficulty  string `json:",default=medium,options=easy|medium|hard"`
	UndoScoring string `json:",default=turn,options=turn|record"`
	Workers     int    `json:",default=4"`
	Log         logx.LogConf
	// Pprof is the address of a side profiling server. Empty disables it.
	Pprof     string          `json:",optional"`
	RecordDir string          `json:",optional"`
	Redis     redis.RedisConf `json:",optional"`
}

var (
	configFile = flag.String("f", "etc/engine.yaml", "engine config file path")
	gamesFlag  = flag.Int("n", 0, "number of games, overrides Games")
	sizeFlag   = flag.Int("s", 0, "board size, overrides BoardSize")
	colorFlag  = model.On
	showBoard  = model.On
)

func init() {
	flag.Var(&colorFlag, "color", "colour output (on/off)")
	flag.Var(&showBoard, "board", "print the last board (on/off)")
}

func loadConfig() Config {
	flag.Parse()

	var c Config
	conf.MustLoad(*configFile, &c)
	if *gamesFlag > 0 {
		c.Games = *gamesFlag
	}
	if *sizeFlag > 0 {
		c.BoardSize = *sizeFlag
	}
	return c
}
