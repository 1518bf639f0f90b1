package config

import (
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	Name        string `json:",default=dots-and-boxes"`
	Host        string `json:",default=0.0.0.0"`
	Port        int    `json:",default=8000"`
	Mode        string `json:",default=release,options=debug|release|test"`
	Log         logx.LogConf
	Pprof       bool `json:",optional"`
	MaxSessions int  `json:",default=1024"`
	Game        GameConf
	RecordDir   string          `json:",optional"`
	Redis       redis.RedisConf `json:",optional"`
	MongoConf   MongoConf       `json:",optional"`
}

// GameConf holds the defaults for new sessions. Requests may override size,
// opponent and difficulty.
type GameConf struct {
	BoardSize     int           `json:",default=5"`
	Opponent      string        `json:",default=automated,options=none|human|automated"`
	Difficulty    string        `json:",default=medium,options=easy|medium|hard"`
	OpponentDelay time.Duration `json:",default=500ms"`
	TimeLimit     time.Duration `json:",optional"`
	TickInterval  time.Duration `json:",default=1s"`
	HonorLock     bool          `json:",optional"`
	UndoScoring   string        `json:",default=turn,options=turn|record"`
}

type MongoConf struct {
	Url          string `json:",optional"`
	DataBaseName string `json:",default=dots_and_boxes"`
}
