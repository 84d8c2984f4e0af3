package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	Name         string `json:",default=sim-serve"`
	Host         string `json:",default=0.0.0.0"`
	Port         int    `json:",default=8000"`
	Pprof        string `json:",optional"`
	OpeningPlies int    `json:",default=3"`
	Log          logx.LogConf
	Redis        redis.RedisConf `json:",optional"`
	MongoConf    struct {
		Url          string `json:",optional"`
		DataBaseName string `json:",default=sim"`
	}
}
