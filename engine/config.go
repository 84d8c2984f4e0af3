package main

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	Log          logx.LogConf
	Redis        redis.RedisConf
	Pprof        string `json:",optional"`
	ResultExpire int    `json:",default=600"` // second
	OwnerExpire  int    `json:",default=180"` // second
}
