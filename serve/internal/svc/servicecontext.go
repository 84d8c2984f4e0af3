package svc

import (
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/sim/pkg/analysis"
	"github.com/HuXin0817/sim/pkg/assess"
	"github.com/HuXin0817/sim/pkg/recorder"
	"github.com/HuXin0817/sim/serve/internal/config"
)

type ServiceContext struct {
	Config config.Config
	Engine *assess.Engine
	// Queue, Store and Recorder are nil when redis or mongo is not configured.
	Queue    *analysis.Queue
	Store    recorder.Store
	Recorder *recorder.Recorder
}

func NewServiceContext(c config.Config) *ServiceContext {
	svcCtx := &ServiceContext{
		Config: c,
		Engine: assess.NewEngine(assess.WithOpeningPlies(c.OpeningPlies)),
	}

	if c.Redis.Host != "" {
		svcCtx.Queue = analysis.NewQueue(redis.MustNewRedis(c.Redis))
	}

	if c.MongoConf.Url != "" {
		svcCtx.Store = recorder.NewMongoStore(c.MongoConf.Url, c.MongoConf.DataBaseName)
		svcCtx.Recorder = recorder.NewRecorder(svcCtx.Store, recorder.DefaultPushInterval)
	}

	return svcCtx
}

func (s *ServiceContext) Close() {
	if s.Recorder != nil {
		s.Recorder.Close()
	}
}
