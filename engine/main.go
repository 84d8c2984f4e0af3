package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/sim/pkg/analysis"
	"github.com/HuXin0817/sim/pkg/assess"
	"github.com/HuXin0817/sim/pkg/pprof"
)

var configFile = flag.String("f", "etc/engine.yaml", "the config file")

func main() {
	flag.Parse()

	var c Config
	conf.MustLoad(*configFile, &c)
	logx.MustSetup(c.Log)
	defer logx.Close()

	pprof.Start(c.Pprof)

	queue := analysis.NewQueue(redis.MustNewRedis(c.Redis))
	queue.ResultExpire = c.ResultExpire
	queue.OwnerExpire = c.OwnerExpire

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, queue, assess.NewEngine()); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, queue *analysis.Queue, engine *assess.Engine) error {
	for {
		partition, err := queue.ClaimPartition(ctx)
		if err != nil {
			return err
		}

		n, err := queue.Work(ctx, partition, engine)
		if err != nil {
			return err
		}
		logx.Infof("partition %d drained, %d positions solved", partition, n)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
}
