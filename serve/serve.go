package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/sim/pkg/pprof"
	"github.com/HuXin0817/sim/serve/internal/config"
	"github.com/HuXin0817/sim/serve/internal/handler"
	"github.com/HuXin0817/sim/serve/internal/svc"
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

	ctx := svc.NewServiceContext(c)
	defer ctx.Close()

	pprof.Start(c.Pprof)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterHandlers(router, ctx)

	addr := *serveAddr
	if addr == "" {
		addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
	}

	fmt.Printf("Starting server at %s...\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalln(err)
	}
}
