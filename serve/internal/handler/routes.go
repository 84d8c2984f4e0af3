package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/sim/serve/internal/svc"
)

func RegisterHandlers(router *gin.Engine, svcCtx *svc.ServiceContext) {
	router.Use(accessLog)

	router.GET("/healthz", healthHandler)

	v1 := router.Group("/v1")
	v1.POST("/move", FindMoveHandler(svcCtx))
	v1.POST("/analysis", EnqueueAnalysisHandler(svcCtx))
	v1.GET("/analysis/:uid/:step", AnalysisResultHandler(svcCtx))
	v1.POST("/games", RecordGameHandler(svcCtx))
	v1.GET("/games/:uid", GameMovesHandler(svcCtx))
}

func accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()

	logx.WithContext(c.Request.Context()).
		WithDuration(time.Since(start)).
		Infof("%s %s %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
}
