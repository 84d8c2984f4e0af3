package pprof

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

// Register mounts the pprof handlers under /debug/pprof on router.
func Register(router *gin.Engine) {
	pprof.Register(router)
}

// Start serves the pprof handlers on addr in the background. An empty addr
// disables profiling.
func Start(addr string) *http.Server {
	if addr == "" {
		return nil
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	Register(router)

	srv := &http.Server{Addr: addr, Handler: router}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Errorf("pprof listener on %s stopped: %v", addr, err)
		}
	}()

	logx.Infof("pprof listening on %s", addr)
	return srv
}
