package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/sim/pkg/models/message"
	"github.com/HuXin0817/sim/serve/internal/logic"
	"github.com/HuXin0817/sim/serve/internal/svc"
	"github.com/HuXin0817/sim/serve/internal/types"
)

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func FindMoveHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req message.MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, http.StatusBadRequest, err)
			return
		}

		l := logic.NewFindMoveLogic(c.Request.Context(), svcCtx)
		resp, err := l.FindMove(&req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func EnqueueAnalysisHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.AnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, http.StatusBadRequest, err)
			return
		}

		l := logic.NewAnalysisLogic(c.Request.Context(), svcCtx)
		resp, err := l.Enqueue(&req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusAccepted, resp)
	}
}

func AnalysisResultHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		step, err := strconv.Atoi(c.Param("step"))
		if err != nil {
			writeError(c, http.StatusBadRequest, err)
			return
		}

		l := logic.NewAnalysisLogic(c.Request.Context(), svcCtx)
		resp, err := l.Result(c.Param("uid"), step)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func RecordGameHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.GameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, http.StatusBadRequest, err)
			return
		}

		l := logic.NewRecordGameLogic(c.Request.Context(), svcCtx)
		resp, err := l.RecordGame(&req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

func GameMovesHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		l := logic.NewRecordGameLogic(c.Request.Context(), svcCtx)
		resp, err := l.GameMoves(c.Param("uid"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, logic.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err)
	case errors.Is(err, logic.ErrNotFound):
		writeError(c, http.StatusNotFound, err)
	case errors.Is(err, logic.ErrUnavailable):
		writeError(c, http.StatusServiceUnavailable, err)
	default:
		logx.WithContext(c.Request.Context()).Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		writeError(c, http.StatusInternalServerError, err)
	}
}

func writeError(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(code, types.ErrorResponse{Error: err.Error()})
}
