package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"

	"github.com/HuXin0817/sim/pkg/analysis"
	"github.com/HuXin0817/sim/pkg/assess"
	"github.com/HuXin0817/sim/pkg/models/message"
	"github.com/HuXin0817/sim/pkg/models/message/moverecord"
	"github.com/HuXin0817/sim/pkg/recorder"
	"github.com/HuXin0817/sim/serve/internal/svc"
	"github.com/HuXin0817/sim/serve/internal/types"
)

func TestMain(m *testing.M) {
	logx.Disable()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type memoryStore struct {
	sync.Mutex
	starts, ends int
	moves        []*moverecord.MoveRecord
}

func (s *memoryStore) InsertStart(context.Context, *moverecord.GameStartRecord) error {
	s.Lock()
	defer s.Unlock()
	s.starts++
	return nil
}

func (s *memoryStore) InsertMoves(_ context.Context, records []*moverecord.MoveRecord) error {
	s.Lock()
	defer s.Unlock()
	s.moves = append(s.moves, records...)
	return nil
}

func (s *memoryStore) InsertEnd(context.Context, *moverecord.GameEndRecord) error {
	s.Lock()
	defer s.Unlock()
	s.ends++
	return nil
}

func (s *memoryStore) FindMoves(_ context.Context, gameUid string) (moves []*moverecord.MoveRecord, _ error) {
	s.Lock()
	defer s.Unlock()
	for _, m := range s.moves {
		if m.GameUid == gameUid {
			moves = append(moves, m)
		}
	}
	return moves, nil
}

func newRouter(svcCtx *svc.ServiceContext) *gin.Engine {
	router := gin.New()
	RegisterHandlers(router, svcCtx)
	return router
}

func do(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		str, _ := sonic.MarshalString(body)
		buf.WriteString(str)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(newRouter(&svc.ServiceContext{}), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFindMove(t *testing.T) {
	router := newRouter(&svc.ServiceContext{Engine: assess.NewEngine()})

	w := do(router, http.MethodPost, "/v1/move", message.MoveRequest{State: "RRBRBBR.BBBR.R.", Color: "red"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp message.MoveResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint8(14), resp.Edge)
	assert.True(t, resp.Win)
}

func TestFindMoveRejectsBadPositions(t *testing.T) {
	router := newRouter(&svc.ServiceContext{Engine: assess.NewEngine()})

	tests := []struct {
		name string
		req  any
	}{
		{"malformed state", message.MoveRequest{State: "RRX", Color: "red"}},
		{"unknown color", message.MoveRequest{State: "RRBRBBR.BBBR.R.", Color: "green"}},
		{"no color", message.MoveRequest{State: "RRBRBBR.BBBR.R.", Color: "none"}},
		{"full board", message.MoveRequest{State: "BBRRRRBRRRBBBBR", Color: "red"}},
		{"game already lost", message.MoveRequest{State: "RR...R.........", Color: "blue"}},
		{"missing fields", map[string]string{"state": "..............."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, http.MethodPost, "/v1/move", tt.req)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestAnalysis(t *testing.T) {
	queue := analysis.NewQueue(redistest.CreateRedis(t))
	router := newRouter(&svc.ServiceContext{Engine: assess.NewEngine(), Queue: queue})
	uid := string(message.NewGameUid())

	w := do(router, http.MethodPost, "/v1/analysis", types.AnalysisRequest{
		GameUid: uid,
		State:   "RRBRBBR.BBBR.R.",
		Color:   "red",
	})
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	var queued types.AnalysisResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &queued))
	assert.Equal(t, uid, queued.GameUid)
	assert.Equal(t, 12, queued.Step)

	path := "/v1/analysis/" + uid + "/" + strconv.Itoa(queued.Step)
	w = do(router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := queue.Work(ctx, queued.Partition, assess.NewEngine())
	require.NoError(t, err)

	w = do(router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result types.AnalysisResultResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Win)
	assert.Equal(t, uint8(14), result.Edge)

	w = do(router, http.MethodGet, "/v1/analysis/not-a-uid/3", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalysisWithoutRedis(t *testing.T) {
	router := newRouter(&svc.ServiceContext{Engine: assess.NewEngine()})
	w := do(router, http.MethodPost, "/v1/analysis", types.AnalysisRequest{State: "...............", Color: "red"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRecordGame(t *testing.T) {
	store := &memoryStore{}
	rec := recorder.NewRecorder(store, time.Hour)
	defer rec.Close()
	router := newRouter(&svc.ServiceContext{Store: store, Recorder: rec})

	w := do(router, http.MethodPost, "/v1/games", types.GameRequest{Red: "a", Blue: "b", Moves: []int{0, 14, 1, 13, 5}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.GameResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Blue", resp.Winner)
	assert.True(t, resp.Recorded)

	w = do(router, http.MethodPost, "/v1/games", types.GameRequest{Moves: []int{0, 14}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodGet, "/v1/games/"+resp.GameUid, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var moves types.GameMovesResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &moves))
	require.Len(t, moves.Moves, 5)
	assert.Equal(t, 5, moves.Moves[4].Edge)
	assert.Equal(t, "Red", moves.Moves[4].Color)

	w = do(router, http.MethodGet, "/v1/games/"+string(message.NewGameUid()), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	store.Lock()
	defer store.Unlock()
	assert.Equal(t, 1, store.starts)
	assert.Equal(t, 1, store.ends)
}
