package recorder_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/sim/pkg/models/message/moverecord"
	"github.com/HuXin0817/sim/pkg/player"
	"github.com/HuXin0817/sim/pkg/recorder"
	"github.com/HuXin0817/sim/pkg/runner"
)

func TestMain(m *testing.M) {
	logx.Disable()
	os.Exit(m.Run())
}

type memoryStore struct {
	mu     sync.Mutex
	starts []*moverecord.GameStartRecord
	moves  []*moverecord.MoveRecord
	ends   []*moverecord.GameEndRecord
}

func (s *memoryStore) InsertStart(_ context.Context, r *moverecord.GameStartRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.starts = append(s.starts, r)
	return nil
}

func (s *memoryStore) InsertMoves(_ context.Context, r []*moverecord.MoveRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moves = append(s.moves, r...)
	return nil
}

func (s *memoryStore) InsertEnd(_ context.Context, r *moverecord.GameEndRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ends = append(s.ends, r)
	return nil
}

func (s *memoryStore) FindMoves(_ context.Context, gameUid string) (moves []*moverecord.MoveRecord, _ error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.moves {
		if m.GameUid == gameUid {
			moves = append(moves, m)
		}
	}
	return moves, nil
}

func TestRecorderWritesWholeGame(t *testing.T) {
	store := &memoryStore{}
	rec := recorder.NewRecorder(store, time.Hour)
	defer rec.Close()

	gr := runner.NewGameRunner(player.NewRandom(1), player.NewDumbRandom(2), rec)
	result, err := gr.Run(context.Background())
	require.NoError(t, err)

	found, err := store.FindMoves(context.Background(), string(result.GameUid))
	require.NoError(t, err)
	assert.Len(t, found, len(result.Moves))

	store.mu.Lock()
	defer store.mu.Unlock()

	require.Len(t, store.starts, 1)
	assert.Equal(t, "random", store.starts[0].Red)
	assert.Equal(t, "dumb_random", store.starts[0].Blue)

	require.Len(t, store.moves, len(result.Moves))
	for i, m := range store.moves {
		assert.Equal(t, string(result.GameUid), m.GameUid)
		assert.Equal(t, i+1, m.StepCount)
		assert.Equal(t, result.Moves[i], m.Edge)
	}

	require.Len(t, store.ends, 1)
	assert.Equal(t, result.Winner.String(), store.ends[0].Winner)
	assert.Equal(t, result.Triangle.String(), store.ends[0].Triangle)
}
