package pusher_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/HuXin0817/sim/pkg/models/pusher"
)

func TestPusherBatches(t *testing.T) {
	var (
		mu      sync.Mutex
		batches [][]int
	)
	p := pusher.NewPusher(
		pusher.WithPushInterval[int](10*time.Millisecond),
		pusher.WithElements(1, 2),
		pusher.WithPushLogic(func(m ...int) error {
			mu.Lock()
			defer mu.Unlock()
			batches = append(batches, append([]int(nil), m...))
			return nil
		}),
	)
	p.Start()

	assert.Eventually(t, func() bool { return p.Len() == 0 }, time.Second, 5*time.Millisecond)
	p.AddMessages(3)
	p.Stop()

	mu.Lock()
	defer mu.Unlock()
	var all []int
	for _, b := range batches {
		assert.NotEmpty(t, b)
		all = append(all, b...)
	}
	assert.Equal(t, []int{1, 2, 3}, all)
}

func TestPusherKeepsFailedBatch(t *testing.T) {
	fail := true
	var errs []error
	p := pusher.NewPusher(
		pusher.WithPushLogic(func(m ...string) error {
			if fail {
				return errors.New("store down")
			}
			return nil
		}),
		pusher.WithErrorHandler[string](func(err error) { errs = append(errs, err) }),
	)

	p.AddMessages("a", "b")
	assert.Error(t, p.PushAll())
	assert.Equal(t, 2, p.Len())

	fail = false
	assert.NoError(t, p.PushAll())
	assert.Zero(t, p.Len())
	assert.Empty(t, errs)
}
