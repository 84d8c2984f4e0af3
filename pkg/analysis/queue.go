package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/sim/pkg/assess"
	"github.com/HuXin0817/sim/pkg/models/message"
	"github.com/HuXin0817/sim/pkg/models/model"
	"github.com/HuXin0817/sim/pkg/models/sim"
)

const (
	DefaultResultExpire = 600 // second
	DefaultOwnerExpire  = 180 // second
	DefaultListExpire   = 600 // second
	claimInterval       = time.Second
)

var ErrBadJob = errors.New("analysis job cannot be searched")

// Solver searches a position to the end.
type Solver interface {
	Solve(state sim.State, color sim.Color) assess.Verdict
}

// Queue spreads analysis jobs over the redis partitions and lets engines
// work them off.
type Queue struct {
	Redis        *redis.Redis
	ResultExpire int
	OwnerExpire  int
	ListExpire   int
}

func NewQueue(rds *redis.Redis) *Queue {
	return &Queue{
		Redis:        rds,
		ResultExpire: DefaultResultExpire,
		OwnerExpire:  DefaultOwnerExpire,
		ListExpire:   DefaultListExpire,
	}
}

func validJob(job message.AnalysisJob) bool {
	return job.State.Valid() && !job.State.Full() && (job.Color == sim.Red || job.Color == sim.Blue)
}

// Enqueue pushes job onto the shortest partition list.
func (q *Queue) Enqueue(ctx context.Context, job message.AnalysisJob) (message.RedisPartition, error) {
	if !validJob(job) {
		return 0, ErrBadJob
	}

	partition, minLen := message.RedisPartition(-1), 0
	for _, p := range message.RedisPartitions {
		length, err := q.Redis.LlenCtx(ctx, p.ListKey())
		if err != nil {
			return 0, err
		}

		if partition == -1 || length < minLen {
			partition, minLen = p, length
		}
	}

	err := model.NewLock(q.Redis, partition.LockName()).Do(ctx, func() error {
		if _, err := q.Redis.LpushCtx(ctx, partition.ListKey(), job.String()); err != nil {
			return err
		}
		return q.Redis.ExpireCtx(ctx, partition.ListKey(), q.ListExpire)
	})
	if err != nil {
		return 0, err
	}

	return partition, nil
}

// ClaimPartition blocks until it owns a partition that has jobs waiting.
func (q *Queue) ClaimPartition(ctx context.Context) (message.RedisPartition, error) {
	for {
		for _, p := range message.RedisPartitions {
			length, err := q.Redis.LlenCtx(ctx, p.ListKey())
			if err != nil {
				return -1, err
			}

			if length == 0 {
				continue
			}

			owned, err := q.Redis.SetnxExCtx(ctx, p.OwnerKey(), string(message.NewTimeStamp(time.Now())), q.OwnerExpire)
			if err != nil {
				return -1, err
			}

			if owned {
				return p, nil
			}
		}

		select {
		case <-ctx.Done():
			return -1, ctx.Err()
		case <-time.After(claimInterval):
		}
	}
}

// Work solves the jobs of an owned partition until its list is empty, then
// gives the partition up.
func (q *Queue) Work(ctx context.Context, partition message.RedisPartition, solver Solver) (int, error) {
	processed := 0
	logger := logx.WithContext(ctx)
	logger.Infof("start working at partition %d", partition)

	defer func() {
		if _, delErr := q.Redis.DelCtx(context.Background(), partition.OwnerKey()); delErr != nil {
			logger.Errorf("release partition %d: %v", partition, delErr)
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return processed, err
		}

		if err := q.Redis.ExpireCtx(ctx, partition.OwnerKey(), q.OwnerExpire); err != nil {
			return processed, err
		}

		m, err := q.Redis.RpopCtx(ctx, partition.ListKey())
		if errors.Is(err, redis.Nil) || (err == nil && m == "") {
			return processed, nil
		}
		if err != nil {
			return processed, err
		}

		job, err := message.NewAnalysisJob(m)
		if err != nil || !validJob(job) {
			logger.Errorf("drop job %q: %v", m, errors.Join(ErrBadJob, err))
			continue
		}

		key := job.AnalysisKey.String()
		done, err := q.Redis.ExistsCtx(ctx, key)
		if err != nil {
			q.rollBack(partition, m)
			return processed, err
		}

		if done {
			continue
		}

		v := solver.Solve(job.State, job.Color)
		result := message.AnalysisResult{Edge: v.Edge, Win: v.Win, Expanded: v.Expanded}
		err = model.NewLock(q.Redis, key+":lock").Do(ctx, func() error {
			return q.Redis.SetexCtx(ctx, key, result.String(), q.ResultExpire)
		})
		if err != nil {
			q.rollBack(partition, m)
			return processed, err
		}

		processed++
		logger.Infof("solved %s for %s at step %d: win %t", job.State, job.Color, job.Step, v.Win)
	}
}

// rollBack puts a job back at the consuming end of its list.
func (q *Queue) rollBack(partition message.RedisPartition, m string) {
	if _, err := q.Redis.Rpush(partition.ListKey(), m); err != nil {
		logx.Errorf("roll back job on partition %d: %v", partition, err)
	}
}

// Result returns the stored verdict for key, if any.
func (q *Queue) Result(ctx context.Context, key message.AnalysisKey) (message.AnalysisResult, bool, error) {
	str, err := q.Redis.GetCtx(ctx, key.String())
	if err != nil {
		return message.AnalysisResult{}, false, err
	}

	if str == "" {
		return message.AnalysisResult{}, false, nil
	}

	r, err := message.NewAnalysisResult(str)
	if err != nil {
		return message.AnalysisResult{}, false, fmt.Errorf("decode result %s: %w", key, err)
	}
	return r, true, nil
}
