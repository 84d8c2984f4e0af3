package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/sim/pkg/models/model"
	"github.com/HuXin0817/sim/pkg/models/sim"
	"github.com/HuXin0817/sim/pkg/player"
)

// Tournament plays Games games on Workers goroutines. Every game gets fresh
// players from NewRed and NewBlue.
type Tournament struct {
	Games     int
	Workers   int
	NewRed    func() player.Player
	NewBlue   func() player.Player
	Observers []Observer
	// OutputDir, when set, receives one <Prefix>_NNNNN.json file per game.
	OutputDir string
	Prefix    string
	Bar       *model.Bar
}

type Summary struct {
	Games  int
	Wins   map[sim.Color]int
	Failed int
}

func (s Summary) String() string {
	return fmt.Sprintf("games: %d, red wins: %d, blue wins: %d, failed: %d",
		s.Games, s.Wins[sim.Red], s.Wins[sim.Blue], s.Failed)
}

func (t *Tournament) Run(ctx context.Context) (Summary, error) {
	if t.OutputDir != "" {
		if err := os.MkdirAll(t.OutputDir, 0o755); err != nil {
			return Summary{}, err
		}
	}

	workers := max(t.Workers, 1)
	tasks := make(chan int, t.Games)
	results := make(chan BattleResult, t.Games)
	failures := make(chan error, t.Games)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range tasks {
				result, err := t.play(ctx, index)
				if err != nil {
					failures <- err
					continue
				}
				results <- result
			}
		}()
	}

	for i := range t.Games {
		tasks <- i
	}
	close(tasks)

	wg.Wait()
	close(results)
	close(failures)

	summary := Summary{Wins: make(map[sim.Color]int)}
	for result := range results {
		summary.Games++
		summary.Wins[result.Winner]++
	}
	for err := range failures {
		summary.Failed++
		logx.Error(err)
	}
	return summary, ctx.Err()
}

func (t *Tournament) play(ctx context.Context, index int) (BattleResult, error) {
	if t.Bar != nil {
		defer t.Bar.Add(1)
	}

	result, err := NewGameRunner(t.NewRed(), t.NewBlue(), t.Observers...).Run(ctx)
	if err != nil {
		return result, fmt.Errorf("game %d: %w", index, err)
	}

	if t.OutputDir != "" {
		name := filepath.Join(t.OutputDir, fmt.Sprintf("%s_%05d.json", t.Prefix, index))
		if err = os.WriteFile(name, []byte(result.String()), 0o644); err != nil {
			return result, err
		}
	}
	return result, nil
}
