package player

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpc"

	"github.com/HuXin0817/sim/pkg/models/message"
	"github.com/HuXin0817/sim/pkg/models/sim"
)

const DefaultRemoteTimeout = 30 * time.Second

// Remote asks a move service for its moves and falls back to a local
// loss-avoiding random move when the service cannot answer.
type Remote struct {
	Address  string
	Timeout  time.Duration
	Fallback Player
}

func NewRemote(address string) *Remote {
	return &Remote{
		Address:  address,
		Timeout:  DefaultRemoteTimeout,
		Fallback: NewRandom(0),
	}
}

func (r *Remote) Name() string {
	return "remote " + r.Address
}

func (r *Remote) NextMove(state sim.State, color sim.Color) sim.Edge {
	ctx, cancel := context.WithTimeout(context.Background(), r.Timeout)
	defer cancel()

	e, err := r.Ask(ctx, state, color)
	if err != nil {
		logx.WithContext(ctx).Errorf("remote move from %s failed, playing locally: %v", r.Address, err)
		return r.Fallback.NextMove(state, color)
	}
	return e
}

// Ask requests a move for color on state from the service.
func (r *Remote) Ask(ctx context.Context, state sim.State, color sim.Color) (sim.Edge, error) {
	req := message.MoveRequest{
		State: state.String(),
		Color: color.String(),
	}

	resp, err := httpc.Do(ctx, http.MethodPost, fmt.Sprintf("http://%s/v1/move", r.Address), req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("move service answered %s", resp.Status)
	}

	var body message.MoveResponse
	if err = httpc.Parse(resp, &body); err != nil {
		return 0, err
	}

	e := sim.Edge(body.Edge)
	if !e.Valid() || state.Color(e) != sim.None {
		return 0, fmt.Errorf("move service proposed unusable edge %d", body.Edge)
	}
	return e, nil
}
