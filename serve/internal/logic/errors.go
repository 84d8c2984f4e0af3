package logic

import (
	"errors"
	"fmt"

	"github.com/HuXin0817/sim/pkg/models/sim"
)

var (
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("service not configured")
	ErrFullBoard    = errors.New("board has no uncolored edge")
	ErrGameFinished = errors.New("board already holds a monochromatic triangle")
	ErrNoTurn       = errors.New("color must be red or blue")
)

func badRequest(err error) error {
	return fmt.Errorf("%w: %w", ErrBadRequest, err)
}

// parsePosition checks that state can still be played on by color.
func parsePosition(state, color string) (sim.State, sim.Color, error) {
	s, err := sim.ParseState(state)
	if err != nil {
		return 0, sim.None, badRequest(err)
	}

	c, err := sim.ParseColor(color)
	if err != nil {
		return 0, sim.None, badRequest(err)
	}
	if c == sim.None {
		return 0, sim.None, badRequest(ErrNoTurn)
	}

	if s.Full() {
		return 0, sim.None, badRequest(ErrFullBoard)
	}

	for _, side := range []sim.Color{sim.Red, sim.Blue} {
		if t, ok := s.Triangle(side); ok {
			return 0, sim.None, badRequest(fmt.Errorf("%w: %s %s", ErrGameFinished, side, t))
		}
	}

	return s, c, nil
}
