package player_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/sim/pkg/models/sim"
	"github.com/HuXin0817/sim/pkg/player"
)

func TestAnyAvailableMove(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	s, err := sim.ParseState("RBRBRBRBRB.RB.R")
	require.NoError(t, err)

	seen := make(map[sim.Edge]int)
	for range 200 {
		seen[player.AnyAvailableMove(r, s)]++
	}
	assert.Len(t, seen, 2)
	assert.Positive(t, seen[10])
	assert.Positive(t, seen[13])
}

func TestAnyAvailableMovePanicsOnFullBoard(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	s, err := sim.ParseState("BBRRRRBRRRBBBBR")
	require.NoError(t, err)
	assert.PanicsWithValue(t, player.ErrExhaustedBoard, func() { player.AnyAvailableMove(r, s) })
}

func TestSafeAvailableMove(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	var s sim.State
	s.Set(sim.Between(0, 1), sim.Red)
	s.Set(sim.Between(0, 2), sim.Red)

	losing := sim.Between(1, 2)
	for range 500 {
		assert.NotEqual(t, losing, player.SafeAvailableMove(r, s, sim.Red))
	}
}

func TestSafeAvailableMoveFallsBack(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	// Only edge 14 is left and it closes a red triangle 3-4-5.
	s, err := sim.ParseState("BBBBBBBBBBBBRR.")
	require.NoError(t, err)
	require.True(t, s.WouldCompleteTriangle(14, sim.Red))
	assert.Equal(t, sim.Edge(14), player.SafeAvailableMove(r, s, sim.Red))
}

func TestRandomPlayers(t *testing.T) {
	var s sim.State
	s.Set(sim.Between(0, 1), sim.Blue)
	s.Set(sim.Between(1, 2), sim.Blue)

	safe := player.NewRandom(9)
	dumb := player.NewDumbRandom(9)
	for range 200 {
		e := safe.NextMove(s, sim.Blue)
		assert.Equal(t, sim.None, s.Color(e))
		assert.NotEqual(t, sim.Between(0, 2), e)

		assert.Equal(t, sim.None, s.Color(dumb.NextMove(s, sim.Blue)))
	}
}
