package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/sim/pkg/models/sim"
)

func TestBetweenIsSymmetric(t *testing.T) {
	seen := make(map[sim.Edge]bool)
	for _, a := range sim.Vertices() {
		for _, b := range sim.Vertices() {
			if a == b {
				continue
			}
			e := sim.Between(a, b)
			require.True(t, e.Valid())
			assert.Equal(t, e, sim.Between(b, a))

			x, y := e.Endpoints()
			assert.ElementsMatch(t, []sim.Vertex{a, b}, []sim.Vertex{x, y})
			assert.True(t, x < y)
			seen[e] = true
		}
	}
	assert.Len(t, seen, sim.EdgeCount)
}

func TestEdgeNumbering(t *testing.T) {
	tests := []struct {
		a, b sim.Vertex
		want sim.Edge
	}{
		{0, 1, 0},
		{0, 5, 4},
		{1, 2, 5},
		{2, 3, 9},
		{3, 5, 13},
		{4, 5, 14},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sim.Between(tt.a, tt.b), "between %d and %d", tt.a, tt.b)
	}
	assert.Equal(t, "(1, 3)", sim.Edge(6).String())
}

func TestBetweenPanics(t *testing.T) {
	assert.Panics(t, func() { sim.Between(2, 2) })
	assert.Panics(t, func() { sim.Between(0, 6) })
}
