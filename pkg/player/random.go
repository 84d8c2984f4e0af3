package player

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/HuXin0817/sim/pkg/models/sim"
)

var ErrExhaustedBoard = errors.New("no uncolored edge left")

// AnyAvailableMove picks uniformly among the uncolored edges of s. It panics
// when the board is full.
func AnyAvailableMove(r *rand.Rand, s sim.State) sim.Edge {
	return pick(r, s.Available())
}

// SafeAvailableMove picks uniformly among the uncolored edges that do not
// complete a triangle of c, or among all uncolored edges if every one of them
// loses.
func SafeAvailableMove(r *rand.Rand, s sim.State, c sim.Color) sim.Edge {
	available := s.Available()
	safe := available
	for e, ok := available.Next(0); ok; e, ok = available.Next(e + 1) {
		if s.WouldCompleteTriangle(e, c) {
			safe = safe.Remove(e)
		}
	}

	if safe.Empty() {
		return pick(r, available)
	}
	return pick(r, safe)
}

func pick(r *rand.Rand, m sim.Mask) sim.Edge {
	if m.Empty() {
		panic(ErrExhaustedBoard)
	}
	e, _ := m.Nth(r.Intn(m.Count()))
	return e
}

func newSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// DumbRandom colors any uncolored edge, even one that loses on the spot.
type DumbRandom struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewDumbRandom returns a DumbRandom player. A zero seed seeds from the clock.
func NewDumbRandom(seed int64) *DumbRandom {
	return &DumbRandom{r: newSource(seed)}
}

func (d *DumbRandom) Name() string {
	return "dumb_random"
}

func (d *DumbRandom) NextMove(state sim.State, _ sim.Color) sim.Edge {
	d.mu.Lock()
	defer d.mu.Unlock()
	return AnyAvailableMove(d.r, state)
}

// Random colors a random edge that does not lose immediately whenever such an
// edge exists.
type Random struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandom returns a Random player. A zero seed seeds from the clock.
func NewRandom(seed int64) *Random {
	return &Random{r: newSource(seed)}
}

func (p *Random) Name() string {
	return "random"
}

func (p *Random) NextMove(state sim.State, color sim.Color) sim.Edge {
	p.mu.Lock()
	defer p.mu.Unlock()
	return SafeAvailableMove(p.r, state, color)
}
