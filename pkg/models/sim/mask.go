package sim

import "math/bits"

// Mask is a set of edges, bit i standing for edge i.
type Mask uint16

const FullMask Mask = 1<<EdgeCount - 1

func (m Mask) Has(e Edge) bool {
	return m&(1<<e) != 0
}

func (m Mask) Add(e Edge) Mask {
	return m | 1<<e
}

func (m Mask) Remove(e Edge) Mask {
	return m &^ (1 << e)
}

func (m Mask) Count() int {
	return bits.OnesCount16(uint16(m))
}

func (m Mask) Empty() bool {
	return m == 0
}

// Next returns the smallest edge in m that is not below from.
func (m Mask) Next(from Edge) (Edge, bool) {
	if from >= EdgeCount {
		return EdgeCount, false
	}
	rest := m >> from
	if rest == 0 {
		return EdgeCount, false
	}
	return from + Edge(bits.TrailingZeros16(uint16(rest))), true
}

// Nth returns the i-th edge of m counting from zero in increasing order.
func (m Mask) Nth(i int) (Edge, bool) {
	for e, ok := m.Next(0); ok; e, ok = m.Next(e + 1) {
		if i == 0 {
			return e, true
		}
		i--
	}
	return EdgeCount, false
}

func (m Mask) Edges() (edges []Edge) {
	for e, ok := m.Next(0); ok; e, ok = m.Next(e + 1) {
		edges = append(edges, e)
	}
	return
}
