package sim

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedState = errors.New("malformed board state")

// State stores the colors of all 15 edges, two bits per edge. The two least
// significant bits hold edge 0; bits 30 and 31 are always zero.
//
//	Bit:   31 30 | 29 28 | 27 26 | ... | 3 2 | 1 0
//	Edge:  -- -- |  14   |  13   | ... |  1  |  0
type State uint32

const (
	colorBits = 2
	colorMask = 0b11
	stateMask = 1<<(EdgeCount*colorBits) - 1
)

func (s State) Color(e Edge) Color {
	return Color(s >> (uint(e) * colorBits) & colorMask)
}

// Set replaces the two bits of e, leaving every other edge untouched.
func (s *State) Set(e Edge, c Color) {
	shift := uint(e) * colorBits
	*s = *s&^(colorMask<<shift) | State(c)<<shift
}

func (s State) With(e Edge, c Color) State {
	s.Set(e, c)
	return s
}

func (s State) Clone() State {
	return s
}

// WouldCompleteTriangle reports whether coloring e with c closes a triangle
// of c. e must still be uncolored.
func (s State) WouldCompleteTriangle(e Edge, c Color) bool {
	a, b := e.Endpoints()
	for v := range Vertex(VertexCount) {
		if v == a || v == b {
			continue
		}
		if s.Color(edgeBetween[a][v]) == c && s.Color(edgeBetween[b][v]) == c {
			return true
		}
	}
	return false
}

// Available returns the set of uncolored edges.
func (s State) Available() (m Mask) {
	for e := range Edge(EdgeCount) {
		if s.Color(e) == None {
			m = m.Add(e)
		}
	}
	return
}

func (s State) Colored() (count int) {
	for e := range Edge(EdgeCount) {
		if s.Color(e) != None {
			count++
		}
	}
	return
}

func (s State) Full() bool {
	return s.Colored() == EdgeCount
}

func (s State) Valid() bool {
	if s&^stateMask != 0 {
		return false
	}
	for e := range Edge(EdgeCount) {
		if !s.Color(e).Valid() {
			return false
		}
	}
	return true
}

// Edges returns the edges holding c, in increasing order.
func (s State) Edges(c Color) (edges []Edge) {
	for e := range Edge(EdgeCount) {
		if s.Color(e) == c {
			edges = append(edges, e)
		}
	}
	return
}

// Triangle returns the first monochromatic triangle of c found on the board.
func (s State) Triangle(c Color) (Triangle, bool) {
	for a := range Vertex(VertexCount) {
		for b := a + 1; b < VertexCount; b++ {
			if s.Color(edgeBetween[a][b]) != c {
				continue
			}
			for v := b + 1; v < VertexCount; v++ {
				if s.Color(edgeBetween[a][v]) == c && s.Color(edgeBetween[b][v]) == c {
					return Triangle{a, b, v}, true
				}
			}
		}
	}
	return Triangle{}, false
}

// String renders the board as 15 characters in edge order, '.' for an
// uncolored edge, 'R' and 'B' for the two players.
func (s State) String() string {
	var builder strings.Builder
	for e := range Edge(EdgeCount) {
		builder.WriteRune(s.Color(e).Rune())
	}
	return builder.String()
}

func ParseState(str string) (s State, err error) {
	if len(str) != EdgeCount {
		return 0, fmt.Errorf("%w: want %d edges, got %d", ErrMalformedState, EdgeCount, len(str))
	}

	for i, r := range str {
		var c Color
		switch r {
		case '.', '_', '0':
		case 'R', 'r', '1':
			c = Red
		case 'B', 'b', '2':
			c = Blue
		default:
			return 0, fmt.Errorf("%w: unexpected %q at edge %d", ErrMalformedState, r, i)
		}
		s.Set(Edge(i), c)
	}
	return
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) (err error) {
	*s, err = ParseState(string(text))
	return
}

// Triangle holds three vertices in increasing order.
type Triangle [3]Vertex

func (t Triangle) Edges() [3]Edge {
	return [...]Edge{
		Between(t[0], t[1]),
		Between(t[0], t[2]),
		Between(t[1], t[2]),
	}
}

func (t Triangle) String() string {
	return fmt.Sprintf("(%d, %d, %d)", t[0], t[1], t[2])
}
