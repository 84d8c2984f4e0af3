package sim

import "fmt"

const EdgeCount = VertexCount * (VertexCount - 1) / 2

// Edge identifies one of the 15 connections of K6. Edges are numbered in the
// lexicographic order of their endpoint pairs: (0, 1) is 0, (0, 5) is 4,
// (1, 2) is 5 and (4, 5) is 14.
type Edge uint8

var (
	edgeBetween   [VertexCount][VertexCount]Edge
	edgeEndpoints [EdgeCount][2]Vertex
)

func init() {
	var e Edge
	for a := range VertexCount {
		for b := a + 1; b < VertexCount; b++ {
			edgeBetween[a][b] = e
			edgeBetween[b][a] = e
			edgeEndpoints[e] = [2]Vertex{Vertex(a), Vertex(b)}
			e++
		}
	}
}

// Between returns the edge connecting a and b. It panics if a and b are equal
// or not valid vertices.
func Between(a, b Vertex) Edge {
	if !a.Valid() || !b.Valid() || a == b {
		panic(fmt.Sprintf("sim: no edge between %d and %d", a, b))
	}
	return edgeBetween[a][b]
}

func (e Edge) Valid() bool {
	return e < EdgeCount
}

// Endpoints returns both vertices of e, the smaller one first.
func (e Edge) Endpoints() (Vertex, Vertex) {
	p := edgeEndpoints[e]
	return p[0], p[1]
}

func (e Edge) String() string {
	a, b := e.Endpoints()
	return fmt.Sprintf("(%d, %d)", a, b)
}

func AllEdges() (edges [EdgeCount]Edge) {
	for i := range EdgeCount {
		edges[i] = Edge(i)
	}
	return
}
