package sim

import "fmt"

const VertexCount = 6

// Vertex is one of the six points of the board.
type Vertex uint8

func (v Vertex) Valid() bool {
	return v < VertexCount
}

func (v Vertex) String() string {
	return fmt.Sprint(uint8(v))
}

func Vertices() (vertices [VertexCount]Vertex) {
	for i := range VertexCount {
		vertices[i] = Vertex(i)
	}
	return
}
