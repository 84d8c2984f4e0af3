package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/HuXin0817/sim/pkg/models/sim"
)

// Human reads moves as two vertex numbers per line, e.g. "0 3".
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (h *Human) Name() string {
	return "human"
}

// NextMove prompts until a valid uncolored edge is entered. It panics with
// io.ErrUnexpectedEOF if the input ends first.
func (h *Human) NextMove(state sim.State, color sim.Color) sim.Edge {
	for {
		fmt.Fprintf(h.out, "Player %s, enter the two endpoints of an edge: ", color)
		if !h.in.Scan() {
			panic(io.ErrUnexpectedEOF)
		}

		e, err := parseEdge(h.in.Text())
		if err != nil {
			fmt.Fprintln(h.out, err)
			continue
		}

		if state.Color(e) != sim.None {
			fmt.Fprintf(h.out, "edge %s is already colored\n", e)
			continue
		}
		return e
	}
}

func parseEdge(line string) (sim.Edge, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, fmt.Errorf("want two vertices, got %d values", len(fields))
	}

	var v [2]sim.Vertex
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q: %w", f, err)
		}
		v[i] = sim.Vertex(n)
	}

	if !v[0].Valid() || !v[1].Valid() || v[0] == v[1] {
		return 0, fmt.Errorf("%d and %d must be distinct vertices below %d", v[0], v[1], sim.VertexCount)
	}
	return sim.Between(v[0], v[1]), nil
}
