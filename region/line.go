package region

import (
	"fmt"
	"strconv"
	"strings"
)

// Line is an ordered run of vertices known to lie on one straight line,
// listed from one end to the other. Lines are a whitelist of known straight
// runs: any vertex triple not covered by some Line is treated as a corner,
// never as an error. A Line is immutable after construction.
type Line struct {
	verts []VertexID
	pos   map[VertexID]int // vertex → index within verts
}

// NewLine constructs a Line from its end-to-end vertex order.
// At least 2 vertices are required (ErrLineTooShort) and none may repeat
// (ErrRepeatedVertex). The vertex slice is copied.
func NewLine(vertices ...VertexID) (Line, error) {
	if len(vertices) < 2 {
		return Line{}, fmt.Errorf("%w (got %d)", ErrLineTooShort, len(vertices))
	}
	verts := make([]VertexID, len(vertices))
	copy(verts, vertices)
	pos := make(map[VertexID]int, len(verts))
	for i, v := range verts {
		if _, dup := pos[v]; dup {
			return Line{}, fmt.Errorf("line: %w (vertex %d)", ErrRepeatedVertex, v)
		}
		pos[v] = i
	}

	return Line{verts: verts, pos: pos}, nil
}

// Len reports the number of vertices on the line.
func (l Line) Len() int { return len(l.verts) }

// Vertices returns a copy of the end-to-end vertex order.
func (l Line) Vertices() []VertexID {
	out := make([]VertexID, len(l.verts))
	copy(out, l.verts)

	return out
}

// Position returns the index of v along the line and whether v lies on it.
func (l Line) Position(v VertexID) (int, bool) {
	i, ok := l.pos[v]

	return i, ok
}

// String renders the line as "⟨1 8 10 4⟩".
func (l Line) String() string {
	var b strings.Builder
	b.WriteString("⟨")
	for i, v := range l.verts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	b.WriteString("⟩")

	return b.String()
}
