package astar

import "fmt"

// Position is a (row, col) cell coordinate.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Direction is a single 4-connected move.
type Direction int8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// directions lists the moves in neighbour generation order.
var directions = [4]Direction{Up, Down, Left, Right}

// offsets is indexed by Direction: {dRow, dCol}.
var offsets = [4][2]int{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int8(d))
}

// Step returns the position one move from p in direction d.
func (p Position) Step(d Direction) Position {
	o := offsets[d]
	return Position{Row: p.Row + o[0], Col: p.Col + o[1]}
}

// Path is an ordered sequence of positions from start to goal inclusive.
type Path []Position

// Len returns the number of moves in the path.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether pos is on the path. It is linear in the path
// length and never modifies the path.
func (p Path) Contains(pos Position) bool {
	for _, q := range p {
		if q == pos {
			return true
		}
	}
	return false
}

// Start returns the first position. It panics on an empty path.
func (p Path) Start() Position { return p[0] }

// Goal returns the last position. It panics on an empty path.
func (p Path) Goal() Position { return p[len(p)-1] }

// Directions returns the heading of each move along the path.
// It returns nil if two consecutive positions are not adjacent.
func (p Path) Directions() []Direction {
	if len(p) < 2 {
		return nil
	}
	out := make([]Direction, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		d, ok := between(p[i-1], p[i])
		if !ok {
			return nil
		}
		out = append(out, d)
	}
	return out
}

func between(a, b Position) (Direction, bool) {
	for _, d := range directions {
		if a.Step(d) == b {
			return d, true
		}
	}
	return 0, false
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|. It is admissible and
// consistent on a 4-connected grid with unit move cost.
func Manhattan(a, b Position) float64 {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return float64(dr + dc)
}

// Neighbors returns the in-bounds, clear cells adjacent to p in the order
// up, down, left, right. The result is nil if p itself is not a valid
// position.
func Neighbors(g *Grid, p Position) []Position {
	if !g.IsValidPosition(p.Row, p.Col) {
		return nil
	}
	return appendNeighbors(make([]Position, 0, 4), g, p)
}

func appendNeighbors(dst []Position, g *Grid, p Position) []Position {
	for _, d := range directions {
		n := p.Step(d)
		if g.IsValidPosition(n.Row, n.Col) && !g.blocked[g.index(n.Row, n.Col)] {
			dst = append(dst, n)
		}
	}
	return dst
}
