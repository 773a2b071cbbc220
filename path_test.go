package astar

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestManhattan(t *testing.T) {
	qt.Assert(t, qt.Equals(Manhattan(Position{0, 0}, Position{2, 2}), 4.0))
	qt.Assert(t, qt.Equals(Manhattan(Position{3, 1}, Position{0, 4}), 6.0))
	qt.Assert(t, qt.Equals(Manhattan(Position{1, 1}, Position{1, 1}), 0.0))
}

func TestNeighbors(t *testing.T) {
	g, _ := NewFromMatrix([][]bool{
		{false, true, false},
		{false, false, false},
		{false, false, false},
	})
	// Up, down, left, right order; (0,1) is blocked.
	qt.Assert(t, qt.DeepEquals(Neighbors(g, Position{1, 1}), []Position{{2, 1}, {1, 0}, {1, 2}}))
	// Corner: only down and right are in bounds, right is blocked.
	qt.Assert(t, qt.DeepEquals(Neighbors(g, Position{0, 0}), []Position{{1, 0}}))
	qt.Assert(t, qt.IsNil(Neighbors(g, Position{3, 0})))
}

func TestPathLenAndContains(t *testing.T) {
	p := Path{{0, 0}, {0, 1}, {1, 1}}
	qt.Assert(t, qt.Equals(p.Len(), 2))
	qt.Assert(t, qt.IsTrue(p.Contains(Position{0, 1})))
	qt.Assert(t, qt.IsFalse(p.Contains(Position{1, 0})))
	qt.Assert(t, qt.Equals(p.Start(), Position{0, 0}))
	qt.Assert(t, qt.Equals(p.Goal(), Position{1, 1}))

	qt.Assert(t, qt.Equals(Path(nil).Len(), 0))
	qt.Assert(t, qt.Equals(Path{{4, 4}}.Len(), 0))
}

func TestPathDirections(t *testing.T) {
	p := Path{{1, 1}, {0, 1}, {0, 2}, {1, 2}, {1, 1}}
	qt.Assert(t, qt.DeepEquals(p.Directions(), []Direction{Up, Right, Down, Left}))
	qt.Assert(t, qt.IsNil(Path{{0, 0}}.Directions()))
	qt.Assert(t, qt.IsNil(Path{{0, 0}, {1, 1}}.Directions()))
}

func TestDirectionString(t *testing.T) {
	qt.Assert(t, qt.Equals(Up.String(), "up"))
	qt.Assert(t, qt.Equals(Right.String(), "right"))
	qt.Assert(t, qt.Equals(Direction(9).String(), "Direction(9)"))
	qt.Assert(t, qt.Equals(Position{2, 7}.String(), "(2, 7)"))
}
