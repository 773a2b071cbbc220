package gridgen

import (
	"testing"

	"github.com/go-quicktest/qt"

	astar "github.com/pdrpinto/gridastar"
)

func TestRandomDensityBounds(t *testing.T) {
	empty, err := Random(6, 7, 0, NewRand(1))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(empty.Obstacles(), 0))

	full, err := Random(6, 7, 1, NewRand(1))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(full.Obstacles(), 42))
}

func TestRandomSameSeedSameGrid(t *testing.T) {
	a, err := Random(20, 20, 0.3, NewRand(99))
	qt.Assert(t, qt.IsNil(err))
	b, err := Random(20, 20, 0.3, NewRand(99))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(a.Obstacles(), b.Obstacles()))

	n := len(a.Obstacles())
	qt.Assert(t, qt.IsTrue(n > 60 && n < 180), qt.Commentf("%d obstacles", n))
}

func TestInvalidArguments(t *testing.T) {
	for _, d := range []float64{-0.1, 1.5} {
		_, err := Random(3, 3, d, NewRand(1))
		qt.Assert(t, qt.ErrorIs(err, ErrInvalidDensity))
		_, err = Clustered(3, 3, 1, 1, d, NewRand(1))
		qt.Assert(t, qt.ErrorIs(err, ErrInvalidDensity))
	}
	_, err := Random(0, 3, 0.5, NewRand(1))
	qt.Assert(t, qt.ErrorIs(err, astar.ErrInvalidDimension))
}

func TestClusteredKeepsCells(t *testing.T) {
	keep := []astar.Position{{Row: 0, Col: 0}, {Row: 9, Col: 9}}
	g, err := Clustered(10, 10, 50, 40, 1, NewRand(5), keep...)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Not(qt.HasLen(g.Obstacles(), 0)))
	for _, p := range keep {
		empty, err := g.IsCellEmpty(p.Row, p.Col)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.IsTrue(empty))
	}
}

func TestClusteredKeepOutOfRange(t *testing.T) {
	_, err := Clustered(4, 4, 1, 1, 0.5, NewRand(1), astar.Position{Row: 4, Col: 0})
	qt.Assert(t, qt.ErrorIs(err, astar.ErrOutOfBounds))
}
