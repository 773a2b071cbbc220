package astar_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/go-quicktest/qt"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/gridgen"
	"github.com/pdrpinto/gridastar/gridgraph"
)

// TestFindPathAgainstBreadthFirst checks optimality, validity and
// termination on random grids against an independent breadth-first search.
func TestFindPathAgainstBreadthFirst(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		rows, cols := 1+rng.Intn(12), 1+rng.Intn(12)
		density := []float64{0, 0.1, 0.25, 0.4}[i%4]
		g, err := gridgen.Random(rows, cols, density, rng)
		qt.Assert(t, qt.IsNil(err))

		start := astar.Position{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		goal := astar.Position{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		_ = g.ClearObstacle(start.Row, start.Col)
		_ = g.ClearObstacle(goal.Row, goal.Col)

		t.Run(fmt.Sprintf("%d/%dx%d", i, rows, cols), func(t *testing.T) {
			res, err := astar.FindPath(g, start, goal)
			qt.Assert(t, qt.IsNil(err))

			dist, reachable := gridgraph.New(g).Distance(start, goal)
			qt.Assert(t, qt.Equals(res.Found, reachable))
			if !reachable {
				qt.Assert(t, qt.IsNil(res.Path))
				return
			}
			qt.Assert(t, qt.Equals(res.Path.Len(), dist))
			qt.Assert(t, qt.Equals(res.TotalCost, float64(dist)))
			assertValidPath(t, g, res.Path, start, goal)
		})
	}
}

// TestFindPathReachesWholeComponent checks that every cell of the start's
// component is found and every other clear cell is reported unreachable.
func TestFindPathReachesWholeComponent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, err := gridgen.Random(8, 8, 0.35, rng)
	qt.Assert(t, qt.IsNil(err))
	start := astar.Position{Row: 0, Col: 0}
	_ = g.ClearObstacle(0, 0)

	component := make(map[astar.Position]bool)
	for _, p := range gridgraph.New(g).Component(start) {
		component[p] = true
	}
	for p, blocked := range g.Cells() {
		if blocked {
			continue
		}
		res, err := astar.FindPath(g, start, p)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(res.Found, component[p]), qt.Commentf("goal %v", p))
	}
}

func TestFindPathConcurrentSearchesShareGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g, err := gridgen.Random(30, 30, 0.2, rng)
	qt.Assert(t, qt.IsNil(err))
	start, goal := astar.Position{Row: 0, Col: 0}, astar.Position{Row: 29, Col: 29}
	_ = g.ClearObstacle(start.Row, start.Col)
	_ = g.ClearObstacle(goal.Row, goal.Col)

	want, err := astar.FindPath(g, start, goal)
	qt.Assert(t, qt.IsNil(err))

	results := make(chan astar.Result)
	for i := 0; i < 8; i++ {
		go func() {
			res, _ := astar.FindPath(g, start, goal)
			results <- res
		}()
	}
	for i := 0; i < 8; i++ {
		qt.Assert(t, qt.DeepEquals(<-results, want))
	}
}

func assertValidPath(t *testing.T, g *astar.Grid, path astar.Path, start, goal astar.Position) {
	t.Helper()
	qt.Assert(t, qt.Equals(path.Start(), start))
	qt.Assert(t, qt.Equals(path.Goal(), goal))
	for i, p := range path {
		empty, err := g.IsCellEmpty(p.Row, p.Col)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.IsTrue(empty), qt.Commentf("path cell %v is blocked", p))
		if i == 0 {
			continue
		}
		q := path[i-1]
		dr, dc := p.Row-q.Row, p.Col-q.Col
		step := dr*dr + dc*dc
		qt.Assert(t, qt.Equals(step, 1), qt.Commentf("%v -> %v is not a unit move", q, p))
	}
	qt.Assert(t, qt.HasLen(path.Directions(), path.Len()))
}
