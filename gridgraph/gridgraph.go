// Package gridgraph builds an undirected gonum graph of the clear cells of an
// astar.Grid and answers reachability and hop-distance queries with a plain
// breadth-first search.
//
// It shares no code with the A* engine beyond the Grid accessors, so it can
// serve as an independent check of search results.
package gridgraph

import (
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	astar "github.com/pdrpinto/gridastar"
)

// Graph is the 4-connected adjacency graph of a grid's clear cells.
// Node IDs are row*cols + col.
type Graph struct {
	rows, cols int
	g          *simple.UndirectedGraph
}

// New snapshots the connectivity of grid. Later changes to grid are not
// reflected.
func New(grid *astar.Grid) *Graph {
	gg := &Graph{
		rows: grid.Rows(),
		cols: grid.Cols(),
		g:    simple.NewUndirectedGraph(),
	}
	for p, blocked := range grid.Cells() {
		if !blocked {
			gg.g.AddNode(simple.Node(gg.id(p)))
		}
	}
	for p, blocked := range grid.Cells() {
		if blocked {
			continue
		}
		// Linking right and down covers every undirected edge once.
		for _, q := range []astar.Position{{Row: p.Row, Col: p.Col + 1}, {Row: p.Row + 1, Col: p.Col}} {
			if empty, err := grid.IsCellEmpty(q.Row, q.Col); err == nil && empty {
				gg.g.SetEdge(gg.g.NewEdge(simple.Node(gg.id(p)), simple.Node(gg.id(q))))
			}
		}
	}
	return gg
}

// Nodes returns the number of clear cells.
func (gg *Graph) Nodes() int { return gg.g.Nodes().Len() }

// Edges returns the number of adjacent clear cell pairs.
func (gg *Graph) Edges() int { return gg.g.Edges().Len() }

// Distance returns the number of moves on a shortest path from start to
// goal. It reports false if either cell is blocked or outside the grid, or
// if goal cannot be reached.
func (gg *Graph) Distance(start, goal astar.Position) (int, bool) {
	from, ok := gg.node(start)
	if !ok {
		return 0, false
	}
	to, ok := gg.node(goal)
	if !ok {
		return 0, false
	}
	dist := -1
	var bf traverse.BreadthFirst
	bf.Walk(gg.g, from, func(n graph.Node, d int) bool {
		if n.ID() == to.ID() {
			dist = d
			return true
		}
		return false
	})
	if dist < 0 {
		return 0, false
	}
	return dist, true
}

// Reachable reports whether goal can be reached from start.
func (gg *Graph) Reachable(start, goal astar.Position) bool {
	_, ok := gg.Distance(start, goal)
	return ok
}

// Component returns the clear cells reachable from p, p included, in
// row-major order. It is nil if p is blocked or outside the grid.
func (gg *Graph) Component(p astar.Position) []astar.Position {
	from, ok := gg.node(p)
	if !ok {
		return nil
	}
	var ids []int64
	bf := traverse.BreadthFirst{
		Visit: func(n graph.Node) { ids = append(ids, n.ID()) },
	}
	bf.Walk(gg.g, from, nil)
	slices.Sort(ids)
	out := make([]astar.Position, len(ids))
	for i, id := range ids {
		out[i] = astar.Position{Row: int(id) / gg.cols, Col: int(id) % gg.cols}
	}
	return out
}

func (gg *Graph) id(p astar.Position) int64 {
	return int64(p.Row*gg.cols + p.Col)
}

func (gg *Graph) node(p astar.Position) (graph.Node, bool) {
	if p.Row < 0 || p.Row >= gg.rows || p.Col < 0 || p.Col >= gg.cols {
		return nil, false
	}
	n := gg.g.Node(gg.id(p))
	if n == nil {
		return nil, false
	}
	return n, true
}
