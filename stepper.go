package astar

import (
	"container/heap"
	"math"
	"slices"

	"github.com/pdrpinto/gridastar/internal"
)

// searchNode is the per-cell search state. Nodes live in an arena indexed
// like Grid.blocked and are discarded with the Stepper that owns them.
type searchNode struct {
	gCost    float64 // best known cost from start, +Inf until reached
	hCost    float64
	parent   int32 // arena index, internal.NoParent for the start
	obstacle bool
	closed   bool
}

func (n *searchNode) fCost() float64 { return n.gCost + n.hCost }

// StepSnapshot exposes the state of the search after one step.
type StepSnapshot struct {
	Current   Position // node expanded by this step, zero before the first expansion
	Done      bool
	Found     bool
	Path      Path // set once Found
	StepIndex int  // number of expansions so far
	OpenSize  int  // frontier entries, stale ones included
}

// Stepper runs one A* search one expansion at a time, for visualizers and
// for callers that want to bound the work of a search. It is not safe for
// concurrent use; concurrent searches each need their own Stepper.
type Stepper struct {
	grid        *Grid
	start, goal int32
	goalPos     Position

	nodes []searchNode
	open  frontier
	seq   uint64
	buf   []Position

	current  int32
	expanded int
	done     bool
	found    bool
	path     Path
}

// NewStepper validates the endpoints and prepares a search from start to
// goal. No node is expanded until the first call to Step.
func NewStepper(g *Grid, start, goal Position) (*Stepper, error) {
	if err := checkEndpoint(g, "start", start); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, "goal", goal); err != nil {
		return nil, err
	}

	s := &Stepper{
		grid:    g,
		start:   int32(g.index(start.Row, start.Col)),
		goal:    int32(g.index(goal.Row, goal.Col)),
		goalPos: goal,
		nodes:   make([]searchNode, len(g.blocked)),
		open:    make(frontier, 0, 64),
		buf:     make([]Position, 0, 4),
		current: internal.NoParent,
	}
	for i := range s.nodes {
		s.nodes[i] = searchNode{
			gCost:    math.Inf(1),
			parent:   internal.NoParent,
			obstacle: g.blocked[i],
		}
	}

	startNode := &s.nodes[s.start]
	startNode.gCost = 0
	startNode.hCost = Manhattan(start, goal)
	heap.Push(&s.open, frontierItem{Node: s.start, FCost: startNode.fCost(), Seq: s.nextSeq()})
	return s, nil
}

// Step expands the next node and returns a snapshot. Once the search is
// done, Step keeps returning the final snapshot.
func (s *Stepper) Step() StepSnapshot {
	if s.done {
		return s.snapshot()
	}
	for s.open.Len() > 0 {
		item := heap.Pop(&s.open).(frontierItem)
		node := &s.nodes[item.Node]
		// Skip if already closed
		if node.closed {
			continue
		}
		node.closed = true
		s.current = item.Node
		s.expanded++

		if item.Node == s.goal {
			s.finish(true)
			return s.snapshot()
		}
		s.relax(item.Node)
		return s.snapshot()
	}
	s.finish(false)
	return s.snapshot()
}

// Run steps until the search is done and returns its result.
func (s *Stepper) Run() Result {
	for !s.done {
		s.Step()
	}
	return s.Result()
}

// Result returns the outcome so far. It is only meaningful once Done. The
// returned Path is the caller's to modify.
func (s *Stepper) Result() Result {
	r := Result{ExpandedNodes: s.expanded, Found: s.found}
	if s.found {
		r.Path = slices.Clone(s.path)
		r.TotalCost = s.nodes[s.goal].gCost
	}
	return r
}

// Done reports whether the search has reached the goal or exhausted its
// frontier.
func (s *Stepper) Done() bool { return s.done }

// Expanded returns the number of nodes expanded so far.
func (s *Stepper) Expanded() int { return s.expanded }

// Open returns the distinct cells waiting in the frontier, in row-major
// order.
func (s *Stepper) Open() []Position {
	seen := make(map[int32]bool, len(s.open))
	for _, item := range s.open {
		if !s.nodes[item.Node].closed {
			seen[item.Node] = true
		}
	}
	var out []Position
	for i := range s.nodes {
		if seen[int32(i)] {
			out = append(out, s.grid.position(i))
		}
	}
	return out
}

// Closed returns the expanded cells in row-major order.
func (s *Stepper) Closed() []Position {
	var out []Position
	for i, n := range s.nodes {
		if n.closed {
			out = append(out, s.grid.position(i))
		}
	}
	return out
}

func (s *Stepper) relax(i int32) {
	currentG := s.nodes[i].gCost
	s.buf = appendNeighbors(s.buf[:0], s.grid, s.grid.position(int(i)))
	for _, p := range s.buf {
		j := int32(s.grid.index(p.Row, p.Col))
		neighbor := &s.nodes[j]
		if neighbor.obstacle || neighbor.closed {
			continue
		}
		tentativeG := currentG + 1
		if tentativeG < neighbor.gCost {
			neighbor.gCost = tentativeG
			neighbor.hCost = Manhattan(p, s.goalPos)
			neighbor.parent = i
			heap.Push(&s.open, frontierItem{Node: j, FCost: neighbor.fCost(), Seq: s.nextSeq()})
		}
	}
}

func (s *Stepper) finish(found bool) {
	s.done = true
	s.found = found
	if !found {
		return
	}
	indices, ok := internal.ReconstructPath(s.goal, len(s.nodes), func(i int32) int32 {
		return s.nodes[i].parent
	})
	if !ok {
		panic("astar: parent links form a cycle")
	}
	s.path = make(Path, len(indices))
	for k, i := range indices {
		s.path[k] = s.grid.position(int(i))
	}
}

func (s *Stepper) snapshot() StepSnapshot {
	snap := StepSnapshot{
		Done:      s.done,
		Found:     s.found,
		StepIndex: s.expanded,
		OpenSize:  s.open.Len(),
	}
	if s.current != internal.NoParent {
		snap.Current = s.grid.position(int(s.current))
	}
	if s.found {
		snap.Path = slices.Clone(s.path)
	}
	return snap
}

func (s *Stepper) nextSeq() uint64 {
	s.seq++
	return s.seq
}
