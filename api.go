package astar

// Result contains the outcome of a search.
//
// A search that exhausts its frontier without reaching the goal is not an
// error: Found is false and Path is nil. A search whose start equals its
// goal is Found with a single-cell Path.
type Result struct {
	Path          Path
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// FindPath runs A* from start to goal over the 4-connected clear cells of g,
// with unit move cost and the Manhattan heuristic, and returns a shortest
// path.
//
// Both endpoints must be valid, clear positions; otherwise FindPath returns
// a *PositionError wrapping ErrInvalidEndpoint and does not search.
//
// Among open cells with equal f-cost, the one queued first is expanded
// first, and neighbours are queued in the order up, down, left, right. The
// returned path is therefore fully determined by g, start and goal.
func FindPath(g *Grid, start, goal Position) (Result, error) {
	stepper, err := NewStepper(g, start, goal)
	if err != nil {
		return Result{}, err
	}
	return stepper.Run(), nil
}

func checkEndpoint(g *Grid, op string, p Position) error {
	if !g.IsValidPosition(p.Row, p.Col) {
		return &PositionError{Op: op, Pos: p, Err: ErrInvalidEndpoint, cause: ErrOutOfBounds}
	}
	if g.blocked[g.index(p.Row, p.Col)] {
		return &PositionError{Op: op, Pos: p, Err: ErrInvalidEndpoint}
	}
	return nil
}
