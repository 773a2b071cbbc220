// Package gridgen produces obstacle layouts for astar grids.
package gridgen

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	astar "github.com/pdrpinto/gridastar"
)

// ErrInvalidDensity is returned for an obstacle density outside [0, 1].
var ErrInvalidDensity = errors.New("obstacle density must be within [0, 1]")

// NewRand returns a generator seeded with seed, or with the current time if
// seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Random returns a rows x cols grid in which each cell is independently
// blocked with probability density.
func Random(rows, cols int, density float64, rng *rand.Rand) (*astar.Grid, error) {
	if err := checkDensity(density); err != nil {
		return nil, err
	}
	g, err := astar.New(rows, cols)
	if err != nil {
		return nil, err
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if rng.Float64() < density {
				_ = g.SetObstacle(row, col) // in range by construction
			}
		}
	}
	return g, nil
}

// Clustered returns a rows x cols grid with clumps of walls laid down by
// clusters random walks of steps moves each; every visited cell becomes a
// wall with probability density. The keep cells are left clear.
func Clustered(rows, cols, clusters, steps int, density float64, rng *rand.Rand, keep ...astar.Position) (*astar.Grid, error) {
	if err := checkDensity(density); err != nil {
		return nil, err
	}
	g, err := astar.New(rows, cols)
	if err != nil {
		return nil, err
	}
	moves := [4]astar.Direction{astar.Up, astar.Down, astar.Left, astar.Right}
	for c := 0; c < clusters; c++ {
		p := astar.Position{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		for s := 0; s < steps; s++ {
			if rng.Float64() < density {
				_ = g.SetObstacle(p.Row, p.Col)
			}
			np := p.Step(moves[rng.Intn(len(moves))])
			if g.IsValidPosition(np.Row, np.Col) {
				p = np
			}
		}
	}
	for _, p := range keep {
		if err := g.ClearObstacle(p.Row, p.Col); err != nil {
			return nil, fmt.Errorf("keep cell: %w", err)
		}
	}
	return g, nil
}

func checkDensity(density float64) error {
	if !(density >= 0 && density <= 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidDensity, density)
	}
	return nil
}
