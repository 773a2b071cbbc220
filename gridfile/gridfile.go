// Package gridfile reads and writes grids in a plain text format:
// whitespace-separated integers, the first two being the number of rows and
// columns, followed by one "row col" pair per obstacle. Pair order does not
// matter and duplicates are harmless.
package gridfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	astar "github.com/pdrpinto/gridastar"
)

// ErrMalformed is returned when the input is not a sequence of integers
// with a two-integer header and complete coordinate pairs.
var ErrMalformed = errors.New("malformed grid file")

// Read parses a grid. Every obstacle coordinate is validated against the
// header dimensions.
func Read(r io.Reader) (*astar.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	token := 0
	next := func() (int, bool, error) {
		if !sc.Scan() {
			return 0, false, sc.Err()
		}
		token++
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, false, fmt.Errorf("%w: token %d: %q is not an integer", ErrMalformed, token, sc.Text())
		}
		return v, true, nil
	}

	rows, ok, err := next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	cols, ok, err := next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: missing column count", ErrMalformed)
	}
	g, err := astar.New(rows, cols)
	if err != nil {
		return nil, err
	}

	for pair := 1; ; pair++ {
		row, ok, err := next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		col, ok, err := next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: obstacle %d has no column", ErrMalformed, pair)
		}
		if err := g.SetObstacle(row, col); err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", pair, err)
		}
	}
	return g, nil
}

// Load reads the grid stored in the named file.
func Load(path string) (*astar.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Write stores g with one obstacle pair per line, in row-major order.
func Write(w io.Writer, g *astar.Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.Rows(), g.Cols())
	for _, p := range g.Obstacles() {
		fmt.Fprintf(bw, "%d %d\n", p.Row, p.Col)
	}
	return bw.Flush()
}

// Save writes g to the named file, replacing any previous content.
func Save(path string, g *astar.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
