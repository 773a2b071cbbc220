// Command pathplan finds a shortest path on a grid loaded from a file or
// generated at random, and prints the grid with the path drawn over it.
//
// Endpoints not given with -start and -goal are asked for on stdin. The exit
// status is 0 when a path is found, 2 when the goal is unreachable and 1 on
// any error.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/gridfile"
	"github.com/pdrpinto/gridastar/gridgen"
	"github.com/pdrpinto/gridastar/gridgraph"
	"github.com/pdrpinto/gridastar/planner"
	"github.com/pdrpinto/gridastar/render"
)

var (
	filePath      = flag.String("file", "", "Read the grid from this file instead of generating one")
	rows          = flag.Int("rows", 10, "Rows of a generated grid")
	cols          = flag.Int("cols", 10, "Columns of a generated grid")
	density       = flag.Float64("density", 0.3, "Obstacle density of a generated grid [0.0 - 1.0]")
	seed          = flag.Int64("seed", 0, "Random seed (0 = time based)")
	startFlag     = flag.String("start", "", "Start position as row,col")
	goalFlag      = flag.String("goal", "", "Goal position as row,col")
	savePath      = flag.String("save", "", "Write the grid to this file")
	view          = flag.Bool("view", false, "Step through the search in the terminal")
	verify        = flag.Bool("verify", false, "Cross-check the result with a breadth-first search")
	maxExpansions = flag.Int("max-expansions", 0, "Abort after this many expansions (0 = unlimited)")
	timeout       = flag.Duration("timeout", 0, "Abort a search running longer than this (0 = unlimited)")
	verbose       = flag.Bool("v", false, "Verbose logging")
)

// errNotFound makes run report an unreachable goal through the exit status.
var errNotFound = errors.New("no path found")

type config struct {
	file          string
	rows, cols    int
	density       float64
	seed          int64
	start, goal   string
	save          string
	verify        bool
	maxExpansions int
	timeout       time.Duration
}

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config{
		file:          *filePath,
		rows:          *rows,
		cols:          *cols,
		density:       *density,
		seed:          *seed,
		start:         *startFlag,
		goal:          *goalFlag,
		save:          *savePath,
		verify:        *verify,
		maxExpansions: *maxExpansions,
		timeout:       *timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in := bufio.NewReader(os.Stdin)
	grid, start, goal, err := setup(cfg, in, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pathplan:", err)
		os.Exit(1)
	}

	if *view {
		if err := runView(grid, start, goal); err != nil {
			fmt.Fprintln(os.Stderr, "pathplan:", err)
			os.Exit(1)
		}
		return
	}

	err = solve(ctx, cfg, grid, start, goal, os.Stdout)
	switch {
	case errors.Is(err, errNotFound):
		os.Exit(2)
	case err != nil:
		fmt.Fprintln(os.Stderr, "pathplan:", err)
		os.Exit(1)
	}
}

// setup loads or generates the grid and resolves both endpoints, prompting
// on in for any that cfg leaves unset.
func setup(cfg config, in *bufio.Reader, out io.Writer) (*astar.Grid, astar.Position, astar.Position, error) {
	var (
		grid *astar.Grid
		err  error
	)
	if cfg.file != "" {
		grid, err = gridfile.Load(cfg.file)
	} else {
		grid, err = gridgen.Random(cfg.rows, cfg.cols, cfg.density, gridgen.NewRand(cfg.seed))
	}
	if err != nil {
		return nil, astar.Position{}, astar.Position{}, err
	}
	if cfg.save != "" {
		if err := gridfile.Save(cfg.save, grid); err != nil {
			return nil, astar.Position{}, astar.Position{}, err
		}
	}

	start, err := endpoint(cfg.start, "start", in, out)
	if err != nil {
		return nil, astar.Position{}, astar.Position{}, err
	}
	goal, err := endpoint(cfg.goal, "goal", in, out)
	if err != nil {
		return nil, astar.Position{}, astar.Position{}, err
	}
	return grid, start, goal, nil
}

func endpoint(value, name string, in *bufio.Reader, out io.Writer) (astar.Position, error) {
	if value == "" {
		fmt.Fprintf(out, "Please enter the %s position (row column): ", name)
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return astar.Position{}, fmt.Errorf("reading %s position: %w", name, err)
		}
		value = line
	}
	p, err := parsePosition(value)
	if err != nil {
		return astar.Position{}, fmt.Errorf("%s position: %w", name, err)
	}
	return p, nil
}

// parsePosition accepts "row,col" or "row col".
func parsePosition(s string) (astar.Position, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 2 {
		return astar.Position{}, fmt.Errorf("want two integers, got %q", strings.TrimSpace(s))
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return astar.Position{}, fmt.Errorf("row: %w", err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return astar.Position{}, fmt.Errorf("col: %w", err)
	}
	return astar.Position{Row: row, Col: col}, nil
}

// solve plans one path and prints the scenario. It returns errNotFound for
// an unreachable goal.
func solve(ctx context.Context, cfg config, grid *astar.Grid, start, goal astar.Position, out io.Writer) error {
	p := planner.New(
		planner.WithWorkers(1),
		planner.WithMaxExpansions(cfg.maxExpansions),
		planner.WithTimeout(cfg.timeout),
	)
	defer p.Close()

	res, err := p.Plan(ctx, planner.Request{Grid: grid, Start: start, Goal: goal})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Scenario: Start %v | Goal %v\n", start, goal)
	fmt.Fprintln(out, "Grid:")
	fmt.Fprint(out, render.Scenario(grid, res.Path, start, goal))

	if cfg.verify {
		dist, reachable := gridgraph.New(grid).Distance(start, goal)
		switch {
		case reachable != res.Found:
			return fmt.Errorf("verify: search found=%v, breadth-first reachable=%v", res.Found, reachable)
		case reachable && dist != res.Path.Len():
			return fmt.Errorf("verify: search length %d, breadth-first distance %d", res.Path.Len(), dist)
		}
		fmt.Fprintln(out, "Verified against breadth-first search.")
	}

	if !res.Found {
		fmt.Fprintln(out, "No path found.")
		return errNotFound
	}
	fmt.Fprintf(out, "Path found (%d moves, %d nodes expanded):\n", res.Path.Len(), res.ExpandedNodes)
	for _, pos := range res.Path {
		fmt.Fprintln(out, pos)
	}
	return nil
}

func runView(grid *astar.Grid, start, goal astar.Position) error {
	v, err := render.NewViewer(grid, start, goal)
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	v.Run(screen)
	return nil
}
