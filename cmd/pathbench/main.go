// Command pathbench measures search time on random square grids of growing
// size, with start and goal in opposite corners.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/gridgen"
	"github.com/pdrpinto/gridastar/planner"
)

var (
	size        = flag.Int("size", 10, "Side of the first grid")
	step        = flag.Int("step", 5, "Side increase per round")
	rounds      = flag.Int("rounds", 5, "Number of grid sizes")
	repeat      = flag.Int("repeat", 20, "Random grids per size")
	density     = flag.Float64("density", 0.3, "Obstacle density [0.0 - 1.0]")
	seed        = flag.Int64("seed", 1, "Random seed (0 = time based)")
	workers     = flag.Int("workers", runtime.NumCPU(), "Concurrent searches")
	dumpMetrics = flag.Bool("metrics", false, "Print planner metrics after the run")
)

type roundStats struct {
	side      int
	plans     int
	found     int
	moves     int // summed over found paths
	expanded  int
	searching time.Duration // summed search time
	wall      time.Duration
}

func main() {
	flag.Parse()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	p := planner.New(planner.WithWorkers(*workers), planner.WithRegisterer(reg))
	defer p.Close()

	stats, err := bench(ctx, p, *size, *step, *rounds, *repeat, *density, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pathbench:", err)
		os.Exit(1)
	}
	printStats(os.Stdout, stats)

	if *dumpMetrics {
		if err := writeMetrics(os.Stdout, reg); err != nil {
			fmt.Fprintln(os.Stderr, "pathbench:", err)
			os.Exit(1)
		}
	}
}

func bench(ctx context.Context, p *planner.Planner, size, step, rounds, repeat int, density float64, seed int64) ([]roundStats, error) {
	if repeat < 1 {
		return nil, fmt.Errorf("repeat must be positive, got %d", repeat)
	}
	rng := gridgen.NewRand(seed)
	var out []roundStats
	for r := 0; r < rounds; r++ {
		side := size + r*step
		start := astar.Position{Row: 0, Col: 0}
		goal := astar.Position{Row: side - 1, Col: side - 1}

		reqs := make([]planner.Request, repeat)
		for i := range reqs {
			g, err := gridgen.Random(side, side, density, rng)
			if err != nil {
				return nil, err
			}
			_ = g.ClearObstacle(start.Row, start.Col)
			_ = g.ClearObstacle(goal.Row, goal.Col)
			reqs[i] = planner.Request{Grid: g, Start: start, Goal: goal}
		}

		began := time.Now()
		responses := p.PlanAll(ctx, reqs)
		st := roundStats{side: side, plans: len(reqs), wall: time.Since(began)}
		for _, resp := range responses {
			if resp.Err != nil {
				return nil, fmt.Errorf("%dx%d: %w", side, side, resp.Err)
			}
			st.expanded += resp.Result.ExpandedNodes
			st.searching += resp.Elapsed
			if resp.Result.Found {
				st.found++
				st.moves += resp.Result.Path.Len()
			}
		}
		out = append(out, st)
	}
	return out, nil
}

func printStats(w io.Writer, stats []roundStats) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "grid\tplans\tfound\tavg moves\tavg expanded\tavg search\twall\t")
	for _, st := range stats {
		avgMoves := 0.0
		if st.found > 0 {
			avgMoves = float64(st.moves) / float64(st.found)
		}
		fmt.Fprintf(tw, "%dx%d\t%d\t%d\t%.1f\t%.1f\t%v\t%v\t\n",
			st.side, st.side, st.plans, st.found, avgMoves,
			float64(st.expanded)/float64(st.plans),
			(st.searching / time.Duration(st.plans)).Round(time.Microsecond),
			st.wall.Round(time.Microsecond))
	}
	tw.Flush()
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
