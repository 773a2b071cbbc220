// Package planner serves concurrent path requests over astar grids.
//
// Each request runs on a worker from a fixed pool with its own search state,
// so requests never share anything but the (read-only) grids they name. The
// planner is also where limits on a single search live: an expansion ceiling,
// a timeout and context cancellation all end a search with ErrAborted.
//
// Plans are logged with log/slog, counted in Prometheus metrics and traced
// with OpenTelemetry spans.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	astar "github.com/pdrpinto/gridastar"
)

var (
	// ErrAborted is returned when a search is stopped before it finished,
	// by the expansion ceiling, the timeout or the caller's context.
	ErrAborted = errors.New("search aborted")

	// ErrClosed is returned by Plan after Close.
	ErrClosed = errors.New("planner closed")

	// ErrNoGrid is returned for a request without a grid.
	ErrNoGrid = errors.New("request has no grid")
)

// Request asks for a path from Start to Goal on Grid. The grid must not be
// modified until the request completes.
type Request struct {
	Grid        *astar.Grid
	Start, Goal astar.Position
}

// Response is the outcome of one request in PlanAll.
type Response struct {
	Request Request
	Result  astar.Result
	Err     error
	Elapsed time.Duration // time spent searching, queueing excluded
}

// Planner runs path requests on a pool of workers.
type Planner struct {
	opts    Options
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *metrics

	tasks     chan planTask
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New starts a planner and its workers.
func New(options ...Option) *Planner {
	opts := defaultOptions()
	for _, option := range options {
		option(&opts)
	}
	if opts.NumberOfWorkers < 1 {
		opts.NumberOfWorkers = 1
	}

	p := &Planner{
		opts:    opts,
		logger:  opts.Logger,
		tracer:  opts.Tracer,
		metrics: newMetrics(opts.Registerer),
		tasks:   make(chan planTask),
		done:    make(chan struct{}),
	}
	if p.logger == nil {
		p.logger = slog.Default().With(slog.String("component", "planner"))
	}
	if p.tracer == nil {
		p.tracer = otel.Tracer("github.com/pdrpinto/gridastar/planner")
	}

	p.wg.Add(opts.NumberOfWorkers)
	for i := 0; i < opts.NumberOfWorkers; i++ {
		go p.worker()
	}
	return p
}

// Close stops the workers after their current search. Plan calls made after
// Close fail with ErrClosed.
func (p *Planner) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
		p.wg.Wait()
	})
}

// Plan finds a path for req. A search that runs out of frontier returns a
// Result with Found false and a nil error. Invalid endpoints fail with
// astar.ErrInvalidEndpoint, and searches stopped early with ErrAborted.
func (p *Planner) Plan(ctx context.Context, req Request) (astar.Result, error) {
	resp := p.plan(ctx, req)
	return resp.Result, resp.Err
}

// PlanAll runs all requests concurrently and returns their responses in
// request order.
func (p *Planner) PlanAll(ctx context.Context, reqs []Request) []Response {
	out := make([]Response, len(reqs))
	var wg sync.WaitGroup
	wg.Add(len(reqs))
	for i, req := range reqs {
		go func() {
			defer wg.Done()
			out[i] = p.plan(ctx, req)
		}()
	}
	wg.Wait()
	return out
}

func (p *Planner) plan(ctx context.Context, req Request) Response {
	resp := Response{Request: req}
	if req.Grid == nil {
		resp.Err = ErrNoGrid
		return resp
	}

	ctx, span := p.tracer.Start(ctx, "planner.Plan", trace.WithAttributes(
		attribute.Int("grid.rows", req.Grid.Rows()),
		attribute.Int("grid.cols", req.Grid.Cols()),
		attribute.String("start", req.Start.String()),
		attribute.String("goal", req.Goal.String()),
	))
	defer span.End()

	if err := ctx.Err(); err != nil {
		resp.Err = fmt.Errorf("%w: %w", ErrAborted, err)
		p.observe(span, resp)
		return resp
	}

	task := planTask{ctx: ctx, request: req, reply: make(chan planOutcome, 1)}
	select {
	case p.tasks <- task:
		select {
		case out := <-task.reply:
			resp.Result, resp.Err, resp.Elapsed = out.result, out.err, out.elapsed
		case <-ctx.Done():
			resp.Err = fmt.Errorf("%w: %w", ErrAborted, ctx.Err())
		}
	case <-p.done:
		resp.Err = ErrClosed
	case <-ctx.Done():
		resp.Err = fmt.Errorf("%w: %w", ErrAborted, ctx.Err())
	}

	p.observe(span, resp)
	return resp
}

func (p *Planner) observe(span trace.Span, resp Response) {
	req, res := resp.Request, resp.Result
	attrs := []any{
		slog.Int("rows", req.Grid.Rows()),
		slog.Int("cols", req.Grid.Cols()),
		slog.String("start", req.Start.String()),
		slog.String("goal", req.Goal.String()),
		slog.Int("expanded", res.ExpandedNodes),
		slog.Duration("elapsed", resp.Elapsed),
	}

	switch err := resp.Err; {
	case err == nil:
		result := resultNotFound
		if res.Found {
			result = resultFound
			p.metrics.pathLength.Observe(float64(res.Path.Len()))
		}
		p.metrics.plans.WithLabelValues(result).Inc()
		p.metrics.duration.Observe(resp.Elapsed.Seconds())
		p.metrics.expansions.Observe(float64(res.ExpandedNodes))
		span.SetAttributes(
			attribute.Bool("found", res.Found),
			attribute.Int("expanded", res.ExpandedNodes),
			attribute.Int("path.length", res.Path.Len()),
			attribute.String("result", result),
		)
		span.SetStatus(codes.Ok, "")
		p.logger.Debug("plan complete", append(attrs, slog.Bool("found", res.Found), slog.Int("length", res.Path.Len()))...)
	case errors.Is(err, astar.ErrInvalidEndpoint):
		p.metrics.plans.WithLabelValues(resultInvalid).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid endpoint")
		p.logger.Info("plan rejected", append(attrs, slog.String("error", err.Error()))...)
	case errors.Is(err, ErrAborted):
		p.metrics.plans.WithLabelValues(resultAborted).Inc()
		p.metrics.expansions.Observe(float64(res.ExpandedNodes))
		span.RecordError(err)
		span.SetStatus(codes.Error, "aborted")
		p.logger.Warn("plan aborted", append(attrs, slog.String("error", err.Error()))...)
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.logger.Error("plan failed", append(attrs, slog.String("error", err.Error()))...)
	}
}
