package planner

import (
	"context"
	"fmt"
	"time"

	astar "github.com/pdrpinto/gridastar"
)

// checkInterval is how many expansions a worker runs between context and
// deadline checks.
const checkInterval = 64

// planTask represents a request from Plan to the workers.
type planTask struct {
	ctx     context.Context
	request Request
	reply   chan planOutcome // buffered, the worker never blocks on it
}

// planOutcome is the worker's answer to a planTask.
type planOutcome struct {
	result  astar.Result
	err     error
	elapsed time.Duration
}

func (p *Planner) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case task := <-p.tasks:
			p.metrics.inFlight.Inc()
			task.reply <- p.execute(task.ctx, task.request)
			p.metrics.inFlight.Dec()
		}
	}
}

// execute runs one search on its own Stepper, enforcing the expansion and
// time ceilings between steps.
func (p *Planner) execute(ctx context.Context, req Request) planOutcome {
	started := time.Now()
	stepper, err := astar.NewStepper(req.Grid, req.Start, req.Goal)
	if err != nil {
		return planOutcome{err: err, elapsed: time.Since(started)}
	}

	var deadline time.Time
	if p.opts.Timeout > 0 {
		deadline = started.Add(p.opts.Timeout)
	}
	for {
		snap := stepper.Step()
		if snap.Done {
			break
		}
		if p.opts.MaxExpansions > 0 && snap.StepIndex >= p.opts.MaxExpansions {
			return planOutcome{
				result:  stepper.Result(),
				err:     fmt.Errorf("%w: expansion limit %d reached", ErrAborted, p.opts.MaxExpansions),
				elapsed: time.Since(started),
			}
		}
		if snap.StepIndex%checkInterval != 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return planOutcome{
				result:  stepper.Result(),
				err:     fmt.Errorf("%w: %w", ErrAborted, err),
				elapsed: time.Since(started),
			}
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return planOutcome{
				result:  stepper.Result(),
				err:     fmt.Errorf("%w: timeout %v exceeded", ErrAborted, p.opts.Timeout),
				elapsed: time.Since(started),
			}
		}
	}
	return planOutcome{result: stepper.Result(), elapsed: time.Since(started)}
}
