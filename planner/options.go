package planner

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

// Options defines parameters for a Planner.
type Options struct {
	// NumberOfWorkers is the number of searches run concurrently.
	// Default: runtime.NumCPU()
	NumberOfWorkers int

	// MaxExpansions aborts a search after this many node expansions.
	// Zero means no limit.
	MaxExpansions int

	// Timeout aborts a search that runs longer than this.
	// Zero means no limit.
	Timeout time.Duration

	// Logger receives plan logs.
	// Default: slog.Default() with component=planner
	Logger *slog.Logger

	// Registerer receives the planner's metrics. Nil leaves them
	// unregistered.
	Registerer prometheus.Registerer

	// Tracer records a span per plan.
	// Default: the global OpenTelemetry tracer provider.
	Tracer trace.Tracer
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many worker goroutines run searches.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithMaxExpansions bounds the number of expansions of a single search.
func WithMaxExpansions(n int) Option {
	return func(options *Options) { options.MaxExpansions = n }
}

// WithTimeout bounds the wall-clock time of a single search.
func WithTimeout(d time.Duration) Option {
	return func(options *Options) { options.Timeout = d }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithRegisterer registers the planner's metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(options *Options) { options.Registerer = reg }
}

// WithTracer sets the tracer used for plan spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(options *Options) { options.Tracer = tracer }
}

func defaultOptions() Options {
	return Options{
		NumberOfWorkers: runtime.NumCPU(),
	}
}
