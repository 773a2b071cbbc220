package planner

import (
	"context"
	"sync"
	"testing"

	"github.com/go-quicktest/qt"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	astar "github.com/pdrpinto/gridastar"
)

// recordingTracer keeps the spans it starts so tests can inspect them.
type recordingTracer struct {
	noop.Tracer

	mu    sync.Mutex
	spans []*recordingSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	s := &recordingSpan{name: name, attrs: cfg.Attributes()}
	t.mu.Lock()
	t.spans = append(t.spans, s)
	t.mu.Unlock()
	return trace.ContextWithSpan(ctx, s), s
}

type recordingSpan struct {
	noop.Span

	name        string
	attrs       []attribute.KeyValue
	code        codes.Code
	description string
}

func (s *recordingSpan) SetStatus(code codes.Code, description string) {
	s.code, s.description = code, description
}

func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) {
	s.attrs = append(s.attrs, kv...)
}

func (s *recordingSpan) attr(key string) (attribute.Value, bool) {
	for _, kv := range s.attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestPlanSpanStatus(t *testing.T) {
	tracer := &recordingTracer{}
	p, _ := newTestPlanner(t, WithTracer(tracer))
	g := openGrid(t, 3, 3)
	_, err := p.Plan(context.Background(), Request{Grid: g, Goal: corner(g)})
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.HasLen(tracer.spans, 1))
	span := tracer.spans[0]
	qt.Assert(t, qt.Equals(span.name, "planner.Plan"))
	qt.Assert(t, qt.Equals(span.code, codes.Ok))
	qt.Assert(t, qt.Equals(span.description, ""))

	result, ok := span.attr("result")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(result.AsString(), resultFound))
	start, ok := span.attr("start")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(start.AsString(), astar.Position{}.String()))
}

func TestPlanSpanNotFound(t *testing.T) {
	tracer := &recordingTracer{}
	p, _ := newTestPlanner(t, WithTracer(tracer))
	g := openGrid(t, 3, 3)
	for col := 0; col < 3; col++ {
		qt.Assert(t, qt.IsNil(g.SetObstacle(1, col)))
	}
	_, err := p.Plan(context.Background(), Request{Grid: g, Goal: corner(g)})
	qt.Assert(t, qt.IsNil(err))

	span := tracer.spans[0]
	qt.Assert(t, qt.Equals(span.code, codes.Ok))
	result, _ := span.attr("result")
	qt.Assert(t, qt.Equals(result.AsString(), resultNotFound))
}
