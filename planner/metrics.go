package planner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for gridastar_plans_total.
const (
	resultFound    = "found"
	resultNotFound = "not_found"
	resultAborted  = "aborted"
	resultInvalid  = "invalid"
)

type metrics struct {
	plans      *prometheus.CounterVec
	duration   prometheus.Histogram
	expansions prometheus.Histogram
	pathLength prometheus.Histogram
	inFlight   prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		plans: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gridastar_plans_total",
			Help: "Total plans by result",
		}, []string{"result"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridastar_plan_duration_seconds",
			Help:    "Plan duration in seconds, queueing excluded",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
		expansions: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridastar_plan_expanded_nodes",
			Help:    "Nodes expanded per plan",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}),
		pathLength: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridastar_plan_path_length",
			Help:    "Moves in found paths",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "gridastar_plans_in_flight",
			Help: "Plans currently running on a worker",
		}),
	}
}
