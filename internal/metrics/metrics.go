// Package metrics exposes prometheus collectors for rating recalculations.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeBusy    = "busy"
)

type Recalculation struct {
	runs      *prometheus.CounterVec
	duration  prometheus.Histogram
	processed prometheus.Counter
	skipped   prometheus.Counter
}

func NewRecalculation(reg prometheus.Registerer) *Recalculation {
	m := &Recalculation{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "elo_recalculations_total",
			Help: "Full rating recalculations by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "elo_recalculation_duration_seconds",
			Help:    "Wall time of successful recalculations.",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
		processed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "elo_fights_processed_total",
			Help: "Fights replayed by recalculations.",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "elo_fights_skipped_total",
			Help: "Fights skipped because a fighter had no rating record.",
		}),
	}
	reg.MustRegister(m.runs, m.duration, m.processed, m.skipped)
	return m
}

func (m *Recalculation) ObserveSuccess(d time.Duration, processed, skipped int) {
	m.runs.WithLabelValues(OutcomeSuccess).Inc()
	m.duration.Observe(d.Seconds())
	m.processed.Add(float64(processed))
	m.skipped.Add(float64(skipped))
}

func (m *Recalculation) ObserveOutcome(outcome string) {
	m.runs.WithLabelValues(outcome).Inc()
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

var Module = fx.Options(
	fx.Provide(NewRegistry),
	fx.Provide(func(reg *prometheus.Registry) prometheus.Registerer { return reg }),
	fx.Provide(NewRecalculation),
)
