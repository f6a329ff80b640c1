// Package metrics collects pipeline metrics and exposes them to Prometheus.
package metrics

import (
	"log/slog"
	"net/http"
	"time"

	"circlecheck/config"
	"circlecheck/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "circlecheck"

// Collector is the Prometheus implementation of service.MetricsRecorder
type Collector struct {
	events      *prometheus.CounterVec
	transitions *prometheus.CounterVec
	pushSent    prometheus.Counter
	pushFailed  prometheus.Counter
	latency     prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "location_events_total",
			Help:      "Location updates processed, by outcome.",
		}, []string{"outcome"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geofence_transitions_total",
			Help:      "Detected geofence transitions, by kind.",
		}, []string{"kind"}),
		pushSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_messages_sent_total",
			Help:      "Push messages accepted by the gateway.",
		}),
		pushFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_messages_failed_total",
			Help:      "Push messages rejected by or never delivered to the gateway.",
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "location_processing_seconds",
			Help:      "Time to process one location update.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.events,
		c.transitions,
		c.pushSent,
		c.pushFailed,
		c.latency,
	)

	return c
}

// RecordEvent counts a processed location update.
func (c *Collector) RecordEvent(outcome string) {
	c.events.WithLabelValues(outcome).Inc()
}

// RecordTransition counts a detected transition.
func (c *Collector) RecordTransition(kind string) {
	c.transitions.WithLabelValues(kind).Inc()
}

// RecordPushResult adds the outcome of one push batch.
func (c *Collector) RecordPushResult(sent, failed int) {
	c.pushSent.Add(float64(sent))
	c.pushFailed.Add(float64(failed))
}

// RecordProcessingLatency observes the duration of one pipeline pass.
func (c *Collector) RecordProcessingLatency(duration time.Duration) {
	c.latency.Observe(duration.Seconds())
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// NewRegistry creates a registry carrying the Go runtime and process collectors
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// Params holds dependencies for the metrics recorder, injected by Fx
type Params struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry
}

// Result exposes the recorder and the gatherer backing the scrape endpoint
type Result struct {
	fx.Out

	Recorder service.MetricsRecorder
	Gatherer prometheus.Gatherer
}

// New provides the recorder configured by metrics.enabled
func New(params Params) Result {
	if params.Config.Metrics == nil || !params.Config.Metrics.Enabled {
		params.Logger.Info("Metrics disabled, using no-op recorder")

		return Result{Recorder: noopRecorder{}, Gatherer: params.Registry}
	}

	return Result{Recorder: NewCollector(params.Registry), Gatherer: params.Registry}
}

type noopRecorder struct{}

func (noopRecorder) RecordEvent(string)                    {}
func (noopRecorder) RecordTransition(string)               {}
func (noopRecorder) RecordPushResult(int, int)             {}
func (noopRecorder) RecordProcessingLatency(time.Duration) {}
