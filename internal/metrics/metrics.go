// Package metrics records evaluation counters and latencies with Prometheus.
//
// Evaluations are one-shot computations, so the CLI dumps the registry to a
// node_exporter textfile instead of serving /metrics.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "bhptsur"

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Recorder is what the evaluation pipeline reports to.
type Recorder interface {
	// ObserveEvaluation records one Evaluate call and its outcome.
	ObserveEvaluation(model string, elapsed time.Duration, err error)

	// ObserveStage records the wall time of a single pipeline stage.
	ObserveStage(model, stage string, elapsed time.Duration)

	// ObserveModes records how many raw modes were generated.
	ObserveModes(model string, n int)

	// ObserveWarning counts a non-fatal warning by kind.
	ObserveWarning(model, kind string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveEvaluation(string, time.Duration, error) {}
func (nopRecorder) ObserveStage(string, string, time.Duration)     {}
func (nopRecorder) ObserveModes(string, int)                       {}
func (nopRecorder) ObserveWarning(string, string)                  {}

// NewNopRecorder returns a Recorder that drops everything.
func NewNopRecorder() Recorder { return nopRecorder{} }

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	stages      *prometheus.HistogramVec
	modes       *prometheus.CounterVec
	warnings    *prometheus.CounterVec
}

// NewCollector registers the evaluation metrics on a fresh registry.
// An empty namespace selects DefaultNamespace.
func NewCollector(namespace string) (*Collector, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	c := &Collector{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Surrogate evaluations by model and status.",
		}, []string{"model", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Wall time of a full surrogate evaluation.",
			Buckets:   prometheus.ExponentialBuckets(1e-4, 4, 10),
		}, []string{"model"}),
		stages: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall time of each pipeline stage.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"model", "stage"}),
		modes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "raw_modes_total",
			Help:      "Raw modes reconstructed from fits.",
		}, []string{"model"}),
		warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "warnings_total",
			Help:      "Non-fatal evaluation warnings by kind.",
		}, []string{"model", "kind"}),
	}
	for _, col := range []prometheus.Collector{c.evaluations, c.duration, c.stages, c.modes, c.warnings} {
		if err := c.registry.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// Registry exposes the underlying registry, e.g. for a promhttp handler.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveEvaluation implements Recorder.
func (c *Collector) ObserveEvaluation(model string, elapsed time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	c.evaluations.WithLabelValues(model, status).Inc()
	c.duration.WithLabelValues(model).Observe(elapsed.Seconds())
}

// ObserveStage implements Recorder.
func (c *Collector) ObserveStage(model, stage string, elapsed time.Duration) {
	c.stages.WithLabelValues(model, stage).Observe(elapsed.Seconds())
}

// ObserveModes implements Recorder.
func (c *Collector) ObserveModes(model string, n int) {
	c.modes.WithLabelValues(model).Add(float64(n))
}

// ObserveWarning implements Recorder.
func (c *Collector) ObserveWarning(model, kind string) {
	c.warnings.WithLabelValues(model, kind).Inc()
}

// WriteTextfile dumps the registry in the text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
