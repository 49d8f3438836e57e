package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/quantaops/pulsekit/core/events"
	coremetrics "github.com/quantaops/pulsekit/core/metrics"
)

// PromSink records build and render events in Prometheus metrics.
type PromSink struct {
	builds   *prometheus.CounterVec
	renders  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPromSink registers toolkit metrics on the default Prometheus registerer.
// The Prometheus server should be started separately.
func NewPromSink(cfg coremetrics.Config) (*PromSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	builds := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_builds_total",
		Help: "Total number of schedule build attempts",
	}, []string{"success"})
	renders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_renders_total",
		Help: "Total number of schedule render attempts",
	}, []string{"format", "success"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "schedule_render_duration_seconds",
		Help:    "Time spent rendering a schedule",
		Buckets: prometheus.DefBuckets,
	}, []string{"format"})

	if err := reg.Register(builds); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			builds = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(renders); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			renders = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{builds: builds, renders: renders, duration: duration}, nil
}

// RecordBuild increments the build counter.
func (s *PromSink) RecordBuild(ev events.BuildEvent) error {
	s.builds.WithLabelValues(strconv.FormatBool(ev.Err == nil)).Inc()
	return nil
}

// RecordRender increments the render counter and observes latency.
func (s *PromSink) RecordRender(ev events.RenderEvent) error {
	s.renders.WithLabelValues(ev.Format, strconv.FormatBool(ev.Err == nil)).Inc()
	if ev.Err == nil {
		s.duration.WithLabelValues(ev.Format).Observe(ev.Elapsed.Seconds())
	}
	return nil
}
