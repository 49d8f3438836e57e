// Package metrics defines the observability contracts for the toolkit.
// Sinks live under infra; core and app code records through these
// interfaces only.
package metrics

import "github.com/quantaops/pulsekit/core/events"

// BuildRecorder records schedule build outcomes.
type BuildRecorder interface {
	RecordBuild(ev events.BuildEvent) error
}

// RenderRecorder records render attempts and their latency.
type RenderRecorder interface {
	RecordRender(ev events.RenderEvent) error
}

// Sink aggregates all recorder interfaces a backend may implement.
type Sink interface {
	BuildRecorder
	RenderRecorder
}

// NopSink discards every record.
type NopSink struct{}

func (NopSink) RecordBuild(events.BuildEvent) error   { return nil }
func (NopSink) RecordRender(events.RenderEvent) error { return nil }

// Config selects and configures metric backends.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = ":9090"
	}
	if c.InfluxURL == "" {
		c.InfluxURL = "http://localhost:8086"
	}
	if c.InfluxBucket == "" {
		c.InfluxBucket = "pulsekit"
	}
}
