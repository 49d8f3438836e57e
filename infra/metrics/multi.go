package metrics

import (
	"errors"

	"github.com/quantaops/pulsekit/core/events"
	coremetrics "github.com/quantaops/pulsekit/core/metrics"
)

// MultiSink fans records out to several sinks, joining their errors.
type MultiSink struct {
	sinks []coremetrics.Sink
}

// NewMultiSink combines the given sinks into one.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordBuild(ev events.BuildEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordBuild(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordRender(ev events.RenderEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordRender(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
