package metrics

import (
	"context"

	"github.com/quantaops/pulsekit/core/events"
	coremetrics "github.com/quantaops/pulsekit/core/metrics"
	"github.com/quantaops/pulsekit/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records metrics for
// build and render events. It stops when the context is canceled.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, sink coremetrics.Sink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				switch e := ev.(type) {
				case events.BuildEvent:
					_ = sink.RecordBuild(e)
				case events.RenderEvent:
					_ = sink.RecordRender(e)
				}
			}
		}
	}()
}
