package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/quantaops/pulsekit/api"
	"github.com/quantaops/pulsekit/config"
	coremetrics "github.com/quantaops/pulsekit/core/metrics"
	"github.com/quantaops/pulsekit/infra/logger"
	"github.com/quantaops/pulsekit/infra/metrics"
	"github.com/quantaops/pulsekit/internal/eventbus"
)

// Service runs the render HTTP server with its observability wiring.
type Service struct {
	cfg *config.Config
	bus eventbus.EventBus
	log logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	return &Service{
		cfg: cfg,
		bus: eventbus.New(),
		log: logger.New("service"),
	}, nil
}

// Run starts the servers and blocks until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	var sinks []coremetrics.Sink
	if s.cfg.Metrics.PrometheusEnabled {
		prom, err := metrics.NewPromSink(s.cfg.Metrics)
		if err != nil {
			return fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, prom)
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	if s.cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(s.cfg.Metrics))
	}

	var sink coremetrics.Sink
	switch len(sinks) {
	case 0:
		sink = coremetrics.NopSink{}
	case 1:
		sink = sinks[0]
	default:
		sink = metrics.NewMultiSink(sinks...)
	}
	metrics.StartEventCollector(ctx, s.bus, sink)

	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: api.NewServer(s.cfg.Render, s.bus, s.log),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("server shutdown: %v", err)
		}
	}()

	s.log.Infof("render service listening on %s", s.cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases the event bus.
func (s *Service) Close() error {
	s.bus.Close()
	return nil
}
