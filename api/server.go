// Package api exposes the render service over HTTP. Programs are uploaded in
// the request body and rendered server-side, so a browser pointed at the
// service gets the chart page directly.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/quantaops/pulsekit/config"
	"github.com/quantaops/pulsekit/core/events"
	"github.com/quantaops/pulsekit/core/logger"
	"github.com/quantaops/pulsekit/core/program"
	"github.com/quantaops/pulsekit/core/schedule"
	"github.com/quantaops/pulsekit/infra/render"
	"github.com/quantaops/pulsekit/internal/eventbus"
)

// Server handles program uploads and schedule rendering.
type Server struct {
	cfg config.RenderConfig
	bus eventbus.EventBus
	log logger.Logger
	mux *http.ServeMux
}

// NewServer builds the HTTP surface. bus may be nil when no observability is
// wired.
func NewServer(cfg config.RenderConfig, bus eventbus.EventBus, log logger.Logger) *Server {
	s := &Server{cfg: cfg, bus: bus, log: log, mux: http.NewServeMux()}
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/info", s.handleInfo)
	s.mux.HandleFunc("/healthz", s.handleHealth)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.mux.ServeHTTP(w, r) }

func (s *Server) publish(ev eventbus.Event) {
	if s.bus != nil {
		s.bus.Publish(ev)
	}
}

// decodeProgram reads the request body as YAML or JSON depending on the
// Content-Type header and builds the schedule.
func (s *Server) decodeProgram(r *http.Request) (*schedule.Schedule, error) {
	format := "yaml"
	if ct := r.Header.Get("Content-Type"); ct == "application/json" {
		format = "json"
	}
	p, err := program.Decode(r.Body, format)
	if err != nil {
		return nil, fmt.Errorf("decode program: %w", err)
	}
	sched, err := p.Build()
	ev := events.BuildEvent{Schedule: p.Name, Err: err, Time: time.Now()}
	if err == nil {
		ev.Schedule = sched.Name()
		ev.Instructions = sched.Len()
		ev.Channels = len(sched.Channels())
		ev.Duration = sched.Duration()
	}
	s.publish(ev)
	if err != nil {
		return nil, fmt.Errorf("build program: %w", err)
	}
	return sched, nil
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sched, err := s.decodeProgram(r)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	format := render.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = render.Format(s.cfg.Format)
	}
	var rdr render.Renderer
	switch format {
	case render.FormatText:
		rdr = &render.TextRenderer{}
	case render.FormatHTML:
		rdr = &render.ChartRenderer{
			Theme:     s.cfg.Theme,
			Width:     s.cfg.Width,
			Height:    s.cfg.Height,
			MaxPoints: s.cfg.MaxPoints,
		}
	default:
		s.writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("unknown format %q", format))
		return
	}

	start := time.Now()
	if format == render.FormatText {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	} else {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	err = rdr.Render(w, sched)
	s.publish(events.RenderEvent{
		Schedule: sched.Name(),
		Format:   string(format),
		Elapsed:  time.Since(start),
		Err:      err,
		Time:     time.Now(),
	})
	if err != nil {
		s.log.Errorf("render %s: %v", sched.Name(), err)
	}
}

type infoResponse struct {
	Name         string           `json:"name"`
	Instructions int              `json:"instructions"`
	Duration     int64            `json:"duration"`
	Channels     []channelSummary `json:"channels"`
}

type channelSummary struct {
	Name  string `json:"name"`
	Start int64  `json:"start"`
	Stop  int64  `json:"stop"`
	Busy  int64  `json:"busy"`
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sched, err := s.decodeProgram(r)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp := infoResponse{
		Name:         sched.Name(),
		Instructions: sched.Len(),
		Duration:     sched.Duration(),
	}
	for _, ch := range sched.Channels() {
		resp.Channels = append(resp.Channels, channelSummary{
			Name:  ch.Name(),
			Start: sched.ChStart(ch),
			Stop:  sched.ChStop(ch),
			Busy:  sched.ChDuration(ch),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Errorf("encode info: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) writeJSONError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
