// Package render turns schedules into human-readable output. The text
// renderer writes a fixed-width listing; the chart renderer produces a
// self-contained HTML page with one waveform trace per channel.
package render

import (
	"io"

	"github.com/quantaops/pulsekit/core/schedule"
)

// Renderer draws a schedule to a writer.
type Renderer interface {
	Render(w io.Writer, s *schedule.Schedule) error
}

// Format names a built-in renderer.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// New returns the renderer for the given format, or false when the format is
// unknown.
func New(f Format) (Renderer, bool) {
	switch f {
	case FormatText:
		return &TextRenderer{}, true
	case FormatHTML:
		return &ChartRenderer{}, true
	default:
		return nil, false
	}
}
