package render

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/quantaops/pulsekit/core/instruction"
	"github.com/quantaops/pulsekit/core/model"
	"github.com/quantaops/pulsekit/core/schedule"
)

// ChartRenderer produces an HTML line chart via go-echarts. Channels are
// stacked vertically on a shared time axis; each play instruction contributes
// the real part of its envelope.
type ChartRenderer struct {
	Theme     string
	Width     string
	Height    string
	MaxPoints int
}

var _ Renderer = (*ChartRenderer)(nil)

const defaultMaxPoints = 4000

// channelGap is the vertical distance between stacked channel baselines.
// Envelope amplitudes are bounded by 1, so a gap of 2.2 keeps traces apart.
const channelGap = 2.2

func (r *ChartRenderer) Render(w io.Writer, s *schedule.Schedule) error {
	maxPoints := r.MaxPoints
	if maxPoints <= 0 {
		maxPoints = defaultMaxPoints
	}
	width := r.Width
	if width == "" {
		width = "1200px"
	}
	height := r.Height
	if height == "" {
		height = "600px"
	}

	dur := s.Duration()
	if dur == 0 {
		dur = 1
	}
	stride := 1
	if dur > int64(maxPoints) {
		stride = int(math.Ceil(float64(dur) / float64(maxPoints)))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("Schedule %s", s.Name()),
			Theme:     r.Theme,
			Width:     width,
			Height:    height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    s.Name(),
			Subtitle: fmt.Sprintf("%d instructions, duration %d dt", s.Len(), s.Duration()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "time (dt)"}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(false)}),
	)

	xs := make([]int64, 0, int(dur)/stride+1)
	for t := int64(0); t < dur; t += int64(stride) {
		xs = append(xs, t)
	}
	line.SetXAxis(xs)

	for i, ch := range s.Channels() {
		trace := channelTrace(s, ch, dur)
		offset := float64(len(s.Channels())-1-i) * channelGap
		data := make([]opts.LineData, 0, len(xs))
		for t := int64(0); t < dur; t += int64(stride) {
			data = append(data, opts.LineData{Value: trace[t] + offset})
		}
		line.AddSeries(ch.Name(), data, charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))
	}

	return line.Render(w)
}

// channelTrace lays out the real envelope of every play on ch over the full
// schedule duration. Non-play instructions leave the baseline at zero.
func channelTrace(s *schedule.Schedule, ch model.Channel, dur int64) []float64 {
	trace := make([]float64, dur)
	for _, e := range s.Instructions() {
		play, ok := e.Inst.(instruction.Play)
		if !ok || play.Channel != ch {
			continue
		}
		for i, v := range play.Pulse.Samples() {
			t := e.Time + int64(i)
			if t >= 0 && t < dur {
				trace[t] = real(v)
			}
		}
	}
	return trace
}
