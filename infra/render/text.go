package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/quantaops/pulsekit/core/schedule"
)

// TextRenderer writes a time-ordered instruction listing followed by a
// per-channel occupancy summary.
type TextRenderer struct{}

var _ Renderer = (*TextRenderer)(nil)

func (r *TextRenderer) Render(w io.Writer, s *schedule.Schedule) error {
	if _, err := fmt.Fprintf(w, "schedule %s: %d instructions, duration %d dt\n\n",
		s.Name(), s.Len(), s.Duration()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "time\tstop\tchannel\tinstruction")
	for _, e := range s.Instructions() {
		for _, ch := range e.Inst.Channels() {
			fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", e.Time, e.Stop(), ch.Name(), e.Inst.Name())
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "channel\tstart\tstop\tbusy")
	for _, ch := range s.Channels() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", ch.Name(), s.ChStart(ch), s.ChStop(ch), s.ChDuration(ch))
	}
	return tw.Flush()
}
