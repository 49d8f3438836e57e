package schedule

import (
	"fmt"
	"sort"

	"github.com/quantaops/pulsekit/core/model"
)

// interval is a half-open occupied span [Start, Stop) on a channel.
// Zero-duration instructions produce point intervals with Start == Stop;
// those may share a boundary with any neighbour.
type interval struct {
	Start int64
	Stop  int64
}

func (iv interval) overlaps(other interval) bool {
	return iv.Start < other.Stop && other.Start < iv.Stop
}

// intervalSet is a start-sorted list of non-overlapping intervals.
type intervalSet []interval

// conflict returns the first existing interval overlapping iv, if any.
func (s intervalSet) conflict(iv interval) (interval, bool) {
	// binary search for the first interval that could reach iv
	i := sort.Search(len(s), func(i int) bool { return s[i].Stop > iv.Start })
	for ; i < len(s) && s[i].Start < iv.Stop; i++ {
		if s[i].overlaps(iv) {
			return s[i], true
		}
	}
	return interval{}, false
}

// insert adds iv keeping the set sorted by (Start, Stop). The caller must
// have checked for conflicts first. For conflict-free sets the secondary
// Stop key keeps stops non-decreasing even when a point interval shares the
// start of a longer span, which the binary search in conflict relies on.
func (s intervalSet) insert(iv interval) intervalSet {
	i := sort.Search(len(s), func(i int) bool {
		return s[i].Start > iv.Start || (s[i].Start == iv.Start && s[i].Stop > iv.Stop)
	})
	out := make(intervalSet, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, iv)
	return append(out, s[i:]...)
}

func (s intervalSet) shift(dt int64) intervalSet {
	out := make(intervalSet, len(s))
	for i, iv := range s {
		out[i] = interval{Start: iv.Start + dt, Stop: iv.Stop + dt}
	}
	return out
}

// OverlapError reports a timeslot collision on a channel.
type OverlapError struct {
	Channel  model.Channel
	New      [2]int64
	Existing [2]int64
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("schedule overlap on %s: [%d, %d) collides with [%d, %d)",
		e.Channel.Name(), e.New[0], e.New[1], e.Existing[0], e.Existing[1])
}
