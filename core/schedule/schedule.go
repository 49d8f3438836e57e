package schedule

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/quantaops/pulsekit/core/instruction"
	"github.com/quantaops/pulsekit/core/model"
)

// Entry is a placed instruction: Inst starts exactly at Time.
type Entry struct {
	Time int64
	Inst instruction.Instruction
}

// Stop returns the tick at which the entry's instruction finishes.
func (e Entry) Stop() int64 { return e.Time + e.Inst.Duration() }

// Schedule is an immutable, named collection of timed instructions placed on
// channels. Every mutating operation returns a new Schedule and leaves the
// receiver untouched. Per-channel occupied intervals are tracked so that
// conflicting placements are rejected at composition time.
type Schedule struct {
	name    string
	entries []Entry
	slots   map[model.Channel]intervalSet
}

var (
	ErrNegativeTime   = errors.New("schedule time must not be negative")
	ErrNilSchedule    = errors.New("schedule must not be nil")
	ErrNilInstruction = errors.New("instruction must not be nil")
)

// New creates an empty schedule. An empty name is replaced with a generated
// one so logs and renders can always refer to the schedule.
func New(name string) *Schedule {
	if name == "" {
		name = "sched-" + uuid.NewString()[:8]
	}
	return &Schedule{name: name, slots: map[model.Channel]intervalSet{}}
}

// Name returns the schedule name.
func (s *Schedule) Name() string { return s.name }

// WithName returns a copy of the schedule under a new name.
func (s *Schedule) WithName(name string) *Schedule {
	out := s.clone()
	out.name = name
	return out
}

func (s *Schedule) clone() *Schedule {
	out := &Schedule{
		name:    s.name,
		entries: append([]Entry(nil), s.entries...),
		slots:   make(map[model.Channel]intervalSet, len(s.slots)),
	}
	for ch, set := range s.slots {
		out.slots[ch] = append(intervalSet(nil), set...)
	}
	return out
}

// Insert places inst so that it starts exactly at t. It fails with an
// *OverlapError if the instruction's interval collides with anything already
// occupying one of its channels.
func (s *Schedule) Insert(t int64, inst instruction.Instruction) (*Schedule, error) {
	if inst == nil {
		return nil, ErrNilInstruction
	}
	if t < 0 {
		return nil, fmt.Errorf("insert %s at %d: %w", inst.Name(), t, ErrNegativeTime)
	}
	if inst.Duration() < 0 {
		return nil, fmt.Errorf("insert %s: %w", inst.Name(), instruction.ErrNegativeDuration)
	}
	out := s.clone()
	if err := out.place(Entry{Time: t, Inst: inst}); err != nil {
		return nil, err
	}
	return out, nil
}

// InsertSchedule places every entry of sub shifted by t. Inserting an empty
// schedule is a no-op. The operation is atomic: on overlap the receiver's
// entries are returned unchanged.
func (s *Schedule) InsertSchedule(t int64, sub *Schedule) (*Schedule, error) {
	if sub == nil {
		return nil, ErrNilSchedule
	}
	if t < 0 {
		return nil, fmt.Errorf("insert schedule %s at %d: %w", sub.name, t, ErrNegativeTime)
	}
	out := s.clone()
	for _, e := range sub.entries {
		if err := out.place(Entry{Time: e.Time + t, Inst: e.Inst}); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// place mutates the schedule in-place; callers operate on clones.
func (s *Schedule) place(e Entry) error {
	iv := interval{Start: e.Time, Stop: e.Stop()}
	for _, ch := range e.Inst.Channels() {
		if hit, ok := s.slots[ch].conflict(iv); ok {
			return &OverlapError{
				Channel:  ch,
				New:      [2]int64{iv.Start, iv.Stop},
				Existing: [2]int64{hit.Start, hit.Stop},
			}
		}
	}
	for _, ch := range e.Inst.Channels() {
		s.slots[ch] = s.slots[ch].insert(iv)
	}
	i := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].Time > e.Time })
	s.entries = append(s.entries, Entry{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = e
	return nil
}

// Shift translates every start time by dt without altering relative order.
// A negative dt is rejected if it would move any instruction before tick 0.
func (s *Schedule) Shift(dt int64) (*Schedule, error) {
	if len(s.entries) > 0 && s.entries[0].Time+dt < 0 {
		return nil, fmt.Errorf("shift by %d: %w", dt, ErrNegativeTime)
	}
	out := s.clone()
	for i := range out.entries {
		out.entries[i].Time += dt
	}
	for ch, set := range out.slots {
		out.slots[ch] = set.shift(dt)
	}
	return out, nil
}

// Append merges sub behind the receiver. The offset applied to sub is the
// maximum stop time among the channels the two schedules share; on channels
// unique to sub this leaves it starting at the shared offset, or at 0 when
// no channel is shared at all.
func (s *Schedule) Append(sub *Schedule) *Schedule {
	var offset int64
	for ch := range sub.slots {
		if _, shared := s.slots[ch]; !shared {
			continue
		}
		if stop := s.ChStop(ch); stop > offset {
			offset = stop
		}
	}
	out, err := s.InsertSchedule(offset, sub)
	if err != nil {
		// the offset clears every shared channel, so a conflict here is a
		// bookkeeping bug
		panic(fmt.Sprintf("append %s: %v", sub.name, err))
	}
	return out
}

// AppendInst appends a single instruction using the same alignment rule.
func (s *Schedule) AppendInst(inst instruction.Instruction) *Schedule {
	var offset int64
	for _, ch := range inst.Channels() {
		if stop := s.ChStop(ch); stop > offset {
			offset = stop
		}
	}
	out, err := s.Insert(offset, inst)
	if err != nil {
		panic(fmt.Sprintf("append %s: %v", inst.Name(), err))
	}
	return out
}

// StartTime returns the earliest occupied tick, 0 for an empty schedule.
func (s *Schedule) StartTime() int64 {
	if len(s.entries) == 0 {
		return 0
	}
	return s.entries[0].Time
}

// StopTime returns the tick at which the last instruction finishes.
func (s *Schedule) StopTime() int64 {
	var stop int64
	for _, e := range s.entries {
		if t := e.Stop(); t > stop {
			stop = t
		}
	}
	return stop
}

// Duration returns the total extent of the schedule.
func (s *Schedule) Duration() int64 { return s.StopTime() }

// ChStart returns the first occupied tick on ch, 0 if the channel is unused.
func (s *Schedule) ChStart(ch model.Channel) int64 {
	set := s.slots[ch]
	if len(set) == 0 {
		return 0
	}
	return set[0].Start
}

// ChStop returns the last occupied tick on ch, 0 if the channel is unused.
func (s *Schedule) ChStop(ch model.Channel) int64 {
	set := s.slots[ch]
	var stop int64
	for _, iv := range set {
		if iv.Stop > stop {
			stop = iv.Stop
		}
	}
	return stop
}

// ChDuration returns the occupied extent of ch.
func (s *Schedule) ChDuration(ch model.Channel) int64 {
	return s.ChStop(ch) - s.ChStart(ch)
}

// Channels lists every channel the schedule touches, ordered by kind then
// index.
func (s *Schedule) Channels() []model.Channel {
	out := make([]model.Channel, 0, len(s.slots))
	for ch := range s.slots {
		out = append(out, ch)
	}
	sort.Slice(out, func(i, j int) bool { return model.CompareChannels(out[i], out[j]) < 0 })
	return out
}

// Instructions returns the placed entries in time order.
func (s *Schedule) Instructions() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Len returns the number of placed instructions.
func (s *Schedule) Len() int { return len(s.entries) }

// String summarises the schedule for logs.
func (s *Schedule) String() string {
	return fmt.Sprintf("Schedule(%s, %d instructions, duration %d)", s.name, len(s.entries), s.Duration())
}
