package schedule

import (
	"errors"
	"testing"

	"github.com/quantaops/pulsekit/core/instruction"
	"github.com/quantaops/pulsekit/core/model"
	"github.com/quantaops/pulsekit/core/pulse"
)

var (
	d0 = model.DriveChannel{Idx: 0}
	d1 = model.DriveChannel{Idx: 1}
	m0 = model.MeasureChannel{Idx: 0}
)

func play(t *testing.T, s *Schedule, at int64, dur int64, ch model.Channel) *Schedule {
	t.Helper()
	out, err := s.Insert(at, instruction.Play{Pulse: pulse.Constant{Dur: dur, Amp: 0.1}, Channel: ch})
	if err != nil {
		t.Fatalf("insert play at %d on %s: %v", at, ch.Name(), err)
	}
	return out
}

func TestInsertPlacesAtExactTime(t *testing.T) {
	s := play(t, New("t"), 30, 10, d0)
	entries := s.Instructions()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].Time != 30 || entries[0].Stop() != 40 {
		t.Fatalf("entry at [%d, %d), want [30, 40)", entries[0].Time, entries[0].Stop())
	}
	if s.StartTime() != 30 || s.StopTime() != 40 {
		t.Fatalf("start/stop = %d/%d, want 30/40", s.StartTime(), s.StopTime())
	}
}

func TestInsertDoesNotMutateReceiver(t *testing.T) {
	base := play(t, New("t"), 0, 10, d0)
	_ = play(t, base, 100, 10, d0)
	if base.Len() != 1 || base.Duration() != 10 {
		t.Fatalf("receiver mutated: %s", base)
	}
}

func TestInsertOverlapRejected(t *testing.T) {
	s := play(t, New("t"), 0, 10, d0)
	_, err := s.Insert(5, instruction.Play{Pulse: pulse.Constant{Dur: 10, Amp: 0.1}, Channel: d0})
	var oe *OverlapError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OverlapError, got %v", err)
	}
	if oe.Channel != model.Channel(d0) {
		t.Fatalf("overlap on %v, want d0", oe.Channel)
	}
	// same interval on another channel is fine
	if _, err := s.Insert(5, instruction.Play{Pulse: pulse.Constant{Dur: 10, Amp: 0.1}, Channel: d1}); err != nil {
		t.Fatalf("no conflict expected on d1: %v", err)
	}
}

func TestInsertAdjacentIntervalsAllowed(t *testing.T) {
	s := play(t, New("t"), 0, 10, d0)
	s = play(t, s, 10, 10, d0) // shares the boundary tick
	if s.ChDuration(d0) != 20 {
		t.Fatalf("ch duration = %d, want 20", s.ChDuration(d0))
	}
}

func TestZeroDurationSharesBoundary(t *testing.T) {
	s := play(t, New("t"), 0, 10, d0)
	s, err := s.Insert(10, instruction.ShiftPhase{Phase: 1.57, Channel: d0})
	if err != nil {
		t.Fatalf("phase at the boundary must be allowed: %v", err)
	}
	if _, err := s.Insert(5, instruction.ShiftPhase{Phase: 1.57, Channel: d0}); err == nil {
		t.Fatalf("phase inside an occupied interval must be rejected")
	}
}

func TestOverlapDetectedAfterPhaseAtSpanStart(t *testing.T) {
	s := play(t, New("t"), 5, 5, d0)
	s, err := s.Insert(5, instruction.ShiftPhase{Phase: 1.57, Channel: d0})
	if err != nil {
		t.Fatalf("phase at the span start must be allowed: %v", err)
	}
	_, err = s.Insert(7, instruction.Play{Pulse: pulse.Constant{Dur: 1, Amp: 0.1}, Channel: d0})
	var overlap *OverlapError
	if !errors.As(err, &overlap) {
		t.Fatalf("insert at 7 inside [5,10) must fail with an overlap error, got %v", err)
	}
	if overlap.Existing != [2]int64{5, 10} {
		t.Fatalf("conflicting interval %v, want [5,10)", overlap.Existing)
	}
}

func TestInsertScheduleAtomicOnConflict(t *testing.T) {
	base := play(t, New("base"), 0, 10, d0)
	sub := play(t, New("sub"), 0, 10, d1)
	sub = play(t, sub, 0, 10, d0) // collides with base at offset 0
	if _, err := base.InsertSchedule(0, sub); err == nil {
		t.Fatalf("expected overlap error")
	}
	if base.Len() != 1 {
		t.Fatalf("receiver must stay unchanged on failure")
	}
	got, err := base.InsertSchedule(10, sub)
	if err != nil {
		t.Fatalf("insert at 10: %v", err)
	}
	if got.Len() != 3 || got.ChStop(d0) != 20 || got.ChStop(d1) != 20 {
		t.Fatalf("bad merge: %s", got)
	}
}

func TestInsertEmptyScheduleNoop(t *testing.T) {
	base := play(t, New("base"), 0, 10, d0)
	got, err := base.InsertSchedule(50, New("empty"))
	if err != nil {
		t.Fatalf("insert empty: %v", err)
	}
	if got.Len() != 1 || got.Duration() != 10 {
		t.Fatalf("empty insert must be a no-op: %s", got)
	}
}

func TestShiftTranslatesPreservingOrder(t *testing.T) {
	s := play(t, New("t"), 0, 10, d0)
	s = play(t, s, 20, 5, d1)
	shifted, err := s.Shift(100)
	if err != nil {
		t.Fatalf("shift: %v", err)
	}
	entries := shifted.Instructions()
	if entries[0].Time != 100 || entries[1].Time != 120 {
		t.Fatalf("times %d, %d; want 100, 120", entries[0].Time, entries[1].Time)
	}
	if shifted.ChStart(d0) != 100 || shifted.ChStop(d1) != 125 {
		t.Fatalf("slots not shifted: d0 start %d, d1 stop %d", shifted.ChStart(d0), shifted.ChStop(d1))
	}
	// negative shift back is allowed down to tick zero
	back, err := shifted.Shift(-100)
	if err != nil {
		t.Fatalf("shift back: %v", err)
	}
	if back.StartTime() != 0 {
		t.Fatalf("round trip start = %d", back.StartTime())
	}
	if _, err := back.Shift(-1); err == nil {
		t.Fatalf("shift before tick zero must fail")
	}
}

func TestAppendAlignsOnSharedChannel(t *testing.T) {
	first := play(t, New("first"), 0, 100, d0)
	second := play(t, New("second"), 0, 30, d0)
	got := first.Append(second)
	if got.ChStart(d0) != 0 || got.ChStop(d0) != 130 {
		t.Fatalf("d0 span [%d, %d), want [0, 130)", got.ChStart(d0), got.ChStop(d0))
	}
	entries := got.Instructions()
	if entries[1].Time != 100 {
		t.Fatalf("appended entry at %d, want 100", entries[1].Time)
	}
}

func TestAppendUsesMaxStopAcrossSharedChannels(t *testing.T) {
	first := play(t, New("first"), 0, 100, d0)
	first = play(t, first, 0, 40, m0)
	second := play(t, New("second"), 0, 10, d0)
	second = play(t, second, 0, 10, m0)
	got := first.Append(second)
	// both channels shared; the later stop (d0 at 100) wins for both
	if got.ChStart(m0) != 0 {
		t.Fatalf("m0 start = %d", got.ChStart(m0))
	}
	entries := got.Instructions()
	for _, e := range entries[2:] {
		if e.Time != 100 {
			t.Fatalf("appended entries must start at 100, got %d", e.Time)
		}
	}
}

func TestAppendDisjointChannelsStartsAtZero(t *testing.T) {
	first := play(t, New("first"), 0, 100, d0)
	second := play(t, New("second"), 0, 10, d1)
	got := first.Append(second)
	if got.ChStart(d1) != 0 {
		t.Fatalf("unique channel must start at 0, got %d", got.ChStart(d1))
	}
}

func TestAppendOntoEmpty(t *testing.T) {
	second := play(t, New("second"), 0, 10, d0)
	got := New("empty").Append(second)
	if got.StartTime() != 0 || got.Duration() != 10 {
		t.Fatalf("append onto empty: %s", got)
	}
}

func TestAppendInst(t *testing.T) {
	s := play(t, New("t"), 0, 100, d0)
	s = s.AppendInst(instruction.Delay{Dur: 20, Channel: d0})
	s = s.AppendInst(instruction.Play{Pulse: pulse.Constant{Dur: 10, Amp: 0.2}, Channel: d0})
	if s.ChStop(d0) != 130 {
		t.Fatalf("d0 stop = %d, want 130", s.ChStop(d0))
	}
}

func TestChannelAccessors(t *testing.T) {
	s := play(t, New("t"), 10, 10, d0)
	s = play(t, s, 5, 30, m0)
	if s.ChStart(d0) != 10 || s.ChStop(d0) != 20 || s.ChDuration(d0) != 10 {
		t.Fatalf("d0 accessors wrong: %d %d %d", s.ChStart(d0), s.ChStop(d0), s.ChDuration(d0))
	}
	if s.ChStop(d1) != 0 {
		t.Fatalf("unused channel stop must be 0")
	}
	chs := s.Channels()
	if len(chs) != 2 || chs[0].Name() != "d0" || chs[1].Name() != "m0" {
		t.Fatalf("channel list %v", chs)
	}
}

func TestGeneratedName(t *testing.T) {
	a, b := New(""), New("")
	if a.Name() == "" || a.Name() == b.Name() {
		t.Fatalf("generated names must be unique and non-empty: %q %q", a.Name(), b.Name())
	}
}

func TestNegativeTimeRejected(t *testing.T) {
	if _, err := New("t").Insert(-1, instruction.Delay{Dur: 5, Channel: d0}); !errors.Is(err, ErrNegativeTime) {
		t.Fatalf("expected ErrNegativeTime, got %v", err)
	}
}
