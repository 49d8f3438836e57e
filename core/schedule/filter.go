package schedule

import "github.com/quantaops/pulsekit/core/model"

// Predicate selects entries during Filter and Exclude.
type Predicate func(Entry) bool

// ByChannels matches entries touching at least one of the given channels.
func ByChannels(chs ...model.Channel) Predicate {
	want := make(map[model.Channel]struct{}, len(chs))
	for _, ch := range chs {
		want[ch] = struct{}{}
	}
	return func(e Entry) bool {
		for _, ch := range e.Inst.Channels() {
			if _, ok := want[ch]; ok {
				return true
			}
		}
		return false
	}
}

// ByTimeRange matches entries fully contained in [start, stop).
func ByTimeRange(start, stop int64) Predicate {
	return func(e Entry) bool {
		return e.Time >= start && e.Stop() <= stop
	}
}

// Filter returns a schedule keeping only entries matching every predicate.
// With no predicates the schedule is returned as-is. Absolute times are
// preserved, so filtering never reflows the timeline.
func (s *Schedule) Filter(preds ...Predicate) *Schedule {
	if len(preds) == 0 {
		return s
	}
	return s.partition(preds, true)
}

// Exclude returns the complement of Filter: entries matching every predicate
// are removed.
func (s *Schedule) Exclude(preds ...Predicate) *Schedule {
	if len(preds) == 0 {
		return New(s.name + "-excluded")
	}
	return s.partition(preds, false)
}

func (s *Schedule) partition(preds []Predicate, keepMatching bool) *Schedule {
	suffix := "-filtered"
	if !keepMatching {
		suffix = "-excluded"
	}
	out := New(s.name + suffix)
	for _, e := range s.entries {
		match := true
		for _, p := range preds {
			if !p(e) {
				match = false
				break
			}
		}
		if match == keepMatching {
			// placements came from a valid schedule, a subset cannot conflict
			if err := out.place(e); err != nil {
				panic(err)
			}
		}
	}
	return out
}
