package schedule

import "testing"

func TestIntervalSetConflict(t *testing.T) {
	var set intervalSet
	set = set.insert(interval{Start: 10, Stop: 20})
	set = set.insert(interval{Start: 0, Stop: 5})
	set = set.insert(interval{Start: 30, Stop: 40})

	cases := []struct {
		iv   interval
		want bool
	}{
		{interval{5, 10}, false},  // gap between the first two
		{interval{20, 30}, false}, // exactly between
		{interval{19, 21}, true},
		{interval{0, 100}, true},
		{interval{15, 15}, true},  // point inside an occupied span
		{interval{20, 20}, false}, // point on a boundary
		{interval{40, 50}, false},
	}
	for _, c := range cases {
		if _, got := set.conflict(c.iv); got != c.want {
			t.Fatalf("conflict(%v) = %v, want %v", c.iv, got, c.want)
		}
	}
}

func TestIntervalSetInsertKeepsOrder(t *testing.T) {
	var set intervalSet
	for _, iv := range []interval{{30, 40}, {0, 5}, {10, 20}} {
		set = set.insert(iv)
	}
	for i := 1; i < len(set); i++ {
		if set[i-1].Start > set[i].Start {
			t.Fatalf("set not sorted: %v", set)
		}
	}
}

func TestIntervalSetPointAtSpanStart(t *testing.T) {
	var set intervalSet
	set = set.insert(interval{Start: 5, Stop: 10})
	set = set.insert(interval{Start: 5, Stop: 5})

	if set[0] != (interval{5, 5}) || set[1] != (interval{5, 10}) {
		t.Fatalf("equal starts must be ordered by stop: %v", set)
	}
	if _, got := set.conflict(interval{Start: 7, Stop: 8}); !got {
		t.Fatalf("conflict missed [7,8) inside [5,10)")
	}
}

func TestIntervalSetShift(t *testing.T) {
	set := intervalSet{{Start: 0, Stop: 5}, {Start: 10, Stop: 20}}
	got := set.shift(7)
	if got[0] != (interval{7, 12}) || got[1] != (interval{17, 27}) {
		t.Fatalf("shift result %v", got)
	}
	if set[0].Start != 0 {
		t.Fatalf("shift must not mutate the receiver")
	}
}
