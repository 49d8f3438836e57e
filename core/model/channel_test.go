package model

import (
	"sort"
	"testing"
)

func TestParseChannel(t *testing.T) {
	cases := []struct {
		in   string
		want Channel
	}{
		{"d0", DriveChannel{Idx: 0}},
		{"D3", DriveChannel{Idx: 3}},
		{"u1", ControlChannel{Idx: 1}},
		{"m2", MeasureChannel{Idx: 2}},
		{"a0", AcquireChannel{Idx: 0}},
	}
	for _, c := range cases {
		got, err := ParseChannel(c.in)
		if err != nil {
			t.Fatalf("parse %q: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("parse %q: got %#v want %#v", c.in, got, c.want)
		}
	}
}

func TestParseChannelInvalid(t *testing.T) {
	for _, in := range []string{"", "d", "x0", "d-1", "dx"} {
		if _, err := ParseChannel(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestChannelEquality(t *testing.T) {
	seen := map[Channel]int{}
	seen[DriveChannel{Idx: 0}]++
	seen[DriveChannel{Idx: 0}]++
	seen[MeasureChannel{Idx: 0}]++
	if seen[DriveChannel{Idx: 0}] != 2 {
		t.Fatalf("equal channels must collide as map keys: %v", seen)
	}
	if len(seen) != 2 {
		t.Fatalf("distinct kinds must not collide: %v", seen)
	}
}

func TestCompareChannelsOrder(t *testing.T) {
	chs := []Channel{
		MeasureChannel{Idx: 0},
		DriveChannel{Idx: 1},
		DriveChannel{Idx: 0},
		AcquireChannel{Idx: 0},
	}
	sort.Slice(chs, func(i, j int) bool { return CompareChannels(chs[i], chs[j]) < 0 })
	want := []string{"d0", "d1", "m0", "a0"}
	for i, ch := range chs {
		if ch.Name() != want[i] {
			t.Fatalf("order[%d] = %s, want %s", i, ch.Name(), want[i])
		}
	}
}
