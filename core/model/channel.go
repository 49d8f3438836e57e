package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ChannelKind identifies the hardware timeline a channel addresses.
type ChannelKind int

const (
	KindDrive ChannelKind = iota
	KindControl
	KindMeasure
	KindAcquire
)

// String returns the single-letter prefix used in channel names.
func (k ChannelKind) String() string {
	switch k {
	case KindDrive:
		return "d"
	case KindControl:
		return "u"
	case KindMeasure:
		return "m"
	case KindAcquire:
		return "a"
	default:
		return "?"
	}
}

// Channel is an addressable timeline on which instructions are placed.
// Channels of equal kind and index are interchangeable and the concrete
// types are comparable, so they can be used as map keys.
type Channel interface {
	Name() string
	Index() int
	Kind() ChannelKind
}

// DriveChannel transmits drive pulses to a qubit.
type DriveChannel struct{ Idx int }

// ControlChannel drives multi-qubit cross-resonance lines.
type ControlChannel struct{ Idx int }

// MeasureChannel transmits measurement stimulus pulses.
type MeasureChannel struct{ Idx int }

// AcquireChannel collects readout data for a qubit.
type AcquireChannel struct{ Idx int }

func (c DriveChannel) Name() string      { return fmt.Sprintf("d%d", c.Idx) }
func (c DriveChannel) Index() int        { return c.Idx }
func (c DriveChannel) Kind() ChannelKind { return KindDrive }

func (c ControlChannel) Name() string      { return fmt.Sprintf("u%d", c.Idx) }
func (c ControlChannel) Index() int        { return c.Idx }
func (c ControlChannel) Kind() ChannelKind { return KindControl }

func (c MeasureChannel) Name() string      { return fmt.Sprintf("m%d", c.Idx) }
func (c MeasureChannel) Index() int        { return c.Idx }
func (c MeasureChannel) Kind() ChannelKind { return KindMeasure }

func (c AcquireChannel) Name() string      { return fmt.Sprintf("a%d", c.Idx) }
func (c AcquireChannel) Index() int        { return c.Idx }
func (c AcquireChannel) Kind() ChannelKind { return KindAcquire }

// MemorySlot stores a classified readout result. It is not a channel:
// it carries no timeline of its own.
type MemorySlot struct{ Idx int }

// Name returns the conventional mem-slot label.
func (s MemorySlot) Name() string { return fmt.Sprintf("mem%d", s.Idx) }

// ParseChannel parses names such as "d0", "u1", "m2" or "a0".
func ParseChannel(name string) (Channel, error) {
	if len(name) < 2 {
		return nil, fmt.Errorf("invalid channel name %q", name)
	}
	idx, err := strconv.Atoi(name[1:])
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("invalid channel index in %q", name)
	}
	switch strings.ToLower(name[:1]) {
	case "d":
		return DriveChannel{Idx: idx}, nil
	case "u":
		return ControlChannel{Idx: idx}, nil
	case "m":
		return MeasureChannel{Idx: idx}, nil
	case "a":
		return AcquireChannel{Idx: idx}, nil
	default:
		return nil, fmt.Errorf("unknown channel kind %q", name[:1])
	}
}

// CompareChannels orders channels by kind then index. Used for stable
// listings in renderers and exports.
func CompareChannels(a, b Channel) int {
	if a.Kind() != b.Kind() {
		return int(a.Kind()) - int(b.Kind())
	}
	return a.Index() - b.Index()
}
