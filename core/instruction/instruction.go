package instruction

import (
	"errors"
	"fmt"

	"github.com/quantaops/pulsekit/core/model"
	"github.com/quantaops/pulsekit/core/pulse"
)

// Instruction is a single timed operation occupying one or more channels.
// Duration is measured in dt ticks; frame instructions take zero time.
type Instruction interface {
	Name() string
	Duration() int64
	Channels() []model.Channel
}

var ErrNegativeDuration = errors.New("instruction duration must not be negative")

// Play emits a pulse envelope on a channel.
type Play struct {
	Pulse   pulse.Pulse
	Channel model.Channel
}

func (p Play) Name() string              { return fmt.Sprintf("play(%s, %s)", p.Pulse.Name(), p.Channel.Name()) }
func (p Play) Duration() int64           { return p.Pulse.Duration() }
func (p Play) Channels() []model.Channel { return []model.Channel{p.Channel} }

// Validate checks the embedded pulse.
func (p Play) Validate() error { return p.Pulse.Validate() }

// Delay blocks a channel for a fixed number of ticks.
type Delay struct {
	Dur     int64
	Channel model.Channel
}

func (d Delay) Name() string              { return fmt.Sprintf("delay(%d, %s)", d.Dur, d.Channel.Name()) }
func (d Delay) Duration() int64           { return d.Dur }
func (d Delay) Channels() []model.Channel { return []model.Channel{d.Channel} }

// SetPhase sets the channel frame phase to an absolute value in radians.
type SetPhase struct {
	Phase   float64
	Channel model.Channel
}

func (s SetPhase) Name() string              { return fmt.Sprintf("set_phase(%.4f, %s)", s.Phase, s.Channel.Name()) }
func (s SetPhase) Duration() int64           { return 0 }
func (s SetPhase) Channels() []model.Channel { return []model.Channel{s.Channel} }

// ShiftPhase rotates the channel frame phase by a relative amount in radians.
type ShiftPhase struct {
	Phase   float64
	Channel model.Channel
}

func (s ShiftPhase) Name() string {
	return fmt.Sprintf("shift_phase(%.4f, %s)", s.Phase, s.Channel.Name())
}
func (s ShiftPhase) Duration() int64           { return 0 }
func (s ShiftPhase) Channels() []model.Channel { return []model.Channel{s.Channel} }

// SetFrequency sets the channel carrier frequency in Hz.
type SetFrequency struct {
	Frequency float64
	Channel   model.Channel
}

func (s SetFrequency) Name() string {
	return fmt.Sprintf("set_frequency(%.0f, %s)", s.Frequency, s.Channel.Name())
}
func (s SetFrequency) Duration() int64           { return 0 }
func (s SetFrequency) Channels() []model.Channel { return []model.Channel{s.Channel} }

// ShiftFrequency detunes the channel carrier by a relative amount in Hz.
type ShiftFrequency struct {
	Frequency float64
	Channel   model.Channel
}

func (s ShiftFrequency) Name() string {
	return fmt.Sprintf("shift_frequency(%.0f, %s)", s.Frequency, s.Channel.Name())
}
func (s ShiftFrequency) Duration() int64           { return 0 }
func (s ShiftFrequency) Channels() []model.Channel { return []model.Channel{s.Channel} }

// Acquire triggers data acquisition on an acquire channel, storing the
// classified result in a memory slot.
type Acquire struct {
	Dur     int64
	Channel model.AcquireChannel
	Slot    model.MemorySlot
}

func (a Acquire) Name() string {
	return fmt.Sprintf("acquire(%d, %s, %s)", a.Dur, a.Channel.Name(), a.Slot.Name())
}
func (a Acquire) Duration() int64           { return a.Dur }
func (a Acquire) Channels() []model.Channel { return []model.Channel{a.Channel} }
