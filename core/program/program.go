// Package program loads declarative pulse programs from JSON or YAML files
// and builds executable schedules from them. A program names its pulse
// envelopes once and then lists instructions; instructions without an
// explicit time are appended, instructions with one are inserted.
package program

import (
	"errors"
	"fmt"

	"github.com/quantaops/pulsekit/core/instruction"
	"github.com/quantaops/pulsekit/core/model"
	"github.com/quantaops/pulsekit/core/pulse"
	"github.com/quantaops/pulsekit/core/schedule"
)

// PulseDef declares a named envelope usable by play instructions.
type PulseDef struct {
	Name     string  `json:"name" yaml:"name"`
	Shape    string  `json:"shape" yaml:"shape"`
	Duration int64   `json:"duration" yaml:"duration"`
	Amp      float64 `json:"amp" yaml:"amp"`
	Phase    float64 `json:"phase,omitempty" yaml:"phase,omitempty"`
	Sigma    float64 `json:"sigma,omitempty" yaml:"sigma,omitempty"`
	Width    int64   `json:"width,omitempty" yaml:"width,omitempty"`
	Beta     float64 `json:"beta,omitempty" yaml:"beta,omitempty"`
}

// InstructionDef is one step of a program.
type InstructionDef struct {
	Op        string  `json:"op" yaml:"op"`
	Pulse     string  `json:"pulse,omitempty" yaml:"pulse,omitempty"`
	Channel   string  `json:"channel" yaml:"channel"`
	Duration  int64   `json:"duration,omitempty" yaml:"duration,omitempty"`
	Phase     float64 `json:"phase,omitempty" yaml:"phase,omitempty"`
	Frequency float64 `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	MemSlot   int     `json:"mem_slot,omitempty" yaml:"mem_slot,omitempty"`
	Time      *int64  `json:"time,omitempty" yaml:"time,omitempty"`
}

// Program is a complete declarative schedule description.
type Program struct {
	Name         string           `json:"name" yaml:"name"`
	Pulses       []PulseDef       `json:"pulses" yaml:"pulses"`
	Instructions []InstructionDef `json:"instructions" yaml:"instructions"`
}

var (
	ErrUnknownShape = errors.New("unknown pulse shape")
	ErrUnknownOp    = errors.New("unknown instruction op")
	ErrUnknownPulse = errors.New("instruction references undefined pulse")
)

func (d PulseDef) build() (pulse.Pulse, error) {
	amp := complexAmp(d.Amp, d.Phase)
	var p pulse.Pulse
	switch d.Shape {
	case "constant":
		p = pulse.Constant{Dur: d.Duration, Amp: amp}
	case "gaussian":
		p = pulse.Gaussian{Dur: d.Duration, Amp: amp, Sigma: d.Sigma}
	case "gaussian_square":
		p = pulse.GaussianSquare{Dur: d.Duration, Amp: amp, Sigma: d.Sigma, Width: d.Width}
	case "drag":
		p = pulse.Drag{Dur: d.Duration, Amp: amp, Sigma: d.Sigma, Beta: d.Beta}
	default:
		return nil, fmt.Errorf("pulse %q: %w: %q", d.Name, ErrUnknownShape, d.Shape)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("pulse %q: %w", d.Name, err)
	}
	return p, nil
}

// Build assembles the schedule described by the program. Pulses are
// validated up front so every play references a known, well-formed envelope.
func (p Program) Build() (*schedule.Schedule, error) {
	pulses := make(map[string]pulse.Pulse, len(p.Pulses))
	for _, def := range p.Pulses {
		built, err := def.build()
		if err != nil {
			return nil, err
		}
		pulses[def.Name] = built
	}

	sched := schedule.New(p.Name)
	for i, def := range p.Instructions {
		inst, err := def.build(pulses)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		if def.Time == nil {
			sched = sched.AppendInst(inst)
			continue
		}
		sched, err = sched.Insert(*def.Time, inst)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
	}
	return sched, nil
}

func (d InstructionDef) build(pulses map[string]pulse.Pulse) (instruction.Instruction, error) {
	ch, err := model.ParseChannel(d.Channel)
	if err != nil {
		return nil, err
	}
	switch d.Op {
	case "play":
		p, ok := pulses[d.Pulse]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPulse, d.Pulse)
		}
		return instruction.Play{Pulse: p, Channel: ch}, nil
	case "delay":
		if d.Duration <= 0 {
			return nil, fmt.Errorf("delay on %s: duration must be positive", ch.Name())
		}
		return instruction.Delay{Dur: d.Duration, Channel: ch}, nil
	case "set_phase":
		return instruction.SetPhase{Phase: d.Phase, Channel: ch}, nil
	case "shift_phase":
		return instruction.ShiftPhase{Phase: d.Phase, Channel: ch}, nil
	case "set_frequency":
		return instruction.SetFrequency{Frequency: d.Frequency, Channel: ch}, nil
	case "shift_frequency":
		return instruction.ShiftFrequency{Frequency: d.Frequency, Channel: ch}, nil
	case "acquire":
		ac, ok := ch.(model.AcquireChannel)
		if !ok {
			return nil, fmt.Errorf("acquire requires an acquire channel, got %s", ch.Name())
		}
		if d.Duration <= 0 {
			return nil, fmt.Errorf("acquire on %s: duration must be positive", ch.Name())
		}
		return instruction.Acquire{Dur: d.Duration, Channel: ac, Slot: model.MemorySlot{Idx: d.MemSlot}}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, d.Op)
	}
}
