// Package events defines the toolkit events emitted on the event bus.
//
// Available event types:
//   - BuildEvent: a program was assembled into a schedule
//   - RenderEvent: a schedule was rendered to an output format
package events

import "time"

// BuildEvent is published when a program is built into a schedule.
type BuildEvent struct {
	Schedule     string
	Instructions int
	Channels     int
	Duration     int64
	Err          error
	Time         time.Time
}

// RenderEvent is published after a render attempt.
type RenderEvent struct {
	Schedule string
	Format   string
	Elapsed  time.Duration
	Err      error
	Time     time.Time
}
