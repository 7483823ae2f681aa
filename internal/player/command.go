package player

import "time"

// Command is a playback intent sent from a control surface (keyboard, MPRIS)
// to the playback worker. Commands are immutable values, consumed exactly
// once, and applied in the order they were sent.
type Command interface {
	isCommand()
}

// Play resumes playback if paused. No-op otherwise.
type Play struct{}

// Pause pauses playback if playing. No-op otherwise.
type Pause struct{}

// FastForward seeks forward by Amount from the current position.
// The target is clamped to the track duration.
type FastForward struct {
	Amount time.Duration
}

// Rewind seeks backward by Amount from the current position.
// The target floors at zero.
type Rewind struct {
	Amount time.Duration
}

// Stop shuts the worker down: the sink is closed and no further commands
// are accepted.
type Stop struct{}

func (Play) isCommand()        {}
func (Pause) isCommand()       {}
func (FastForward) isCommand() {}
func (Rewind) isCommand()      {}
func (Stop) isCommand()        {}
