package app

import (
	"time"

	"github.com/strum-player/strum/internal/player"
)

// PositionMsg carries a position sample from the player.
type PositionMsg time.Duration

// StateMsg carries a playback state transition.
type StateMsg player.StateChange

// PlayerErrMsg carries a formatted non-fatal player error.
type PlayerErrMsg string

// StderrMsg carries a line captured from C audio libraries.
type StderrMsg string

// PlayerDoneMsg signals that the playback worker has exited.
type PlayerDoneMsg struct{}
