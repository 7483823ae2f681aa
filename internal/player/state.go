package player

// State represents the playback state machine.
//
// Valid transitions:
//   - Uninitialized → Playing (Start: playback begins as soon as the source
//     is appended to the sink)
//   - Playing → Paused  (Pause command)
//   - Paused  → Playing (Play command)
//   - Playing/Paused → Finished (sink drained; terminal)
//
// No-op transitions (handled gracefully):
//   - Play while Playing or Finished
//   - Pause while Paused or Finished
//   - Seeks while Uninitialized or Finished
type State int32

const (
	Uninitialized State = iota
	Playing
	Paused
	Finished
)

// String returns the state name for diagnostics.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// IsActive returns true while the track can still produce audio.
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if a Pause command would take effect.
func (s State) CanPause() bool {
	return s == Playing
}

// CanResume returns true if a Play command would take effect.
func (s State) CanResume() bool {
	return s == Paused
}

// StateChange is emitted on every state transition.
type StateChange struct {
	Previous State
	Current  State
}
