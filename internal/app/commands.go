package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/strum-player/strum/internal/player"
	"github.com/strum-player/strum/internal/stderr"
)

// waitForChannel creates a command that waits for one value from a channel
// and converts it to a message. A nil message is returned when the channel
// closes, which stops the watch without further effect.
func waitForChannel[T any](ch <-chan T, onResult func(T) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return onResult(v)
	}
}

// WatchPosition waits for the next position sample.
func (m Model) WatchPosition() tea.Cmd {
	return waitForChannel(m.Sub.Positions, func(pos time.Duration) tea.Msg {
		return PositionMsg(pos)
	})
}

// WatchState waits for the next state transition.
func (m Model) WatchState() tea.Cmd {
	return waitForChannel(m.Sub.States, func(e player.StateChange) tea.Msg {
		return StateMsg(e)
	})
}

// WatchError waits for the next non-fatal player error.
func (m Model) WatchError() tea.Cmd {
	return waitForChannel(m.Sub.Errors, func(msg string) tea.Msg {
		return PlayerErrMsg(msg)
	})
}

// WatchStderr waits for output trapped from C audio libraries.
func WatchStderr() tea.Cmd {
	return waitForChannel(stderr.Lines, func(line string) tea.Msg {
		return StderrMsg(line)
	})
}

// WatchDone waits for the playback worker to exit.
func (m Model) WatchDone() tea.Cmd {
	return func() tea.Msg {
		<-m.Player.Done()
		return PlayerDoneMsg{}
	}
}
