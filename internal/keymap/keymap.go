// Package keymap maps key presses to playback commands. Resolution is
// state-aware: a key only produces a command the player can act on in
// its current state.
package keymap

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/strum-player/strum/internal/player"
)

// Map holds the key bindings for the player controls.
type Map struct {
	PlayPause   key.Binding
	SeekForward key.Binding
	SeekBack    key.Binding
	Quit        key.Binding
}

// Default returns the default key bindings.
func Default() Map {
	return Map{
		PlayPause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "play/pause"),
		),
		SeekForward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "seek forward"),
		),
		SeekBack: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "seek back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Resolve translates a key press into a playback command, given the
// player's current state and the configured seek step. It returns false
// when the key is unbound or the state cannot accept the command, so a
// finished track absorbs transport keys instead of queueing dead work.
func (m Map) Resolve(msg tea.KeyMsg, st player.State, step time.Duration) (player.Command, bool) {
	switch {
	case key.Matches(msg, m.PlayPause):
		switch {
		case st.CanPause():
			return player.Pause{}, true
		case st.CanResume():
			return player.Play{}, true
		}
		return nil, false

	case key.Matches(msg, m.SeekForward):
		if !st.IsActive() {
			return nil, false
		}
		return player.FastForward{Amount: step}, true

	case key.Matches(msg, m.SeekBack):
		if !st.IsActive() {
			return nil, false
		}
		return player.Rewind{Amount: step}, true
	}

	return nil, false
}

// IsQuit reports whether the key press is bound to quit.
func (m Map) IsQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, m.Quit)
}
