package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.layoutArt()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case PositionMsg:
		m.Position = time.Duration(msg)
		return m, m.WatchPosition()

	case StateMsg:
		m.State = msg.Current
		return m, m.WatchState()

	case PlayerErrMsg:
		m.ErrorMsg = string(msg)
		return m, m.WatchError()

	case StderrMsg:
		m.ErrorMsg = string(msg)
		return m, WatchStderr()

	case PlayerDoneMsg:
		// Worker exited: either we asked it to stop, or something tore
		// the device down. Either way the session is over.
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Keys.IsQuit(msg) {
		m.quitting = true
		// Close joins the worker; PlayerDoneMsg then quits the program.
		go func() { _ = m.Player.Close() }()
		return m, nil
	}

	cmd, ok := m.Keys.Resolve(msg, m.State, m.SeekStep)
	if !ok {
		return m, nil
	}

	// Send never blocks; a failed send surfaces on the Errors channel.
	_ = m.Player.Send(cmd)
	return m, nil
}

// layoutArt sizes the cover area from the current terminal size: a
// roughly square image, no taller than the space left above the track
// panel.
func (m *Model) layoutArt() {
	if !m.Art.Enabled() {
		return
	}

	free := m.Height - viewChromeHeight()
	artRows := min(free, m.Width/4)
	if artRows < 4 {
		artRows = 0
	}
	// Terminal cells are about twice as tall as wide.
	m.Art.SetSize(artRows*2, artRows)
}
